package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/0xDVC/hellocpu/internal/config"
)

func bindFlags(c *cobra.Command) {
	f := c.PersistentFlags()
	f.StringP("config", "c", "", "YAML config file")
	f.String("host", config.DefaultHost, "Address to bind (env "+config.EnvHost+")")
	f.IntP("port", "p", config.DefaultPort, "Port to listen on (env "+config.EnvPort+")")
	f.String("variant", config.DefaultVariant, "App to serve: hello or cpu (env "+config.EnvVariant+")")
	f.Int("burn-seconds", config.DefaultBurnSeconds, "How long GET /cpu burns (env "+config.EnvBurnSeconds+")")
	f.String("log-level", config.DefaultLogLevel, "trace, debug, info, warn, error or disabled (env "+config.EnvLogLevel+")")
	f.String("log-format", config.DefaultLogFormat, "auto, console or json (env "+config.EnvLogFormat+")")
	f.Duration("shutdown-grace", config.DefaultShutdownGrace, "How long to wait for in-flight requests on shutdown")
}

// loadConfig layers defaults, the --config file, the environment and any
// flags set explicitly on the command line, then validates the result.
func loadConfig(c *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	flags := c.Flags()

	if path, _ := flags.GetString("config"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.FromEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	if flags.Changed("host") {
		cfg.Host, _ = flags.GetString("host")
	}
	if flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("variant") {
		cfg.Variant, _ = flags.GetString("variant")
	}
	if flags.Changed("burn-seconds") {
		cfg.BurnSeconds, _ = flags.GetInt("burn-seconds")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("shutdown-grace") {
		cfg.ShutdownGrace, _ = flags.GetDuration("shutdown-grace")
	}

	return cfg, cfg.Validate()
}
