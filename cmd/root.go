package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/0xDVC/hellocpu/internal/commands"
)

// version is set at build time with -ldflags "-X github.com/0xDVC/hellocpu/cmd.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "hellocpu",
	Short: "Demo HTTP server for container and autoscaling demos",
	Long: `Serves one of two demo apps on 0.0.0.0:5000.

  hello  GET /     greeting with hostname and current time, echoed to stdout
  cpu    GET /     static greeting
         GET /cpu  keeps one core busy for 10 seconds, then answers`,
	Example: `  hellocpu
  hellocpu --variant hello --port 8080
  PORT=8081 APP_VARIANT=cpu hellocpu`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := commands.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return commands.Serve(ctx, cfg, logger, os.Stdout)
	},
}

func init() {
	bindFlags(rootCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hellocpu:", err)
		os.Exit(1)
	}
}
