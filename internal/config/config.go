// Package config resolves the server configuration from built-in defaults, an
// optional YAML file, the environment and command-line flags, in that order
// of increasing precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// Defaults match the reference deployment: all interfaces, port 5000.
const (
	DefaultHost          = "0.0.0.0"
	DefaultPort          = 5000
	DefaultVariant       = "cpu"
	DefaultBurnSeconds   = 10
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "auto"
	DefaultShutdownGrace = 15 * time.Second
)

// Environment variables read by FromEnv.
const (
	EnvHost        = "HOST"
	EnvPort        = "PORT"
	EnvVariant     = "APP_VARIANT"
	EnvBurnSeconds = "BURN_SECONDS"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Host          string        `yaml:"host" validate:"required,ip|hostname_rfc1123"`
	Port          int           `yaml:"port" validate:"min=1,max=65535"`
	Variant       string        `yaml:"variant" validate:"oneof=hello cpu"`
	BurnSeconds   int           `yaml:"burn_seconds" validate:"min=1"`
	LogLevel      string        `yaml:"log_level" validate:"oneof=trace debug info warn error disabled"`
	LogFormat     string        `yaml:"log_format" validate:"oneof=auto console json"`
	ShutdownGrace time.Duration `yaml:"shutdown_grace" validate:"min=0"`
}

func Default() Config {
	return Config{
		Host:          DefaultHost,
		Port:          DefaultPort,
		Variant:       DefaultVariant,
		BurnSeconds:   DefaultBurnSeconds,
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
		ShutdownGrace: DefaultShutdownGrace,
	}
}

// Addr is the listen address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Burn is the /cpu busy-wait duration.
func (c Config) Burn() time.Duration {
	return time.Duration(c.BurnSeconds) * time.Second
}

// LoadFile overlays the YAML file at path onto c. Keys absent from the file
// keep their current value; unknown keys are an error.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error opening config file %q: %w", path, err)
	}
	// a null document would zero every field, so look before decoding into c
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("error loading config file %q: %w", path, err)
	}
	if doc == nil {
		return nil // empty or comment-only file
	}
	d := yaml.NewDecoder(bytes.NewReader(data), yaml.DisallowUnknownField())
	if err := d.Decode(c); err != nil {
		return fmt.Errorf("error loading config file %q: %w", path, err)
	}
	return nil
}

// FromEnv overlays the environment onto c using lookup, normally os.LookupEnv.
// Empty values are ignored.
func (c *Config) FromEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalid, key, v)
		}
		*dst = n
		return nil
	}

	str(EnvHost, &c.Host)
	str(EnvVariant, &c.Variant)
	str(EnvLogLevel, &c.LogLevel)
	str(EnvLogFormat, &c.LogFormat)
	if err := num(EnvPort, &c.Port); err != nil {
		return err
	}
	return num(EnvBurnSeconds, &c.BurnSeconds)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field and names the first one that fails.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	fe := verrs[0]
	return fmt.Errorf("%w: %s=%v fails %q", ErrInvalid, fe.Field(), fe.Value(), fe.Tag())
}
