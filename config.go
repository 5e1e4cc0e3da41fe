package dscc

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything a Solve run needs to know about: the input
// edge-list path plus the ambient knobs (process count, log level,
// metrics address) every run exposes. Flag, env, and file merging is
// layered on top via viper rather than a bespoke decoder.
type Config struct {
	// Input is the edge-list file path.
	Input string `mapstructure:"input"`
	// Procs is the number of simulated BSP processes to run Solve with.
	Procs int `mapstructure:"procs"`
	// LogLevel is one of debug/info/warning/error.
	LogLevel string `mapstructure:"log_level"`
	// MetricsAddr is the listen address for the Prometheus /metrics
	// endpoint; empty disables it.
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// DefaultConfig mirrors ailidani-paxi's MakeDefaultConfig: sane
// single-process defaults so a bare invocation still runs.
func DefaultConfig() Config {
	return Config{
		Procs:    1,
		LogLevel: "info",
	}
}

// LoadConfig builds a Config by layering, in ascending priority: the
// defaults above, an optional config file, environment variables
// prefixed DSCC_, and finally explicit flag values already parsed into
// v (the caller is expected to have bound its pflag.FlagSet into v
// with viper.BindPFlags before calling this).
func LoadConfig(v *viper.Viper, configFile string) (Config, error) {
	defaults := DefaultConfig()
	v.SetDefault("input", defaults.Input)
	v.SetDefault("procs", defaults.Procs)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("metrics_addr", defaults.MetricsAddr)

	v.SetEnvPrefix("dscc")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
