package main

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	prim "github.com/shabbyrobe/go-prim"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is resolved from, in increasing priority: defaults, the --config
// file, PRIMCALC_* environment variables and flags.
type Config struct {
	Format string    `mapstructure:"format"`
	Dump   bool      `mapstructure:"dump"`
	Kind   prim.Kind `mapstructure:"kind"`
}

const envPrefix = "primcalc"

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("format", "dec")
	v.SetDefault("dump", false)
	v.SetDefault("kind", prim.KindI64.String())
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

func loadConfig(v *viper.Viper, flags *pflag.FlagSet) (cfg Config, err error) {
	if err := v.BindPFlags(flags); err != nil {
		return cfg, err
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("config %q: %w", file, err)
		}
	}

	// Kind decodes through its UnmarshalText, so "u32" and "uint32" both work
	// in files and the environment.
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	switch cfg.Format {
	case "dec", "hex":
	default:
		return cfg, fmt.Errorf("config: unknown format %q, expected dec or hex", cfg.Format)
	}
	if !cfg.Kind.Valid() {
		return cfg, fmt.Errorf("config: invalid kind %s", cfg.Kind)
	}
	return cfg, nil
}

// verb picks the fmt verb for v. Only numbers have a hex form.
func (c Config) verb(v any) string {
	if c.Format != "hex" {
		return "%v"
	}
	switch v.(type) {
	case bool, string, fmt.Stringer:
		if _, ok := v.(fmt.Formatter); !ok {
			return "%v"
		}
	}
	return "%#x"
}
