// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cuckood/memtierstat/runmath"
)

const (
	// configName is the config file name without extension.
	configName = ".memtierstat"
	configType = "yaml"
	envPrefix  = "MEMTIERSTAT"
)

// Configuration keys. Each is also the name of the flag that sets it.
const (
	keyAggregator    = "aggregator"
	keyFormat        = "format"
	keyTotal         = "total"
	keyPrefix        = "prefix"
	keyKeepEmpty     = "keep-empty"
	keySkipMalformed = "skip-malformed"
)

// formats is the set of valid --format values.
var formats = []string{"text", "csv", "table", "json", "yaml", "gobench"}

// config is the effective configuration of a run.
type config struct {
	Aggregator    string `mapstructure:"aggregator"`
	Format        string `mapstructure:"format"`
	Total         bool   `mapstructure:"total"`
	Prefix        bool   `mapstructure:"prefix"`
	KeepEmpty     bool   `mapstructure:"keep-empty"`
	SkipMalformed bool   `mapstructure:"skip-malformed"`
}

// addConfigFlags defines the flags for every configuration key on fs.
func addConfigFlags(fs *pflag.FlagSet) {
	fs.StringP(keyAggregator, "a", runmath.Default.Name(), "summarize runs with `agg`: "+strings.Join(runmath.Names(), ", "))
	fs.StringP(keyFormat, "f", "text", "print results in `format`: "+strings.Join(formats, ", "))
	fs.Bool(keyTotal, true, "report the combined Gets rate")
	fs.Bool(keyPrefix, true, "prefix version keys with the name of numbered roots (\"bench-3\" -> \"bench-\")")
	fs.Bool(keyKeepEmpty, false, "report versions without any usable run")
	fs.Bool(keySkipMalformed, false, "warn about and skip malformed run logs instead of failing")
}

// loadConfig resolves the configuration from, in decreasing order of
// precedence, flags set on fs, MEMTIERSTAT_* environment variables,
// the config file, and defaults. If path is empty, .memtierstat.yaml
// is looked up in the working directory and then in $HOME; a missing
// file is not an error.
func loadConfig(path string, fs *pflag.FlagSet) (*config, error) {
	v := viper.New()

	v.SetDefault(keyAggregator, runmath.Default.Name())
	v.SetDefault(keyFormat, "text")
	v.SetDefault(keyTotal, true)
	v.SetDefault(keyPrefix, true)
	v.SetDefault(keyKeepEmpty, false)
	v.SetDefault(keySkipMalformed, false)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *config) validate() error {
	if _, err := runmath.Parse(c.Aggregator); err != nil {
		return fmt.Errorf("--%s: %w", keyAggregator, err)
	}
	for _, f := range formats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("--%s must be one of %s", keyFormat, strings.Join(formats, ", "))
}
