// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cmd

import (
	"os"
	"time"

	"github.com/dalzilio/xadd"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of --config, mirroring the way
// aretw0-trellis loads its own project YAML into a plain struct before
// translating it into functional options.
type fileConfig struct {
	NodeTableSize int    `yaml:"nodeTableSize"`
	CacheSize     int    `yaml:"cacheSize"`
	LPTimeout     string `yaml:"lpTimeout"`
}

var loadedConfig fileConfig

func loadConfig(path string) error {
	loadedConfig = fileConfig{}
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, &loadedConfig)
}

// storeOptions translates the loaded config file into xadd.Option
// values, falling back to the store's built-in defaults for anything
// left unset.
func storeOptions() []xadd.Option {
	var opts []xadd.Option
	if loadedConfig.NodeTableSize > 0 {
		opts = append(opts, xadd.WithNodeTableSize(loadedConfig.NodeTableSize))
	}
	if loadedConfig.CacheSize > 0 {
		opts = append(opts, xadd.WithCacheSize(loadedConfig.CacheSize))
	}
	if loadedConfig.LPTimeout != "" {
		if d, err := time.ParseDuration(loadedConfig.LPTimeout); err == nil {
			opts = append(opts, xadd.WithLPTimeout(d))
		}
	}
	opts = append(opts, xadd.WithLogger(logger))
	return opts
}
