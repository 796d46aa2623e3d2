// Package config loads the yaml config into viper.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/artbay/goapi/base/env"
	"github.com/artbay/goapi/base/log"
)

// DefaultPath is read when neither --config nor ARTBAY_CONFIG is given
const DefaultPath = "infra/configs/config.yaml"

// EnvPrefix prefixes every environment override, e.g. ARTBAY_SERVER_ADDRESS
const EnvPrefix = "ARTBAY"

// AddFlags registers --config on fs
func AddFlags(fs *pflag.FlagSet) {
	fs.String("config", env.ConfigPath(DefaultPath), "path of the yaml config file")
}

// Load reads the file named by the --config flag of fs into viper and turns
// on environment overrides. The flag set must already be parsed.
func Load(fs *pflag.FlagSet) error {
	path, err := fs.GetString("config")
	if err != nil {
		return xerrors.Errorf("config flag: %w", err)
	}
	return LoadFile(path)
}

// LoadFile reads path into viper
func LoadFile(path string) error {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(path)
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return xerrors.Errorf("read %s: %w", path, err)
	}

	if viper.GetBool("debug") {
		log.SetLevel("debug")
		log.Log().Info("Service RUN on DEBUG mode")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("app_name", "artbay")
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("catalog.source", "fixture")
	viper.SetDefault("cache.ttl", "1m")
	viper.SetDefault("cache.localSizeMB", 64)
	viper.SetDefault("redis_cache.name", "cache")
	viper.SetDefault("redis_cache.poolMultiplier", 1.0)
}
