package config

import (
	"fmt"
	"go-bank-account/model"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	Accounts        []string          `mapstructure:"accounts"`
	Operations      []model.Operation `mapstructure:"operations"`
	StopOnRejection bool              `mapstructure:"stop_on_rejection"`
}

var AppConfig Config

// LoadConfig reads config.yml from path into AppConfig. Environment variables
// prefixed with BANK_ override file values, e.g. BANK_LOG_LEVEL=debug.
func LoadConfig(path string) error {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("stop_on_rejection", false)

	v.SetEnvPrefix("bank")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unable to decode into struct: %w", err)
	}

	AppConfig = cfg
	return nil
}
