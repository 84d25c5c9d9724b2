package config

import (
	"github.com/spf13/viper"
	"go.trai.ch/appindicator/internal/core/domain"
)

// EnvPrefix is prepended to every environment variable read by LoadSettings.
const EnvPrefix = "APPINDICATOR"

// LoadSettings reads ambient settings from the environment (APPINDICATOR_LOG_LEVEL).
func LoadSettings() domain.Settings {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("log_level", "warn")

	return domain.Settings{
		LogLevel: v.GetString("log_level"),
	}
}
