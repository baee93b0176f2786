package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Backend BackendConfig
	Session SessionConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type BackendConfig struct {
	URL            string
	TimeoutSeconds int
}

type SessionConfig struct {
	File string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "pos-terminal")
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("BACKEND_URL", "http://localhost:8080")
	viper.SetDefault("BACKEND_TIMEOUT_SECONDS", 10)
	viper.SetDefault("SESSION_FILE", ".pos-session.json")

	if err := viper.ReadInConfig(); err != nil {
		// .env is optional; defaults plus real env vars are enough
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Backend: BackendConfig{
			URL:            viper.GetString("BACKEND_URL"),
			TimeoutSeconds: viper.GetInt("BACKEND_TIMEOUT_SECONDS"),
		},
		Session: SessionConfig{
			File: viper.GetString("SESSION_FILE"),
		},
	}

	return config, nil
}
