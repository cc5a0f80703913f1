package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

type AppConfig struct {
	Log LogConfig
}

// LoadApp reads an optional .env file and then the environment. A missing
// .env is not an error.
func LoadApp() (AppConfig, error) {
	_ = godotenv.Load()
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{Log: logCfg}, nil
}

func LoadLog() (LogConfig, error) {
	var cfg LogConfig
	err := env.Parse(&cfg)
	return cfg, err
}
