package main

import (
	"fmt"
	"strings"

	"github.com/mkravets/eventcal/internal/logger"
	internalhttp "github.com/mkravets/eventcal/internal/server/http"
	"github.com/mkravets/eventcal/internal/storagebuilder"
	"github.com/spf13/viper"
)

const envConfigPrefix = "$env:"

type Config struct {
	HTTPServer internalhttp.Config
	Logger     logger.Config
	Storage    storagebuilder.Config
}

func NewConfig(configFile string) (Config, error) {
	config := Config{}
	viper.SetConfigFile(configFile)

	viper.SetDefault("httpServer.host", "127.0.0.1")
	viper.SetDefault("httpServer.port", "5000")
	viper.SetDefault("logger.level", "WARN")
	viper.SetDefault("storage.storageType", "memory")
	viper.SetDefault("storage.database.driver", "sqlite3")
	viper.SetDefault("storage.database.file", "./calendar.db")

	err := viper.ReadInConfig()
	if err != nil {
		return config, fmt.Errorf("failed to read config %q: %w", configFile, err)
	}
	keys := viper.AllKeys()
	for _, key := range keys {
		env := viper.GetString(key)
		if strings.HasPrefix(env, envConfigPrefix) {
			err := viper.BindEnv(key, env[len(envConfigPrefix):])
			if err != nil {
				return Config{}, fmt.Errorf("failed to prepare config: %w", err)
			}
		}
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return config, fmt.Errorf("unable to decode into config struct: %w", err)
	}
	return config, nil
}
