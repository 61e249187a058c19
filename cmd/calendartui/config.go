package main

import (
	"fmt"
	"strings"

	"github.com/mkravets/eventcal/internal/logger"
	"github.com/spf13/viper"
)

const envConfigPrefix = "$env:"

type ClientConfig struct {
	URL            string
	TimeoutSeconds int
	LogFile        string
}

type Config struct {
	Logger logger.Config
	Client ClientConfig
}

func NewConfig(configFile string) (Config, error) {
	config := Config{}
	viper.SetConfigFile(configFile)

	viper.SetDefault("client.url", "http://127.0.0.1:5000")
	viper.SetDefault("client.timeoutSeconds", "10")
	viper.SetDefault("client.logFile", "calendartui.log")
	viper.SetDefault("logger.level", "WARN")

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
