package config

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ErrMissingDatabaseURL aborts startup: the service refuses to run without
// a connection string.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	URL string `mapstructure:"database_url"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", "8000")

	// No usable default: DATABASE_URL must come from the environment. The
	// empty default only registers the key with viper so AutomaticEnv can
	// override it.
	viper.SetDefault("DATABASE_URL", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("no .env file read by viper, using environment variables: ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Database.URL == "" {
		return nil, ErrMissingDatabaseURL
	}

	return config, nil
}

func loadEnvFile() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file loaded: ", err)
	}
}
