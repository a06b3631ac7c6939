// Package config loads runtime configuration from the environment with
// sane development defaults.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort        string        `mapstructure:"HTTP_PORT"`
	CatalogURL      string        `mapstructure:"CATALOG_URL"`
	OrderStoreURL   string        `mapstructure:"ORDER_STORE_URL"`
	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	MongoURI        string        `mapstructure:"MONGO_URI"`
	MongoDatabase   string        `mapstructure:"MONGO_DATABASE"`
	PaymentDelay    time.Duration `mapstructure:"PAYMENT_DELAY"`
	HealthInterval  time.Duration `mapstructure:"HEALTH_INTERVAL"`
	ClientTimeout   time.Duration `mapstructure:"CLIENT_TIMEOUT"`
	RequestTimeout  time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
}

func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("CATALOG_URL", "http://localhost:5000/api")
	v.SetDefault("ORDER_STORE_URL", "http://localhost:5000/api")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("MONGO_URI", "")
	v.SetDefault("MONGO_DATABASE", "osm")
	v.SetDefault("PAYMENT_DELAY", 1500*time.Millisecond)
	v.SetDefault("HEALTH_INTERVAL", 30*time.Second)
	v.SetDefault("CLIENT_TIMEOUT", 10*time.Second)
	v.SetDefault("REQUEST_TIMEOUT", 30*time.Second)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}
