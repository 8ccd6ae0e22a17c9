package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Stripe      StripeConfig      `mapstructure:"stripe"`
	Flutterwave FlutterwaveConfig `mapstructure:"flutterwave"`
	Notifier    NotifierConfig    `mapstructure:"notifier"`
	Withdrawal  WithdrawalConfig  `mapstructure:"withdrawal"`
	Log         LogConfig         `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// StripeConfig holds credentials for the card-network provider.
type StripeConfig struct {
	SecretKey string        `mapstructure:"secret_key"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// FlutterwaveConfig holds credentials for the transfer-network provider.
type FlutterwaveConfig struct {
	SecretKey string        `mapstructure:"secret_key"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// NotifierConfig controls the real-time event channel.
type NotifierConfig struct {
	Channel string `mapstructure:"channel"`
}

// WithdrawalConfig holds payout parameters.
type WithdrawalConfig struct {
	Currency    string `mapstructure:"currency"`
	DemoBalance string `mapstructure:"demo_balance"` // display-only balance for GET /balance
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: PGW_ (Payout Gateway).
// Nested keys use underscore: PGW_REDIS_HOST, PGW_STRIPE_SECRET_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("stripe.secret_key", "")
	v.SetDefault("stripe.base_url", "https://api.stripe.com")
	v.SetDefault("stripe.timeout", "15s")
	v.SetDefault("flutterwave.secret_key", "")
	v.SetDefault("flutterwave.base_url", "https://api.flutterwave.com")
	v.SetDefault("flutterwave.timeout", "15s")
	v.SetDefault("notifier.channel", "withdrawals")
	v.SetDefault("withdrawal.currency", "KES")
	v.SetDefault("withdrawal.demo_balance", "250000")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: PGW_REDIS_HOST -> redis.host
	v.SetEnvPrefix("PGW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
