package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	FreeShippingThreshold kernel.Money
	FlatShippingCost      kernel.Money
	CartTTL               time.Duration

	PaymentTimeout  time.Duration
	ExpirySchedule  string
	ExpiryBatchSize int

	// AdminJWTSecret empty disables admin authentication.
	AdminJWTSecret string

	// SeedFile empty skips seeding.
	SeedFile string
}

var defaults = map[string]string{
	"HTTP_PORT":               "8080",
	"DB_PORT":                 "5432",
	"DB_SSLMODE":              "disable",
	"REDIS_ADDR":              "localhost:6379",
	"REDIS_DB":                "0",
	"FREE_SHIPPING_THRESHOLD": "2500",
	"FLAT_SHIPPING_COST":      "50",
	"CART_TTL":                "168h",
	"PAYMENT_TIMEOUT":         "30m",
	"ORDER_EXPIRY_SCHEDULE":   "0 * * * * *",
	"ORDER_EXPIRY_BATCH_SIZE": "100",
}

// LoadConfig reads the configuration through getenv, applying defaults for unset keys.
// Every malformed value is reported, not only the first.
func LoadConfig(getenv func(string) string) (Config, error) {
	get := func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return defaults[key]
	}

	var errList []error
	money := func(key string) kernel.Money {
		m, err := kernel.MoneyFromString(get(key))
		if err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", key, err))
		}
		return m
	}
	duration := func(key string) time.Duration {
		d, err := time.ParseDuration(get(key))
		if err == nil && d <= 0 {
			err = errs.NewValueIsOutOfRangeError(key, d, "1ns", "unbounded")
		}
		if err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", key, err))
		}
		return d
	}
	integer := func(key string) int {
		n, err := strconv.Atoi(get(key))
		if err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", key, err))
		}
		return n
	}

	config := Config{
		HTTPPort:              get("HTTP_PORT"),
		DBHost:                get("DB_HOST"),
		DBPort:                get("DB_PORT"),
		DBUser:                get("DB_USER"),
		DBPassword:            get("DB_PASSWORD"),
		DBName:                get("DB_NAME"),
		DBSslMode:             get("DB_SSLMODE"),
		RedisAddr:             get("REDIS_ADDR"),
		RedisPassword:         get("REDIS_PASSWORD"),
		RedisDB:               integer("REDIS_DB"),
		FreeShippingThreshold: money("FREE_SHIPPING_THRESHOLD"),
		FlatShippingCost:      money("FLAT_SHIPPING_COST"),
		CartTTL:               duration("CART_TTL"),
		PaymentTimeout:        duration("PAYMENT_TIMEOUT"),
		ExpirySchedule:        get("ORDER_EXPIRY_SCHEDULE"),
		ExpiryBatchSize:       integer("ORDER_EXPIRY_BATCH_SIZE"),
		AdminJWTSecret:        get("ADMIN_JWT_SECRET"),
		SeedFile:              get("SEED_FILE"),
	}

	for key, v := range map[string]string{"DB_HOST": config.DBHost, "DB_USER": config.DBUser, "DB_NAME": config.DBName} {
		if v == "" {
			errList = append(errList, errs.NewValueIsRequiredError(key))
		}
	}

	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return config, nil
}

// PostgresDSN renders the key/value connection string for gorm's postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) ShippingRules() services.ShippingRules {
	return services.ShippingRules{
		FreeShippingThreshold: c.FreeShippingThreshold,
		FlatShippingCost:      c.FlatShippingCost,
	}
}
