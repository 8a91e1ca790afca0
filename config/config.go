package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	LogLevel      string
	AllowedOrigin string
	// Local state store
	StatePath string
	// Catalog source
	CatalogURL      string
	CatalogTimeout  time.Duration
	CacheProductTTL time.Duration
	// Business Rules
	TaxRate               float64
	FreeShippingThreshold float64
	ShippingFee           float64
	MaxCartQuantity       int
	SearchHistoryLimit    int
	// Rate limiting
	RateLimitPerSecond int
	RateLimitBurst     int
}

func LoadConfig() *Config {
	// 1. Check if a specific config file is requested via env var
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		// 2. Default fallback: Try loading .env (standard local dev).
		// No error here: in docker/prod envs .env might not exist and we
		// rely on system env vars.
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),

		StatePath: getEnv("STATE_PATH", "data/modernshop.db"),

		CatalogURL:      getEnv("CATALOG_URL", "https://fakestoreapi.com/products"),
		CatalogTimeout:  getDurationEnv("CATALOG_TIMEOUT", 10*time.Second),
		CacheProductTTL: getDurationEnv("CACHE_PRODUCT_TTL", 10*time.Minute),

		// Checkout display rules: 8% tax, free shipping over $50, $9.99 flat fee
		TaxRate:               getFloatEnv("TAX_RATE", 0.08),
		FreeShippingThreshold: getFloatEnv("FREE_SHIPPING_THRESHOLD", 50.00),
		ShippingFee:           getFloatEnv("SHIPPING_FEE", 9.99),
		MaxCartQuantity:       getIntEnv("MAX_CART_QUANTITY", 1000),
		SearchHistoryLimit:    getIntEnv("SEARCH_HISTORY_LIMIT", 10),

		RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 50),
		RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 100),
	}

	cfg.Validate()
	return cfg
}

func (c *Config) Validate() {
	if c.TaxRate < 0 || c.TaxRate >= 1 {
		log.Fatalf("CRITICAL: TAX_RATE must be in [0, 1), got %v", c.TaxRate)
	}
	if c.ShippingFee < 0 || c.FreeShippingThreshold < 0 {
		log.Fatal("CRITICAL: SHIPPING_FEE and FREE_SHIPPING_THRESHOLD must be non-negative")
	}
	if c.MaxCartQuantity < 1 {
		log.Fatal("CRITICAL: MAX_CART_QUANTITY must be at least 1")
	}
}
