package config

import (
	"os"
	"time"
)

// ServiceConfig holds configuration for a backend service
type ServiceConfig struct {
	Name        string
	BaseURL     string
	Timeout     time.Duration
	HealthCheck string
}

// GatewayConfig holds the main gateway configuration
type GatewayConfig struct {
	Port     string
	Services map[string]ServiceConfig
}

// LoadConfig loads the gateway configuration
func LoadConfig() *GatewayConfig {
	return &GatewayConfig{
		Port: getEnv("GATEWAY_PORT", "8000"),
		Services: map[string]ServiceConfig{
			// External auth service; the gateway only proxies it
			"auth": {
				Name:        "auth-service",
				BaseURL:     getEnv("AUTH_SERVICE_URL", "http://localhost:8080"),
				Timeout:     30 * time.Second,
				HealthCheck: "/health",
			},
			"catalog": {
				Name:        "catalog-service",
				BaseURL:     getEnv("CATALOG_SERVICE_URL", "http://localhost:8081"),
				Timeout:     30 * time.Second,
				HealthCheck: "/health",
			},
			"cart": {
				Name:        "cart-service",
				BaseURL:     getEnv("CART_SERVICE_URL", "http://localhost:8082"),
				Timeout:     30 * time.Second,
				HealthCheck: "/health",
			},
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
