package config

import "os"

// ServerConfig holds configuration for the bundled storefront server
type ServerConfig struct {
	Port string
}

// LoadServerConfig loads storefront server configuration from environment variables
func LoadServerConfig() ServerConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // Default to port 8080
	}

	return ServerConfig{
		Port: port,
	}
}
