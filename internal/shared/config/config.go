package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	CoreBank CoreBankConfig
	JWT      JWTConfig
	Vault    VaultConfig
	TLS      TLSConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	AllowedHosts []string
}

type CoreBankConfig struct {
	BaseURL string
	Timeout time.Duration
}

type JWTConfig struct {
	Secret string
}

type VaultConfig struct {
	Key string
}

type TLSConfig struct {
	Enabled      bool
	CertPath     string
	KeyPath      string
	RedirectHTTP bool
}

func Load() (*Config, error) {
	timeout, err := time.ParseDuration(getEnv("COREBANK_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid COREBANK_TIMEOUT: %w", err)
	}

	// Parse allowed hosts (comma-separated list)
	var allowedHosts []string
	for _, host := range strings.Split(getEnv("ALLOWED_HOSTS", ""), ",") {
		host = strings.TrimSpace(host)
		if host != "" {
			allowedHosts = append(allowedHosts, host)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			Host:         getEnv("HOST", "0.0.0.0"),
			AllowedHosts: allowedHosts,
		},
		CoreBank: CoreBankConfig{
			BaseURL: getEnv("COREBANK_BASE_URL", "http://localhost:8080/api"),
			Timeout: timeout,
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		Vault: VaultConfig{
			Key: getEnv("VAULT_KEY", ""),
		},
		TLS: TLSConfig{
			Enabled:      getBoolEnv("TLS_ENABLED", false),
			CertPath:     getEnv("TLS_CERT_PATH", ""),
			KeyPath:      getEnv("TLS_KEY_PATH", ""),
			RedirectHTTP: getBoolEnv("TLS_REDIRECT_HTTP", false),
		},
	}

	// Validate required fields
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Vault.Key == "" {
		return nil, fmt.Errorf("VAULT_KEY is required")
	}
	if len(cfg.Vault.Key) != 32 {
		return nil, fmt.Errorf("VAULT_KEY must be exactly 32 bytes")
	}
	if cfg.CoreBank.BaseURL == "" {
		return nil, fmt.Errorf("COREBANK_BASE_URL is required")
	}

	if cfg.TLS.Enabled {
		if cfg.TLS.CertPath == "" {
			return nil, fmt.Errorf("TLS_CERT_PATH is required when TLS_ENABLED=true")
		}
		if cfg.TLS.KeyPath == "" {
			return nil, fmt.Errorf("TLS_KEY_PATH is required when TLS_ENABLED=true")
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	switch strings.ToLower(value) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
