package auth

import "time"

// JWTConfig carries token-signing settings
type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
	Issuer         string
}

// Config is the authentication configuration
type Config struct {
	JWT JWTConfig
}

// DefaultConfig returns the default authentication configuration
func DefaultConfig() Config {
	return Config{
		JWT: JWTConfig{
			AccessTokenTTL: 90 * time.Minute,
			Issuer:         "careergist",
		},
	}
}
