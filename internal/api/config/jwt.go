package config

import (
	"errors"
	"time"
)

// ErrEmptySecretKey - секрет подписи токенов не задан.
var ErrEmptySecretKey = errors.New("JWT secret key is not configured")

// JWTConfig содержит настройки для подписанных токенов.
type JWTConfig struct {
	SecretKey  string `yaml:"secret_key" env:"API_JWT_SECRET_KEY" env-default:""`
	TokenTTL   string `yaml:"token_ttl" env:"API_JWT_TOKEN_TTL" env-default:"24h"`
	BCryptCost int    `yaml:"bcrypt_cost" env:"API_JWT_BCRYPT_COST" env-default:"10"`
}

// Validate проверяет обязательные параметры. Отсутствие секрета -
// фатальная ошибка конфигурации.
func (c *JWTConfig) Validate() error {
	if c.SecretKey == "" {
		return ErrEmptySecretKey
	}
	return nil
}

// GetTokenTTL возвращает продолжительность времени жизни токена.
func (c *JWTConfig) GetTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.TokenTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}
