package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime configuration for the budget API service.
type Config struct {
	Addr            string        `env:"ADDR,default=:8080"`
	DBDSN           string        `env:"DB_DSN,required"`
	JWTSigningKey   string        `env:"JWT_SIGNING_KEY,required"`
	JWTIssuer       string        `env:"JWT_ISSUER,default=budgetd"`
	JWTAudience     string        `env:"JWT_AUDIENCE,default=budgetd"`
	PasswordSalt    string        `env:"PASSWORD_SALT,required"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL,default=2h"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL,default=24h"`
	NATSURL         string        `env:"NATS_URL"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS,default=http://localhost:3000"`
}

// Load returns a Config populated from environment variables.
func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
