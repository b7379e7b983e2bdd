package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE" envDefault:"false"`
	Port       int  `env:"PORT" envDefault:"9090"`

	Secret        string `env:"SECRET,required"`
	PostgresqlURL string `env:"POSTGRESQL_URL,required"`

	BcryptHasherCost           int           `env:"BCRYPT_HASHER_COST" envDefault:"12"`
	PasswordResetValidDuration time.Duration `env:"PASSWORD_RESET_VALID_DURATION" envDefault:"10m"`
	PasswordResetBaseURL       url.URL       `env:"PASSWORD_RESET_BASE_URL,required"`

	AwsRegion      string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey   string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey   string `env:"AWS_SECRET_KEY"`
	AwsEmailSender string `env:"AWS_EMAIL_SENDER"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}
	return config, nil
}
