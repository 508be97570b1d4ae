package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	EmailDriverSES  = "ses"
	EmailDriverSMTP = "smtp"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE" envDefault:"false"`
	Port       uint `env:"PORT" envDefault:"8000"`

	Secret           string   `env:"SECRET,required"`
	PostgresqlURL    string   `env:"POSTGRESQL_URL,required"`
	BcryptHasherCost int      `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	AllowedOrigins   []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	PasswordResetValidDuration time.Duration `env:"PASSWORD_RESET_VALID_DURATION" envDefault:"1h"`
	PasswordResetBaseURL       url.URL       `env:"PASSWORD_RESET_BASE_URL,required"`
	PasswordResetLoginURL      string        `env:"PASSWORD_RESET_LOGIN_URL"`
	PasswordResetPurgePeriod   time.Duration `env:"PASSWORD_RESET_PURGE_PERIOD" envDefault:"10m"`

	EmailDriver string `env:"EMAIL_DRIVER" envDefault:"ses"`
	EmailSender string `env:"EMAIL_SENDER,required"`

	AwsRegion    string `env:"AWS_REGION"`
	AwsAccessKey string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey string `env:"AWS_SECRET_KEY"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
}

// Load reads the configuration from the environment.
// Variables from a .env file in the working directory are applied first, if the file exists.
func Load() (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}
	return Parse(env.Options{})
}

// LoadDotEnv applies variables from .env files, ".env" when none are given.
// Missing files are skipped, malformed ones are reported.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load .env: %w", err)
	}
	return nil
}

func Parse(opts env.Options) (*Config, error) {
	config := &Config{}
	if err := env.Parse(config, opts); err != nil {
		return nil, err
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.PasswordResetValidDuration <= 0 {
		return fmt.Errorf("PASSWORD_RESET_VALID_DURATION must be positive, got %s", c.PasswordResetValidDuration)
	}
	if c.PasswordResetPurgePeriod <= 0 {
		return fmt.Errorf("PASSWORD_RESET_PURGE_PERIOD must be positive, got %s", c.PasswordResetPurgePeriod)
	}
	switch c.EmailDriver {
	case EmailDriverSES:
		if c.AwsRegion == "" {
			return fmt.Errorf("AWS_REGION must be set for %s email driver", EmailDriverSES)
		}
	case EmailDriverSMTP:
		if c.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST must be set for %s email driver", EmailDriverSMTP)
		}
	default:
		return fmt.Errorf("unknown EMAIL_DRIVER %q", c.EmailDriver)
	}
	return nil
}
