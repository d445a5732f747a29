package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Postgres Postgres
	Kafka    Kafka
	Timezone string `env:"TIMEZONE" envDefault:"America/Sao_Paulo"`
}

type HTTP struct {
	Port         int           `env:"HTTP_PORT" envDefault:"8080"`
	APIKey       string        `env:"HTTP_API_KEY,notEmpty"`
	BasePath     string        `env:"HTTP_BASE_PATH" envDefault:""`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers            []string `env:"KAFKA_BROKERS" envDefault:""`
	InvoiceEventsTopic string   `env:"KAFKA_INVOICE_EVENTS_TOPIC" envDefault:"invoice-events"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

// Location resolves the zone used for envelope timestamps.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", c.Timezone, err)
	}

	return loc, nil
}
