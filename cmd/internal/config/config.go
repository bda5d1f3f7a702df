package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"gopkg.in/yaml.v3"
)

const (
	// FileEnv names the optional YAML file read before the environment.
	FileEnv = "FLEETDESK_CONFIG"

	defaultSSMPrefix = "/fleetdesk/prod/"
	defaultRegion    = "us-east-2"
)

type Config struct {
	HTTPAddr          string        `yaml:"http_addr" env:"HTTP_ADDR"`
	DatabaseURL       string        `yaml:"database_url" env:"DATABASE_URL"`
	InventoryInterval time.Duration `yaml:"inventory_interval" env:"INVENTORY_INTERVAL"`
	Kafka             Kafka         `yaml:"kafka"`
	Tracing           Tracing       `yaml:"tracing"`
	AWSRegion         string        `yaml:"aws_region" env:"AWS_REGION"`
	SSMPrefix         string        `yaml:"ssm_prefix" env:"SSM_PREFIX"`
}

// Kafka is left disabled while Brokers is empty.
type Kafka struct {
	Brokers           []string `yaml:"brokers" env:"KAFKA_BROKERS" envSeparator:","`
	ProductTopic      string   `yaml:"product_topic" env:"KAFKA_PRODUCT_TOPIC"`
	NotificationTopic string   `yaml:"notification_topic" env:"KAFKA_NOTIFICATION_TOPIC"`
	Group             string   `yaml:"group" env:"KAFKA_GROUP"`
}

func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

// Tracing picks where spans go. Exporter is one of none, stdout or otlp.
type Tracing struct {
	Exporter    string  `yaml:"exporter" env:"TRACING_EXPORTER"`
	Endpoint    string  `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	SampleRatio float64 `yaml:"sample_ratio" env:"TRACING_SAMPLE_RATIO"`
}

func Default() Config {
	return Config{
		HTTPAddr:          ":7070",
		DatabaseURL:       "fleetdesk.db",
		InventoryInterval: time.Minute,
		Kafka: Kafka{
			ProductTopic:      "fleetdesk.products",
			NotificationTopic: "fleetdesk.notifications",
			Group:             "fleetdesk",
		},
		Tracing: Tracing{
			Exporter:    "none",
			SampleRatio: 1,
		},
		AWSRegion: defaultRegion,
		SSMPrefix: defaultSSMPrefix,
	}
}

// Load resolves the configuration. Later sources win: defaults, the YAML
// file, then environment variables. In production the environment is first
// seeded from SSM Parameter Store, elsewhere from a .env file when present.
func Load(ctx context.Context) (*Config, error) {
	if os.Getenv("GO_ENV") == "production" {
		if err := loadProdEnv(ctx); err != nil {
			return nil, err
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path := os.Getenv(FileEnv); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	if err = yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	log.Debugf("loaded config file %s", path)
	return nil
}
