package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/muhammadolammi/resumeworker/internal/cache"
)

const (
	modeWorker = "worker"
	modeHTTP   = "http"
	modeFile   = "file"
)

type Config struct {
	Mode     string
	File     string
	Format   string
	HTTPAddr string
	Workers  int

	LogLevel     string
	LogFormat    string
	KeywordsFile string

	DBURL       string
	RabbitMQURL string
	R2          R2Config
	Redis       cache.Config
}

// loadConfig reads the environment (after .env has been loaded) and the command line.
// Flags win over environment variables.
func loadConfig(args []string) (*Config, error) {
	cfg := &Config{
		HTTPAddr:     envOr("HTTP_ADDR", ":8080"),
		LogLevel:     envOr("LOG_LEVEL", "info"),
		LogFormat:    envOr("LOG_FORMAT", "json"),
		KeywordsFile: os.Getenv("KEYWORDS_FILE"),
		DBURL:        os.Getenv("DB_URL"),
		RabbitMQURL:  os.Getenv("RABBITMQ_URL"),
		R2: R2Config{
			AccountID: os.Getenv("R2_ACCCOUNT_ID"),
			Bucket:    os.Getenv("R2_BUCKET"),
			AccessKey: os.Getenv("R2_ACCESS_KEY"),
			SecretKey: os.Getenv("R2_SECRET_KEY"),
		},
		Redis: cache.Config{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
	}

	workers := 3
	if v := os.Getenv("WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid WORKERS %q: %w", v, err)
		}
		workers = n
	}
	if v := os.Getenv("REDIS_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_TTL %q: %w", v, err)
		}
		cfg.Redis.TTL = ttl
	}

	fs := pflag.NewFlagSet("resumeworker", pflag.ContinueOnError)
	fs.StringVar(&cfg.Mode, "mode", modeWorker, "run mode: worker, http or file")
	fs.StringVar(&cfg.File, "file", "", "resume to parse in file mode")
	fs.StringVar(&cfg.Format, "format", "json", "output of file mode: json or html")
	fs.StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "listen address in http mode")
	fs.IntVar(&cfg.Workers, "workers", workers, "number of queue consumers in worker mode")
	fs.StringVar(&cfg.KeywordsFile, "keywords", cfg.KeywordsFile, "YAML file replacing the built-in keyword tables")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Mode {
	case modeFile:
		if c.File == "" {
			return fmt.Errorf("--file is required in file mode")
		}
		if c.Format != "json" && c.Format != "html" {
			return fmt.Errorf("unknown format %q", c.Format)
		}
	case modeHTTP:
	case modeWorker:
		required := []struct{ name, value string }{
			{"DB_URL", c.DBURL},
			{"RABBITMQ_URL", c.RabbitMQURL},
			{"R2_ACCCOUNT_ID", c.R2.AccountID},
			{"R2_BUCKET", c.R2.Bucket},
			{"R2_SECRET_KEY", c.R2.SecretKey},
			{"R2_ACCESS_KEY", c.R2.AccessKey},
		}
		for _, r := range required {
			if r.value == "" {
				return fmt.Errorf("empty %s in environment", r.name)
			}
		}
		if c.Workers < 1 {
			return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
		}
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
