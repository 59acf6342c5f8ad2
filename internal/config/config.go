package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	Port     string `env:"PORT"` // set by hosting platforms; overrides the HTTPAddr port

	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`

	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"` // text|json

	LenientRatings bool `env:"LENIENT_RATINGS" envDefault:"false"`
}

// FromEnv reads the process environment.
func FromEnv() (Config, error) {
	return parse(env.Options{})
}

// FromMap reads configuration from m instead of the process environment.
func FromMap(m map[string]string) (Config, error) {
	return parse(env.Options{Environment: m})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	if cfg.Port != "" {
		host, _, err := net.SplitHostPort(cfg.HTTPAddr)
		if err != nil {
			host = ""
		}
		cfg.HTTPAddr = net.JoinHostPort(host, cfg.Port)
	}
	return cfg, nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
