// Package config loads service configuration from an optional YAML file,
// with environment-variable overrides on top. A .env file in the working
// directory is honored when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Duration accepts human-readable YAML durations ("10s", "500ms").
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	dur, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", value.Value, err)
	}
	*d = Duration(dur)
	return nil
}

type APIConfig struct {
	BaseURL    string   `yaml:"base_url"`
	Timeout    Duration `yaml:"timeout"`
	MaxRetries int      `yaml:"max_retries"`
}

type HTTPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// BuscaConfig holds the default listing filters.
type BuscaConfig struct {
	Tipos   []string `yaml:"tipos"`
	Itens   int      `yaml:"itens"`
	Ordem   string   `yaml:"ordem"`
	OrdPor  string   `yaml:"ordenar_por"`
	Workers int      `yaml:"workers"` // author-enrichment concurrency
}

type Config struct {
	API      APIConfig   `yaml:"api"`
	HTTP     HTTPConfig  `yaml:"http"`
	Busca    BuscaConfig `yaml:"busca"`
	LogLevel string      `yaml:"log_level"`
}

func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:    "https://dadosabertos.camara.leg.br/api/v2",
			Timeout:    Duration(25 * time.Second),
			MaxRetries: 3,
		},
		HTTP: HTTPConfig{Host: "localhost", Port: 6894},
		Busca: BuscaConfig{
			Tipos:   []string{"PL", "PEC", "PLP"},
			Itens:   100,
			Ordem:   "DESC",
			OrdPor:  "id",
			Workers: 5,
		},
		LogLevel: "info",
	}
}

// Load reads path (when non-empty and present) over the defaults, then
// applies LEGITRACK_* environment overrides. A missing explicit path is an
// error; a missing default path is not.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LEGITRACK_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("LEGITRACK_API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.API.Timeout = Duration(d)
		}
	}
	if v := os.Getenv("LEGITRACK_HTTP_HOST"); v != "" {
		cfg.HTTP.Host = v
	}
	if v := os.Getenv("LEGITRACK_HTTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Port = p
		}
	}
	if v := os.Getenv("LEGITRACK_TIPOS"); v != "" {
		var tipos []string
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tipos = append(tipos, strings.ToUpper(t))
			}
		}
		if len(tipos) > 0 {
			cfg.Busca.Tipos = tipos
		}
	}
	if v := os.Getenv("LEGITRACK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
}

// Addr returns the host:port the web server binds to.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
