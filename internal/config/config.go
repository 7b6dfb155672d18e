package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort       = 3000
	defaultEnv        = "development"
	defaultRedisURL   = "redis://localhost:6379/0"
	defaultTargetLang = "ur"

	// Environment variable names. MongoURI and DatabaseDSN are required;
	// startup fails fast when either is absent.
	envPort        = "PORT"
	envEnv         = "APP_ENV"
	envMongoURI    = "MONGODB_URI"
	envDatabaseDSN = "DATABASE_DSN"
	envRedisURL    = "REDIS_URL"
	envTargetLang  = "TRANSLATE_TARGET_LANG"
	envAIAPIKey    = "AI_API_KEY"
	envAIType      = "AI_PROVIDER_TYPE"
	envAIModel     = "AI_MODEL"
	envAIEndpoint  = "AI_ENDPOINT"
)

// AppConfig holds runtime startup configuration. Optional settings come from
// a YAML file; connection secrets come from the process environment.
type AppConfig struct {
	Port           int             `yaml:"port"`
	Env            string          `yaml:"env"` // "development" | "production"
	MongoURI       string          `yaml:"-"`
	DatabaseDSN    string          `yaml:"-"`
	RedisURL       string          `yaml:"redis_url"`
	AllowedOrigins []string        `yaml:"allowed_origins"`
	Translate      TranslateConfig `yaml:"translate"`
	AI             AIConfig        `yaml:"ai"`
}

// TranslateConfig configures the remote translation provider.
type TranslateConfig struct {
	TargetLang string `yaml:"target_lang"`
	Endpoint   string `yaml:"endpoint"`
}

// AIConfig configures the summarization model providers.
type AIConfig struct {
	Providers    []AIProvider       `yaml:"providers"`
	SummaryModel *AIModelAssignment `yaml:"summary_model"`
}

// AIProvider describes one model provider entry.
type AIProvider struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Type         string `yaml:"type"` // OpenAI | OpenAI-Compatible | Anthropic
	APIKey       string `yaml:"api_key"`
	Endpoint     string `yaml:"endpoint"`
	DefaultModel string `yaml:"default_model"`
	Enabled      bool   `yaml:"enabled"`
}

// AIModelAssignment pins the summarizer to a specific provider/model.
type AIModelAssignment struct {
	ProviderID string `yaml:"provider_id"`
	Model      string `yaml:"model"`
}

// Load builds the configuration from an optional YAML file plus the process
// environment. An empty configPath means the default path, which may be
// absent; any explicitly provided path must exist, including one that names
// the default file. Missing MONGODB_URI or DATABASE_DSN is fatal.
func Load(configPath string) (*AppConfig, error) {
	cfg := defaultAppConfig()

	path := strings.TrimSpace(configPath)
	explicit := path != ""
	if path == "" {
		path = DefaultConfigPath
	}

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// optional default file
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	normalize(&cfg)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d, expected 1-65535", cfg.Port)
	}
	if cfg.MongoURI == "" {
		return nil, errors.New("MONGODB_URI is not set")
	}
	if cfg.DatabaseDSN == "" {
		return nil, errors.New("DATABASE_DSN is not set")
	}

	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port:     defaultPort,
		Env:      defaultEnv,
		RedisURL: defaultRedisURL,
		Translate: TranslateConfig{
			TargetLang: defaultTargetLang,
		},
	}
}

func applyEnv(cfg *AppConfig) error {
	if v := strings.TrimSpace(os.Getenv(envPort)); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", envPort, v, err)
		}
		cfg.Port = port
	}
	if v := strings.TrimSpace(os.Getenv(envEnv)); v != "" {
		cfg.Env = v
	}
	cfg.MongoURI = strings.TrimSpace(os.Getenv(envMongoURI))
	cfg.DatabaseDSN = strings.TrimSpace(os.Getenv(envDatabaseDSN))
	if v := strings.TrimSpace(os.Getenv(envRedisURL)); v != "" {
		cfg.RedisURL = v
	}
	if v := strings.TrimSpace(os.Getenv(envTargetLang)); v != "" {
		cfg.Translate.TargetLang = v
	}

	// A single provider can be configured entirely from the environment,
	// which covers the common single-key deployment.
	if key := strings.TrimSpace(os.Getenv(envAIAPIKey)); key != "" {
		cfg.AI.Providers = append(cfg.AI.Providers, AIProvider{
			ID:           "env",
			Name:         "env",
			Type:         strings.TrimSpace(os.Getenv(envAIType)),
			APIKey:       key,
			Endpoint:     strings.TrimSpace(os.Getenv(envAIEndpoint)),
			DefaultModel: strings.TrimSpace(os.Getenv(envAIModel)),
			Enabled:      true,
		})
	}
	return nil
}

func normalize(cfg *AppConfig) {
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	cfg.RedisURL = normalizeRedisRawURL(cfg.RedisURL)
	cfg.Translate.TargetLang = strings.TrimSpace(cfg.Translate.TargetLang)
	if cfg.Translate.TargetLang == "" {
		cfg.Translate.TargetLang = defaultTargetLang
	}
	cfg.Translate.Endpoint = strings.TrimRight(strings.TrimSpace(cfg.Translate.Endpoint), "/")

	origins := make([]string, 0, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	cfg.AllowedOrigins = origins
}

func normalizeRedisRawURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return defaultRedisURL
	}
	if strings.HasPrefix(trimmed, "redis://") || strings.HasPrefix(trimmed, "rediss://") {
		return trimmed
	}
	return "redis://" + trimmed
}

func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, defaultEnv)
}
