package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port        int              `json:"port"`
	LogConfig   logger.LogConfig `json:"log_config"`
	Database    DatabaseConfig   `json:"database"`
	FileStore   FileStoreConfig  `json:"file_store"`
	AI          AIConfig         `json:"ai"`
	Index       IndexConfig      `json:"index"`
	Retrieval   RetrievalConfig  `json:"retrieval"`
	Session     SessionConfig    `json:"session"`
	CORSOrigins []string         `json:"cors_origins"`
	UploadMB    int64            `json:"upload_limit_mb"`
}

type DatabaseConfig struct {
	DSN      string `json:"dsn"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
	SSLMode  string `json:"sslmode"`
}

type FileStoreConfig struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type AIConfig struct {
	Provider     string             `json:"provider"`
	Model        string             `json:"model"`
	EmbedModel   string             `json:"embed_model"`
	Data         interface{}        `json:"data"`
	Fallbacks    []AIEndpointConfig `json:"fallbacks"`
	MaxPerMinute int                `json:"max_per_minute"`
	EmbedCache   int                `json:"embed_cache_size"`
}

// AIEndpointConfig describes a fallback backend tried when the primary
// provider fails.
type AIEndpointConfig struct {
	Provider   string      `json:"provider"`
	Model      string      `json:"model"`
	EmbedModel string      `json:"embed_model"`
	Data       interface{} `json:"data"`
}

type IndexConfig struct {
	Type string `json:"type"`
}

type RetrievalConfig struct {
	MaxContextChars int `json:"max_context_chars"`
	PerVariantK     int `json:"per_variant_k"`
}

type SessionConfig struct {
	TTLSeconds int    `json:"ttl_seconds"`
	PruneSpec  string `json:"prune_spec"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	if cfg.AI.Provider == "" {
		return nil, fmt.Errorf("ai.provider is required")
	}
	if cfg.AI.Model == "" {
		return nil, fmt.Errorf("ai.model is required")
	}
	if cfg.AI.EmbedModel == "" {
		return nil, fmt.Errorf("ai.embed_model is required")
	}
	if cfg.AI.MaxPerMinute == 0 {
		cfg.AI.MaxPerMinute = 60
	}
	if cfg.AI.EmbedCache == 0 {
		cfg.AI.EmbedCache = 2048
	}
	if cfg.FileStore.Type == "" {
		cfg.FileStore.Type = "local"
		cfg.FileStore.Data = map[string]interface{}{"dir": "./data/uploads"}
	}
	if cfg.Index.Type == "" {
		cfg.Index.Type = "postgres"
	}
	if cfg.Index.Type == "postgres" && cfg.Database.DSN == "" && cfg.Database.Host == "" {
		return nil, fmt.Errorf("database dsn or host is required for the postgres index")
	}
	if cfg.Retrieval.MaxContextChars == 0 {
		cfg.Retrieval.MaxContextChars = 6000
	}
	if cfg.Retrieval.PerVariantK == 0 {
		cfg.Retrieval.PerVariantK = 4
	}
	if cfg.Session.TTLSeconds == 0 {
		cfg.Session.TTLSeconds = 86400
	}
	if cfg.Session.PruneSpec == "" {
		cfg.Session.PruneSpec = "*/30 * * * *"
	}
	if cfg.UploadMB == 0 {
		cfg.UploadMB = 16
	}
	return &cfg, nil
}
