package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hmondejar/notekit/internal/pkg/timex"
)

type Server struct {
	URL             string         `json:"url,omitempty"`
	Port            int            `json:"port,omitempty"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty"`
}

type DB struct {
	Driver          string         `json:"driver,omitempty"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty"`
}

type JWT struct {
	JTILength uint32         `json:"jti_length,omitempty"`
	Issuer    string         `json:"issuer,omitempty"`
	TTL       timex.Duration `json:"ttl,omitempty"`
}

type Email struct {
	Sender    string         `json:"sender,omitempty"`
	VerifyTTL timex.Duration `json:"verify_ttl,omitempty"`
	ResetTTL  timex.Duration `json:"reset_ttl,omitempty"`
}

type Argon2 struct {
	Memory     uint32 `json:"memory,omitempty"`
	Iterations uint32 `json:"iterations,omitempty"`
	Threads    uint8  `json:"threads,omitempty"`
	SaltLength uint32 `json:"salt_length,omitempty"`
	KeyLength  uint32 `json:"key_length,omitempty"`
}

type Config struct {
	Server *Server `json:"server,omitempty"`
	DB     *DB     `json:"db,omitempty"`
	JWT    *JWT    `json:"jwt,omitempty"`
	Email  *Email  `json:"email,omitempty"`
	Argon2 *Argon2 `json:"argon2,omitempty"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("server", c.Server),
		slog.Any("db", c.DB),
		slog.Any("jwt", c.JWT),
		slog.Any("email", c.Email),
		slog.Any("argon2", c.Argon2),
	)
}

func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg, err := parseCfgFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := overrideWithEnv(cfg); err != nil {
		return nil, err
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseCfgFile(cfgFile string) (*Config, error) {
	cfgFile = filepath.Clean(cfgFile)
	contents, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := json.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return &cfg, nil
}

func overrideWithEnv(cfg *Config) error {
	if url, ok := os.LookupEnv("URL"); ok {
		cfg.Server.URL = url
	}

	if portStr, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("parse PORT %q: %w", portStr, err)
		}
		cfg.Server.Port = port
	}
	return nil
}
