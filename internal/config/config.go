package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config contains runtime settings for the MCP server
type Config struct {
	LogLevel  string
	LogFormat string // json or console
	Host     string // default 0.0.0.0
	Port     string // default 8000
	GitHub   struct {
		Token   string
		BaseURL string // empty means api.github.com
	}
	HeartbeatInterval time.Duration
	ShutdownTimeout   time.Duration
}

// Load populates config from environment variables
func Load() (Config, error) {
	v := newViper()

	cfg := Config{
		LogLevel:          v.GetString("log_level"),
		LogFormat:         v.GetString("log_format"),
		Host:              v.GetString("mcp_host"),
		Port:              v.GetString("port"),
		HeartbeatInterval: v.GetDuration("heartbeat_interval"),
		ShutdownTimeout:   v.GetDuration("shutdown_timeout"),
	}
	cfg.GitHub.Token = v.GetString("github_token")
	cfg.GitHub.BaseURL = v.GetString("github_api_url")

	var missingVars []string

	if cfg.GitHub.Token == "" {
		missingVars = append(missingVars, "GITHUB_TOKEN")
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	if cfg.HeartbeatInterval <= 0 {
		return cfg, fmt.Errorf("HEARTBEAT_INTERVAL must be positive, got %s", cfg.HeartbeatInterval)
	}

	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	for _, key := range []string{
		"log_level",
		"log_format",
		"mcp_host",
		"port",
		"github_token",
		"github_api_url",
		"heartbeat_interval",
		"shutdown_timeout",
	} {
		_ = v.BindEnv(key, strings.ToUpper(key))
	}

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("mcp_host", "0.0.0.0")
	v.SetDefault("port", "8000")
	v.SetDefault("heartbeat_interval", 30*time.Second)
	v.SetDefault("shutdown_timeout", 10*time.Second)
}
