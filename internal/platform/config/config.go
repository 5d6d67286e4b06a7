package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FallbackAPIKey ships with the demo so it runs out of the box against a
// sandbox deployment. Replace with a real key for anything beyond local
// experiments.
const FallbackAPIKey = "demo_api_key_12345678901234567890123456789012"

// Server captures process level configuration.
type Server struct {
	Addr         string
	UpstreamURL  string
	APIKey       string
	APIKeySource string
	Redis        RedisConfig
	PostgresURL  string
}

// RedisConfig holds connection settings for the session store backend.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// fileConfig mirrors the optional YAML file shipped next to the binary, the
// stand-in for application bundle metadata.
type fileConfig struct {
	APIKey string `yaml:"api_key"`
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("CM_DEMO_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	upstream := os.Getenv("CM_UPSTREAM_URL")
	if upstream == "" {
		upstream = "https://api.contactsmanager.io"
	}

	key, source := ResolveAPIKey(os.Getenv("CM_CONFIG_FILE"))

	return Server{
		Addr:         addr,
		UpstreamURL:  upstream,
		APIKey:       key,
		APIKeySource: source,
		Redis: RedisConfig{
			URL:          os.Getenv("CM_REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		PostgresURL: os.Getenv("CM_POSTGRES_URL"),
	}
}

// ResolveAPIKey returns the first configured API key: config file, then the
// CM_API_KEY environment variable, then the bundled demo fallback. The second
// return names the winning source so main can warn when the fallback is in
// play.
func ResolveAPIKey(path string) (string, string) {
	if path != "" {
		if raw, err := os.ReadFile(path); err == nil {
			var fc fileConfig
			if err := yaml.Unmarshal(raw, &fc); err == nil && fc.APIKey != "" {
				return fc.APIKey, "file"
			}
		}
	}

	if env := os.Getenv("CM_API_KEY"); env != "" {
		return env, "env"
	}

	return FallbackAPIKey, "fallback"
}
