// Package config loads readmegen tool settings from an optional YAML file,
// environment variables and built-in defaults.
//
// Precedence: CLI flag > environment (READMEGEN_*) > YAML config > default.
// CLI flags are applied by the commands layer after Load returns.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is probed when no --config flag is given.
const DefaultConfigFile = ".readmegen.yaml"

// Config represents the tool configuration
type Config struct {
	// AssetsDir holds templates, messages.pot and the translations tree.
	AssetsDir string `yaml:"assets_dir"`
	// DefaultLanguage is the reference language; its README carries no suffix.
	DefaultLanguage string `yaml:"default_language"`
	// Domain is the gettext domain (<lang>/<domain>.po).
	Domain   string         `yaml:"domain"`
	Registry RegistryConfig `yaml:"registry"`
}

// RegistryConfig locates the shared apps registry (apps.toml + antifeatures.toml).
type RegistryConfig struct {
	// Path points at a local registry checkout; when set, no clone happens.
	Path string `yaml:"path"`
	// URL is cloned/updated into CacheDir when Path is empty.
	URL      string `yaml:"url"`
	CacheDir string `yaml:"cache_dir"`
}

// Load loads configuration from the specified file. An empty path probes
// DefaultConfigFile; a missing optional file yields pure defaults, while an
// explicitly named missing file is an error.
func Load(configPath string) (*Config, error) {
	// Load .env/.env.local if present. Never fatal.
	loadEnvFiles()

	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigFile
	}

	cfg := &Config{}
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		// Expand environment variables in the YAML content
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", configPath, err)
		}
	case os.IsNotExist(err) && !explicit:
		// Optional default file absent; continue with defaults.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

// applyEnv overlays READMEGEN_* environment variables onto the config.
func applyEnv(cfg *Config) {
	overlay := map[string]*string{
		"READMEGEN_ASSETS_DIR":         &cfg.AssetsDir,
		"READMEGEN_DEFAULT_LANGUAGE":   &cfg.DefaultLanguage,
		"READMEGEN_DOMAIN":             &cfg.Domain,
		"READMEGEN_REGISTRY_PATH":      &cfg.Registry.Path,
		"READMEGEN_REGISTRY_URL":       &cfg.Registry.URL,
		"READMEGEN_REGISTRY_CACHE_DIR": &cfg.Registry.CacheDir,
	}
	for key, target := range overlay {
		if v := os.Getenv(key); v != "" {
			*target = v
		}
	}
}

// applyDefaults fills unset fields after file and env overlays.
func applyDefaults(cfg *Config) {
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = "assets"
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = "en"
	}
	if cfg.Domain == "" {
		cfg.Domain = "messages"
	}
	if cfg.Registry.URL == "" {
		cfg.Registry.URL = "https://github.com/YunoHost/apps"
	}
	if cfg.Registry.CacheDir == "" {
		if base, err := os.UserCacheDir(); err == nil {
			cfg.Registry.CacheDir = filepath.Join(base, "readmegen")
		} else {
			cfg.Registry.CacheDir = filepath.Join(os.TempDir(), "readmegen")
		}
	}
}

// loadEnvFiles loads environment variables from .env/.env.local files.
// Existing process environment variables are not overwritten.
func loadEnvFiles() {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "Note: %s couldn't be loaded: %v\n", envPath, err)
			continue
		}
		return
	}
}
