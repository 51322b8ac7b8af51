package update

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sandeepkv93/taskcal/internal/agenda"
	"github.com/sandeepkv93/taskcal/internal/storage"
	"github.com/sandeepkv93/taskcal/internal/store"
	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Storage       string `yaml:"storage"`
	StorePath     string `yaml:"store_path"`
	StoreKey      string `yaml:"store_key"`
	Celebrate     bool   `yaml:"celebrate"`
	Watch         bool   `yaml:"watch"`
	LogFile       string `yaml:"log_file"`
	UpcomingLimit int    `yaml:"upcoming_limit"`
}

const defaultStoreDir = ".taskcal"

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Storage:       storage.BackendFile,
		StorePath:     defaultStoreDir,
		StoreKey:      store.DefaultKey,
		Celebrate:     true,
		Watch:         false,
		LogFile:       "",
		UpcomingLimit: agenda.UpcomingLimit,
	}
}

// LoadConfigFile overlays the YAML file at path onto base. Keys absent from
// the file keep their base value; a missing file is not an error.
func LoadConfigFile(path string, base RuntimeConfig) (RuntimeConfig, error) {
	cfg := base
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return base, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg.normalized(), nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("TASKCAL_STORAGE")); v != "" {
		cfg.Storage = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("TASKCAL_STORE_PATH")); v != "" {
		cfg.StorePath = v
	}
	if v, ok := getEnvBool("TASKCAL_CELEBRATE"); ok {
		cfg.Celebrate = v
	}
	if v, ok := getEnvBool("TASKCAL_WATCH"); ok {
		cfg.Watch = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKCAL_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v, ok := getEnvInt("TASKCAL_UPCOMING_LIMIT"); ok && v > 0 {
		cfg.UpcomingLimit = v
	}
	return cfg.normalized()
}

// StoreLocation is the path handed to storage.Open: a directory for the
// file backend, a database file for sqlite.
func (c RuntimeConfig) StoreLocation() string {
	path := strings.TrimSpace(c.StorePath)
	if path == "" {
		path = defaultStoreDir
	}
	if c.Storage == storage.BackendSQLite && !strings.HasSuffix(path, ".db") {
		return filepath.Join(path, "taskcal.db")
	}
	return path
}

func (c RuntimeConfig) normalized() RuntimeConfig {
	if c.UpcomingLimit <= 0 {
		c.UpcomingLimit = agenda.UpcomingLimit
	}
	if strings.TrimSpace(c.StoreKey) == "" {
		c.StoreKey = store.DefaultKey
	}
	return c
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
