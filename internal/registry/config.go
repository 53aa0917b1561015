package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stemlab/biobank-backend/internal/platform/logger"
	"github.com/stemlab/biobank-backend/internal/utils"
)

// Config holds the registry API endpoints and basic-auth credentials. The
// optional yaml file is loaded first; environment variables override it, so
// credentials can stay out of the file.
type Config struct {
	ListURL   string `yaml:"list_url"`
	RecordURL string `yaml:"record_url"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
}

func LoadConfig(path string, log *logger.Logger) (Config, error) {
	var cfg Config

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			log.Debug("No registry config file, relying on environment", "path", path)
		case err != nil:
			return Config{}, fmt.Errorf("failed to read registry config %q: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse registry config %q: %w", path, err)
			}
		}
	}

	cfg.ListURL = utils.GetEnv("REGISTRY_LIST_URL", cfg.ListURL, log)
	cfg.RecordURL = utils.GetEnv("REGISTRY_RECORD_URL", cfg.RecordURL, log)
	cfg.Username = utils.GetEnv("REGISTRY_USERNAME", cfg.Username, log)
	cfg.Password = utils.GetEnv("REGISTRY_PASSWORD", cfg.Password, log)

	if cfg.ListURL == "" || cfg.RecordURL == "" {
		return Config{}, fmt.Errorf("registry list and record URLs must be configured")
	}

	return cfg, nil
}
