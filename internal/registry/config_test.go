package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stemlab/biobank-backend/internal/platform/logger"
)

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	content := "list_url: https://registry.example.org/api/full_list\n" +
		"record_url: https://registry.example.org/api/export\n" +
		"username: importer\n" +
		"password: secret\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path, logger.NewNop())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ListURL != "https://registry.example.org/api/full_list" {
		t.Fatalf("unexpected list url %q", cfg.ListURL)
	}
	if cfg.Username != "importer" || cfg.Password != "secret" {
		t.Fatalf("unexpected credentials %q / %q", cfg.Username, cfg.Password)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	content := "list_url: https://registry.example.org/api/full_list\n" +
		"record_url: https://registry.example.org/api/export\n" +
		"username: importer\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("REGISTRY_USERNAME", "override")

	cfg, err := LoadConfig(path, logger.NewNop())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Username != "override" {
		t.Fatalf("expected env to win, got %q", cfg.Username)
	}
}

func TestLoadConfigMissingFileUsesEnv(t *testing.T) {
	t.Setenv("REGISTRY_LIST_URL", "https://registry.example.org/api/full_list")
	t.Setenv("REGISTRY_RECORD_URL", "https://registry.example.org/api/export")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), logger.NewNop())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.RecordURL != "https://registry.example.org/api/export" {
		t.Fatalf("unexpected record url %q", cfg.RecordURL)
	}
}

func TestLoadConfigRequiresEndpoints(t *testing.T) {
	if _, err := LoadConfig("", logger.NewNop()); err == nil {
		t.Fatal("expected missing endpoints to fail")
	}
}
