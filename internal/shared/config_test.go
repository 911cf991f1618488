package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./slowdive.db" {
			t.Errorf("expected database path ./slowdive.db, got %s", config.Database.Path)
		}

		if config.API.BaseURL != "http://localhost:8000" {
			t.Errorf("expected base URL http://localhost:8000, got %s", config.API.BaseURL)
		}

		if config.Database.MaxOpenConns != 10 {
			t.Errorf("expected max open conns 10, got %d", config.Database.MaxOpenConns)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[api]
base_url = "https://api.slowdive.example"

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[session]
path = "/custom/session.json"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.API.BaseURL != "https://api.slowdive.example" {
			t.Errorf("expected base URL https://api.slowdive.example, got %s", config.API.BaseURL)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if config.Session.Path != "/custom/session.json" {
			t.Errorf("expected session path /custom/session.json, got %s", config.Session.Path)
		}
	})
}

func TestResolveBaseURL(t *testing.T) {
	t.Run("Explicit Override Wins", func(t *testing.T) {
		t.Setenv(EnvAPIURL, "http://override:9000")
		t.Setenv(EnvDeployURL, "deployed.slowdive.example")

		if got := ResolveBaseURL(DefaultConfig()); got != "http://override:9000" {
			t.Errorf("expected override URL, got %s", got)
		}
	})

	t.Run("Deploy URL Gets Scheme", func(t *testing.T) {
		t.Setenv(EnvAPIURL, "")
		t.Setenv(EnvDeployURL, "deployed.slowdive.example")

		if got := ResolveBaseURL(DefaultConfig()); got != "https://deployed.slowdive.example" {
			t.Errorf("expected https deploy URL, got %s", got)
		}
	})

	t.Run("Deploy URL Keeps Existing Scheme", func(t *testing.T) {
		t.Setenv(EnvAPIURL, "")
		t.Setenv(EnvDeployURL, "http://deployed.slowdive.example")

		if got := ResolveBaseURL(DefaultConfig()); got != "http://deployed.slowdive.example" {
			t.Errorf("expected scheme preserved, got %s", got)
		}
	})

	t.Run("Config Value", func(t *testing.T) {
		t.Setenv(EnvAPIURL, "")
		t.Setenv(EnvDeployURL, "")

		config := &Config{API: APIConfig{BaseURL: "http://configured:8000"}}
		if got := ResolveBaseURL(config); got != "http://configured:8000" {
			t.Errorf("expected configured URL, got %s", got)
		}
	})

	t.Run("Localhost Fallback", func(t *testing.T) {
		t.Setenv(EnvAPIURL, "")
		t.Setenv(EnvDeployURL, "")

		if got := ResolveBaseURL(&Config{}); got != "http://localhost:8000" {
			t.Errorf("expected localhost fallback, got %s", got)
		}
	})
}
