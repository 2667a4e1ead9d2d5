package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxInputChars != 100000 {
		t.Errorf("MaxInputChars = %d, want 100000", cfg.MaxInputChars)
	}
	if cfg.Server.Addr != "127.0.0.1:8080" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Fetch.Timeout != 30*time.Second {
		t.Errorf("Fetch.Timeout = %v", cfg.Fetch.Timeout)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantMsg string
	}{
		{"negative ceiling", "max_input_chars", -1, "max_input_chars must be at least 0"},
		{"bad base url", "base_url", "not a url", "base_url must be a valid URL"},
		{"bad addr", "server.addr", "nowhere", "server.addr must be host:port"},
		{"bad level", "log.level", "loud", "log.level must be one of"},
		{"zero timeout", "fetch.timeout", 0, "fetch.timeout must be greater than 0"},
		{"bad format", "format", "docx", "format must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Load() error = %v, want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Load() error = %q, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoad_CeilingDisabled(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("max_input_chars", 0)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxInputChars != 0 {
		t.Errorf("MaxInputChars = %d, want 0", cfg.MaxInputChars)
	}
}

func TestSetup_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pastemark.yaml")
	content := "max_input_chars: 500\nbase_url: https://example.com/\nserver:\n  addr: \"localhost:9090\"\nfetch:\n  timeout: 5s\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PASTEMARK_LOG_LEVEL", "debug")

	v := viper.New()
	Setup(v, path)
	if err := Read(v); err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxInputChars != 500 || cfg.BaseURL != "https://example.com/" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Server.Addr != "localhost:9090" || cfg.Fetch.Timeout != 5*time.Second {
		t.Errorf("nested file values not applied: %+v", cfg)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want env override", cfg.Log.Level)
	}
}

func TestRead_MissingFileIgnored(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	Setup(v, "")
	if err := Read(v); err != nil {
		t.Errorf("Read() error = %v, want nil for a missing optional file", err)
	}
}
