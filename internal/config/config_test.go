package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid memory backend config",
			config: Config{
				Port:        "8082",
				DataBackend: "memory",
			},
			wantErr: false,
		},
		{
			name: "valid sqlite backend config",
			config: Config{
				Port:         "8082",
				DataBackend:  "sqlite",
				SQLiteDBPath: "./test.db",
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:        "abc",
				DataBackend: "memory",
			},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name: "invalid port - out of range low",
			config: Config{
				Port:        "0",
				DataBackend: "memory",
			},
			wantErr:     true,
			errorString: "invalid port 0: must be between 1 and 65535",
		},
		{
			name: "invalid port - out of range high",
			config: Config{
				Port:        "70000",
				DataBackend: "memory",
			},
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name: "invalid data backend",
			config: Config{
				Port:        "8082",
				DataBackend: "redis",
			},
			wantErr:     true,
			errorString: "invalid data backend 'redis': must be one of [memory sqlite]",
		},
		{
			name: "sqlite backend missing database path",
			config: Config{
				Port:         "8082",
				DataBackend:  "sqlite",
				SQLiteDBPath: "",
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty when using sqlite backend",
		},
		{
			name: "multiple errors reported together",
			config: Config{
				Port:        "abc",
				DataBackend: "redis",
			},
			wantErr:     true,
			errorString: "invalid data backend 'redis'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
			} else {
				if err != nil {
					t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
				}
			}
		})
	}
}

func TestConfig_ValidateCreatesSQLiteDir(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := Config{
		Port:         "8082",
		DataBackend:  "sqlite",
		SQLiteDBPath: filepath.Join(tmpDir, "nested", "cashbook.db"),
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Config.Validate() error = %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "SQLITE_DB_PATH", "DATA_BACKEND"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8082" {
		t.Errorf("Port = %q, want 8082", cfg.Port)
	}
	if cfg.SQLiteDBPath != "./data/cashbook.db" {
		t.Errorf("SQLiteDBPath = %q, want ./data/cashbook.db", cfg.SQLiteDBPath)
	}
	if cfg.DataBackend != "memory" {
		t.Errorf("DataBackend = %q, want memory", cfg.DataBackend)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("SQLITE_DB_PATH", "/tmp/x.db")

	cfg := Load()
	if cfg.Port != "9000" || cfg.DataBackend != "sqlite" || cfg.SQLiteDBPath != "/tmp/x.db" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}
