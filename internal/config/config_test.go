// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// These tests mutate the package-level overrides, so they must not run in
// parallel with each other.

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DefaultPackaging != "jar" {
		t.Errorf("DefaultPackaging = %q, want jar", cfg.DefaultPackaging)
	}
	if cfg.PomFileName != "pom.xml" {
		t.Errorf("PomFileName = %q, want pom.xml", cfg.PomFileName)
	}
	if cfg.UI.Verbose {
		t.Error("UI.Verbose = true, want false by default")
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	content := "default_packaging = \"war\"\n\n[ui]\nverbose = true\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DefaultPackaging != "war" {
		t.Errorf("DefaultPackaging = %q, want war", cfg.DefaultPackaging)
	}
	if cfg.PomFileName != "pom.xml" {
		t.Errorf("PomFileName = %q, want default pom.xml to survive partial config", cfg.PomFileName)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true from config file")
	}
}

func TestLoadExplicitConfigFileOverride(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(Reset)

	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("pom_file_name = \"project.xml\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	SetConfigFilePathOverride(path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PomFileName != "project.xml" {
		t.Errorf("PomFileName = %q, want project.xml", cfg.PomFileName)
	}
}

func TestLoadMissingExplicitConfigFileFails(t *testing.T) {
	t.Cleanup(Reset)
	SetConfigFilePathOverride(filepath.Join(t.TempDir(), "nope.toml"))

	if _, err := Load(); err == nil {
		t.Error("Load() error = nil, want failure for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid",
			cfg:  Config{DefaultPackaging: "jar", PomFileName: "pom.xml"},
		},
		{
			name:    "blank packaging",
			cfg:     Config{DefaultPackaging: "  ", PomFileName: "pom.xml"},
			wantErr: ErrInvalidPackaging,
		},
		{
			name:    "pom file name with separator",
			cfg:     Config{DefaultPackaging: "jar", PomFileName: "sub/pom.xml"},
			wantErr: ErrInvalidPomFileName,
		},
		{
			name:    "blank pom file name",
			cfg:     Config{DefaultPackaging: "jar", PomFileName: ""},
			wantErr: ErrInvalidPomFileName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want errors.Is(err, %v)", err, tt.wantErr)
			}
		})
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultPackaging != "jar" {
		t.Errorf("DefaultPackaging = %q, want jar from generated file", cfg.DefaultPackaging)
	}

	// Second call must leave the existing file alone.
	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("second CreateDefaultConfig() error = %v", err)
	}
}
