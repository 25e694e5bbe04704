package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	def := DefaultConfig()
	if cfg.MaxFireflies != def.MaxFireflies || cfg.WinPoints != def.WinPoints {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvMaxFireflies, "7")
	t.Setenv(EnvDebug, "true")
	t.Setenv(EnvLogFile, "match.log")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Seed != 99 || cfg.MaxFireflies != 7 || !cfg.Debug || cfg.LogFile != "match.log" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadConfigReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lampy.env")
	if err := os.WriteFile(path, []byte("LAMPY_WIN_POINTS=7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(EnvWinPoints) })

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.WinPoints != 7 {
		t.Errorf("win points = %d, want 7", cfg.WinPoints)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv(EnvMaxFireflies, "lots")
	if _, err := LoadConfig(""); err == nil {
		t.Error("expected an error for a non-numeric cap")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	cases := map[string]func(*Config){
		"negative cap":   func(c *Config) { c.MaxFireflies = -1 },
		"zero win":       func(c *Config) { c.WinPoints = 0 },
		"negative cache": func(c *Config) { c.CacheThreshold = -2 },
		"negative pool":  func(c *Config) { c.AmbientParticles = -1 },
	}
	for name, edit := range cases {
		cfg := DefaultConfig()
		edit(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}
