package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Ribbon.Width != 1 {
		t.Errorf("expected ribbon width 1, got %g", cfg.Ribbon.Width)
	}
	if cfg.Ribbon.Truncate {
		t.Error("expected truncate to be off by default")
	}
	if !cfg.Ribbon.Wave.Enabled {
		t.Error("expected wave to be enabled by default")
	}
	if cfg.Stroke.Samples != 120 {
		t.Errorf("expected 120 samples, got %d", cfg.Stroke.Samples)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestRibbonOptions(t *testing.T) {
	cfg := Default()
	cfg.Ribbon.Truncate = true

	opts := cfg.Ribbon.Options()
	if !opts.Truncate {
		t.Error("truncate not carried into options")
	}
	if opts.WaveAmplitude != cfg.Ribbon.Wave.Amplitude {
		t.Errorf("amplitude = %g, want %g", opts.WaveAmplitude, cfg.Ribbon.Wave.Amplitude)
	}

	cfg.Ribbon.Wave.Enabled = false
	if got := cfg.Ribbon.Options().WaveAmplitude; got != 0 {
		t.Errorf("disabled wave should have zero amplitude, got %g", got)
	}
}

func TestStrokeOptions(t *testing.T) {
	s := StrokeConfig{TargetSpan: 4, Samples: 30, MinSpacing: 0.5, MinPixels: 2}
	opts := s.Options()
	if opts.TargetSpan != 4 || opts.Samples != 30 || opts.MinSpacing != 0.5 {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero window", func(c *Config) { c.Window.Width = 0 }},
		{"zero ribbon width", func(c *Config) { c.Ribbon.Width = 0 }},
		{"negative frames", func(c *Config) { c.Tiles.Frames = -1 }},
		{"bad level", func(c *Config) { c.Logging.Level = "chatty" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), fileName)

	yamlContent := `
window:
  width: 1920
  height: 1080
  vsync: false

ribbon:
  width: 0.5
  truncate: true
  wave:
    enabled: false

stroke:
  samples: 200

tiles:
  count: 3
  fps: 12

logging:
  level: "debug"
  log_file: "studio.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Ribbon.Width != 0.5 || !cfg.Ribbon.Truncate {
		t.Errorf("ribbon section not loaded: %+v", cfg.Ribbon)
	}
	if cfg.Ribbon.Wave.Enabled {
		t.Error("expected wave to be disabled")
	}
	// Untouched keys keep their defaults.
	if cfg.Ribbon.Wave.Speed != Default().Ribbon.Wave.Speed {
		t.Errorf("wave speed lost its default: %g", cfg.Ribbon.Wave.Speed)
	}
	if cfg.Stroke.Samples != 200 {
		t.Errorf("expected 200 samples, got %d", cfg.Stroke.Samples)
	}
	if cfg.Tiles.Count != 3 || cfg.Tiles.FPS != 12 {
		t.Errorf("tiles section not loaded: %+v", cfg.Tiles)
	}
	if cfg.Tiles.Frames != Default().Tiles.Frames {
		t.Errorf("tile frames lost its default: %d", cfg.Tiles.Frames)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "studio.log" {
		t.Errorf("logging section not loaded: %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
ribbon:
  width: wide
  no colon here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/path/studio.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadFileValidates(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid", "ribbon:\n  width: 2\n", false},
		{"negative width", "ribbon:\n  width: -1\n", true},
		{"unknown level", "logging:\n  level: bogus\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), fileName)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, err := LoadFile(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && cfg != nil {
				t.Error("LoadFile() returned a config alongside an error")
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Fatal("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, fileName), []byte("window:\n  width: 800\n"), 0o644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", fileName)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		set    func()
		reset  func()
		verify func(*testing.T, *Config)
	}{
		{
			name:  "debug",
			set:   func() { *flagDebug = true },
			reset: func() { *flagDebug = false },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name:  "fullscreen",
			set:   func() { *flagFullscreen = true },
			reset: func() { *flagFullscreen = false },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen")
				}
			},
		},
		{
			name: "window size",
			set: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			reset: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
		},
		{
			name:  "ribbon width",
			set:   func() { *flagRibbonWidth = 0.25 },
			reset: func() { *flagRibbonWidth = 0 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Ribbon.Width != 0.25 {
					t.Errorf("expected ribbon width 0.25, got %g", cfg.Ribbon.Width)
				}
			},
		},
		{
			name:  "truncate",
			set:   func() { *flagTruncate = true },
			reset: func() { *flagTruncate = false },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Ribbon.Truncate {
					t.Error("expected truncate")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.set()
			defer tt.reset()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), fileName)
	if err := os.WriteFile(configPath, []byte("window:\n  width: 1600\n  height: 900\n"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), fileName)
	if err := os.WriteFile(configPath, []byte("ribbon:\n  width: -1\n"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected negative ribbon width to be rejected")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", fileName)

	cfg := Default()
	cfg.Ribbon.Width = 2
	cfg.Tiles.Count = 9
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}
