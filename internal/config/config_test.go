package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", cfg.Version)
	}

	if cfg.Handoff.Path != "./animations/user_array.py" {
		t.Errorf("Expected hand-off path ./animations/user_array.py, got %s", cfg.Handoff.Path)
	}

	if cfg.Handoff.Variable != "my_array" {
		t.Errorf("Expected hand-off variable my_array, got %s", cfg.Handoff.Variable)
	}

	if cfg.Render.Image != "manimce:latest" {
		t.Errorf("Expected render image manimce:latest, got %s", cfg.Render.Image)
	}

	if cfg.Render.MountTarget != "/AnimDir" {
		t.Errorf("Expected mount target /AnimDir, got %s", cfg.Render.MountTarget)
	}

	if cfg.Render.Timeout != 0 {
		t.Errorf("Expected no render timeout by default, got %v", cfg.Render.Timeout)
	}

	if cfg.Playback.Player != "mpv" {
		t.Errorf("Expected player mpv, got %s", cfg.Playback.Player)
	}

	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected output format text, got %s", cfg.Output.DefaultFormat)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			modify:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "empty hand-off path",
			modify:  func(c *Config) { c.Handoff.Path = " " },
			wantErr: true,
			errMsg:  "handoff.path must not be empty",
		},
		{
			name:    "invalid hand-off variable",
			modify:  func(c *Config) { c.Handoff.Variable = "my-array" },
			wantErr: true,
			errMsg:  `invalid handoff variable: "my-array" (must be a valid identifier)`,
		},
		{
			name:    "empty image",
			modify:  func(c *Config) { c.Render.Image = "" },
			wantErr: true,
			errMsg:  "render.image must not be empty",
		},
		{
			name:    "relative mount target",
			modify:  func(c *Config) { c.Render.MountTarget = "AnimDir" },
			wantErr: true,
			errMsg:  `render.mount_target must be an absolute container path, got "AnimDir"`,
		},
		{
			name:    "negative timeout",
			modify:  func(c *Config) { c.Render.Timeout = -time.Second },
			wantErr: true,
			errMsg:  "render.timeout must be non-negative",
		},
		{
			name:    "zero max line length",
			modify:  func(c *Config) { c.Render.MaxLineLength = 0 },
			wantErr: true,
			errMsg:  "render.max_line_length must be greater than 0",
		},
		{
			name:    "zero log lines",
			modify:  func(c *Config) { c.Render.LogLines = 0 },
			wantErr: true,
			errMsg:  "render.log_lines must be greater than 0",
		},
		{
			name:    "empty player",
			modify:  func(c *Config) { c.Playback.Player = "" },
			wantErr: true,
			errMsg:  "playback.player must not be empty",
		},
		{
			name:    "invalid output format",
			modify:  func(c *Config) { c.Output.DefaultFormat = "invalid" },
			wantErr: true,
			errMsg:  "invalid output format: invalid (must be one of: json, text, markdown, csv)",
		},
		{
			name:    "invalid color mode",
			modify:  func(c *Config) { c.Output.ColorMode = "invalid" },
			wantErr: true,
			errMsg:  "invalid color mode: invalid (must be one of: auto, always, never)",
		},
		{
			name:    "invalid theme",
			modify:  func(c *Config) { c.Output.Theme = "neon" },
			wantErr: true,
			errMsg:  "invalid theme: neon (must be one of: default, high-contrast, minimal)",
		},
		{
			name:    "positive timeout",
			modify:  func(c *Config) { c.Render.Timeout = 10 * time.Minute },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none")
				} else if tt.errMsg != "" && err.Error() != tt.errMsg {
					t.Errorf("Expected error message '%s', got '%s'", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
			}
		})
	}
}

func TestConfigMerging(t *testing.T) {
	dst := DefaultConfig()

	src := &Config{
		Render: RenderConfig{
			Image:        "manimcommunity/manim:stable",
			RendererArgs: []string{"-qh"},
			Timeout:      5 * time.Minute,
		},
		Playback: PlaybackConfig{
			Quality: "720p30",
		},
		Output: OutputConfig{
			DefaultFormat: "json",
			Verbose:       true,
		},
	}

	mergeConfigs(dst, src)

	if dst.Render.Image != "manimcommunity/manim:stable" {
		t.Errorf("Expected image to be merged, got %s", dst.Render.Image)
	}
	if len(dst.Render.RendererArgs) != 1 || dst.Render.RendererArgs[0] != "-qh" {
		t.Errorf("Expected renderer args [-qh], got %v", dst.Render.RendererArgs)
	}
	if dst.Render.Timeout != 5*time.Minute {
		t.Errorf("Expected timeout 5m, got %v", dst.Render.Timeout)
	}
	if dst.Playback.Quality != "720p30" {
		t.Errorf("Expected quality 720p30, got %s", dst.Playback.Quality)
	}
	if dst.Output.DefaultFormat != "json" {
		t.Errorf("Expected output format json, got %s", dst.Output.DefaultFormat)
	}
	if !dst.Output.Verbose {
		t.Errorf("Expected verbose to be true")
	}

	// Unset values in source don't override destination
	if dst.Render.Runtime != "docker" {
		t.Errorf("Expected runtime to remain docker, got %s", dst.Render.Runtime)
	}
	if dst.Handoff.Variable != "my_array" {
		t.Errorf("Expected variable to remain my_array, got %s", dst.Handoff.Variable)
	}
	if dst.Playback.Player != "mpv" {
		t.Errorf("Expected player to remain mpv, got %s", dst.Playback.Player)
	}
}

func TestSampleConfigsParse(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"sample.yaml":  SampleConfig(),
		"minimal.yaml": MinimalSampleConfig(),
	} {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := writeAndLoad(t, dir, name, content, cfg); err != nil {
				t.Fatalf("Sample config failed to load: %v", err)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Sample config failed validation: %v", err)
			}
			if cfg.Render.Image != "manimce:latest" {
				t.Errorf("Expected image manimce:latest, got %s", cfg.Render.Image)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "relative path",
			input:    "./config.yaml",
			expected: "./config.yaml",
		},
		{
			name:     "absolute path",
			input:    "/etc/sortflow/config.yaml",
			expected: "/etc/sortflow/config.yaml",
		},
		{
			name:     "home directory path",
			input:    "~/.config/sortflow/config.yaml",
			expected: "~/.config/sortflow/config.yaml", // Will be expanded in real usage
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if tt.input == "~/.config/sortflow/config.yaml" {
				// For tilde expansion, just check it's different from input
				if result == tt.input {
					t.Errorf("Expected path to be expanded, but got same path")
				}
			} else {
				if result != tt.expected {
					t.Errorf("Expected %s, got %s", tt.expected, result)
				}
			}
		})
	}
}
