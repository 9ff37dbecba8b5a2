package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version  string         `yaml:"version" json:"version"`
	Handoff  HandoffConfig  `yaml:"handoff" json:"handoff"`
	Render   RenderConfig   `yaml:"render" json:"render"`
	Playback PlaybackConfig `yaml:"playback" json:"playback"`
	Output   OutputConfig   `yaml:"output" json:"output"`
}

// HandoffConfig configures the file the renderer reads the array from
type HandoffConfig struct {
	Path     string `yaml:"path" json:"path"`         // hand-off file location
	Variable string `yaml:"variable" json:"variable"` // name the scenes import
}

// RenderConfig configures the containerised render invocation
type RenderConfig struct {
	Runtime       string        `yaml:"runtime" json:"runtime"`             // container CLI (docker, podman)
	Image         string        `yaml:"image" json:"image"`                 // renderer image
	HostDir       string        `yaml:"host_dir" json:"host_dir"`           // mounted project root, empty means working directory
	MountTarget   string        `yaml:"mount_target" json:"mount_target"`   // mount point inside the container
	ScenesDir     string        `yaml:"scenes_dir" json:"scenes_dir"`       // scene scripts, relative to the mount point
	Shell         string        `yaml:"shell" json:"shell"`                 // shell used to run the renderer
	Renderer      string        `yaml:"renderer" json:"renderer"`           // renderer executable
	RendererArgs  []string      `yaml:"renderer_args" json:"renderer_args"` // extra renderer flags
	Timeout       time.Duration `yaml:"timeout" json:"timeout"`             // 0 disables the timeout
	MaxLineLength int           `yaml:"max_line_length" json:"max_line_length"`
	LogLines      int           `yaml:"log_lines" json:"log_lines"` // lines kept in the log view
}

// PlaybackConfig configures the external media player
type PlaybackConfig struct {
	Player     string   `yaml:"player" json:"player"`
	PlayerArgs []string `yaml:"player_args" json:"player_args"`
	MediaDir   string   `yaml:"media_dir" json:"media_dir"` // renderer output tree on the host
	Quality    string   `yaml:"quality" json:"quality"`     // renderer quality directory, e.g. 1080p60
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown|csv
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Theme         string `yaml:"theme" json:"theme"`                   // default|high-contrast|minimal
	Verbose       bool   `yaml:"verbose" json:"verbose"`
	LogFile       string `yaml:"log_file" json:"log_file"` // log destination while the TUI runs
}

// DefaultConfig returns the configuration matching the stock SortFlow layout
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Handoff: HandoffConfig{
			Path:     "./animations/user_array.py",
			Variable: "my_array",
		},
		Render: RenderConfig{
			Runtime:       "docker",
			Image:         "manimce:latest",
			HostDir:       "",
			MountTarget:   "/AnimDir",
			ScenesDir:     "animations",
			Shell:         "/bin/bash",
			Renderer:      "manim",
			RendererArgs:  []string{},
			Timeout:       0,
			MaxLineLength: 1024 * 1024, // 1MB
			LogLines:      5000,
		},
		Playback: PlaybackConfig{
			Player:     "mpv",
			PlayerArgs: []string{},
			MediaDir:   "animations/media/videos",
			Quality:    "1080p60",
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Theme:         "default",
			Verbose:       false,
			LogFile:       "",
		},
	}
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateHandoffConfig(); err != nil {
		return err
	}
	if err := c.validateRenderConfig(); err != nil {
		return err
	}
	if err := c.validatePlaybackConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return nil
}

// validateHandoffConfig validates hand-off file settings
func (c *Config) validateHandoffConfig() error {
	if strings.TrimSpace(c.Handoff.Path) == "" {
		return fmt.Errorf("handoff.path must not be empty")
	}
	if !identifierRe.MatchString(c.Handoff.Variable) {
		return fmt.Errorf("invalid handoff variable: %q (must be a valid identifier)", c.Handoff.Variable)
	}
	return nil
}

// validateRenderConfig validates render invocation settings
func (c *Config) validateRenderConfig() error {
	required := map[string]string{
		"render.runtime":      c.Render.Runtime,
		"render.image":        c.Render.Image,
		"render.mount_target": c.Render.MountTarget,
		"render.shell":        c.Render.Shell,
		"render.renderer":     c.Render.Renderer,
	}
	for name, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	if !strings.HasPrefix(c.Render.MountTarget, "/") {
		return fmt.Errorf("render.mount_target must be an absolute container path, got %q", c.Render.MountTarget)
	}
	if c.Render.Timeout < 0 {
		return fmt.Errorf("render.timeout must be non-negative")
	}
	if c.Render.MaxLineLength < 1 {
		return fmt.Errorf("render.max_line_length must be greater than 0")
	}
	if c.Render.LogLines < 1 {
		return fmt.Errorf("render.log_lines must be greater than 0")
	}
	return nil
}

// validatePlaybackConfig validates player settings
func (c *Config) validatePlaybackConfig() error {
	if strings.TrimSpace(c.Playback.Player) == "" {
		return fmt.Errorf("playback.player must not be empty")
	}
	if strings.TrimSpace(c.Playback.MediaDir) == "" {
		return fmt.Errorf("playback.media_dir must not be empty")
	}
	if strings.TrimSpace(c.Playback.Quality) == "" {
		return fmt.Errorf("playback.quality must not be empty")
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	if c.Output.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.Output.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.Output.Theme)
		}
	}
	return nil
}
