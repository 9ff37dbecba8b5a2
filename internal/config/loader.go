package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.sortflow.yaml",               // Project-specific config (highest priority)
	"~/.config/sortflow/config.yaml", // User config
	"/etc/sortflow/config.yaml",      // System config (lowest priority)
}

// EnvFiles are dotenv files loaded before environment overrides are applied.
// Variables already present in the environment win.
var EnvFiles = []string{".env"}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	envFiles    []string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
		envFiles:    EnvFiles,
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables (including .env files)
// 3. ./.sortflow.yaml
// 4. ~/.config/sortflow/config.yaml
// 5. /etc/sortflow/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Lowest priority first
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if fileExists(expandedPath) {
				if err := l.loadFromFile(config, expandedPath); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
				}
			}
		}
	}

	if err := l.loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile loads configuration from a YAML file and merges it with existing config
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() before reaching here
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(config, &fileConfig)

	return nil
}

// loadEnvFiles loads the dotenv files that exist
func (l *Loader) loadEnvFiles() error {
	var existing []string
	for _, path := range l.envFiles {
		if fileExists(expandPath(path)) {
			existing = append(existing, expandPath(path))
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		// Handoff Config
		"SORTFLOW_HANDOFF_PATH":     func(v string) error { config.Handoff.Path = v; return nil },
		"SORTFLOW_HANDOFF_VARIABLE": func(v string) error { config.Handoff.Variable = v; return nil },

		// Render Config
		"SORTFLOW_RENDER_RUNTIME":         func(v string) error { config.Render.Runtime = v; return nil },
		"SORTFLOW_RENDER_IMAGE":           func(v string) error { config.Render.Image = v; return nil },
		"SORTFLOW_RENDER_HOST_DIR":        func(v string) error { config.Render.HostDir = v; return nil },
		"SORTFLOW_RENDER_MOUNT_TARGET":    func(v string) error { config.Render.MountTarget = v; return nil },
		"SORTFLOW_RENDER_SCENES_DIR":      func(v string) error { config.Render.ScenesDir = v; return nil },
		"SORTFLOW_RENDER_SHELL":           func(v string) error { config.Render.Shell = v; return nil },
		"SORTFLOW_RENDER_RENDERER":        func(v string) error { config.Render.Renderer = v; return nil },
		"SORTFLOW_RENDER_TIMEOUT":         func(v string) error { return parseDuration(v, &config.Render.Timeout) },
		"SORTFLOW_RENDER_MAX_LINE_LENGTH": func(v string) error { return parseInt(v, &config.Render.MaxLineLength) },
		"SORTFLOW_RENDER_LOG_LINES":       func(v string) error { return parseInt(v, &config.Render.LogLines) },

		// Playback Config
		"SORTFLOW_PLAYBACK_PLAYER":    func(v string) error { config.Playback.Player = v; return nil },
		"SORTFLOW_PLAYBACK_MEDIA_DIR": func(v string) error { config.Playback.MediaDir = v; return nil },
		"SORTFLOW_PLAYBACK_QUALITY":   func(v string) error { config.Playback.Quality = v; return nil },

		// Output Config
		"SORTFLOW_OUTPUT_DEFAULT_FORMAT": func(v string) error { config.Output.DefaultFormat = v; return nil },
		"SORTFLOW_OUTPUT_COLOR_MODE":     func(v string) error { config.Output.ColorMode = v; return nil },
		"SORTFLOW_OUTPUT_THEME":          func(v string) error { config.Output.Theme = v; return nil },
		"SORTFLOW_OUTPUT_VERBOSE":        func(v string) error { return parseBool(v, &config.Output.Verbose) },
		"SORTFLOW_OUTPUT_LOG_FILE":       func(v string) error { config.Output.LogFile = v; return nil },
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	// Space-separated argument lists
	if args := os.Getenv("SORTFLOW_RENDER_RENDERER_ARGS"); args != "" {
		config.Render.RendererArgs = strings.Fields(args)
	}
	if args := os.Getenv("SORTFLOW_PLAYBACK_PLAYER_ARGS"); args != "" {
		config.Playback.PlayerArgs = strings.Fields(args)
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// Helper functions

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/etc/passwd") ||
		strings.HasPrefix(absPath, "/etc/shadow") ||
		strings.HasPrefix(absPath, "/proc/") ||
		strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// ExpandPath expands ~ to the home directory
func ExpandPath(path string) string {
	return expandPath(path)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// mergeConfigs merges source config into destination config.
// Only non-zero values from source overwrite destination.
func mergeConfigs(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}

	mergeHandoffConfig(&dst.Handoff, &src.Handoff)
	mergeRenderConfig(&dst.Render, &src.Render)
	mergePlaybackConfig(&dst.Playback, &src.Playback)
	mergeOutputConfig(&dst.Output, &src.Output)
}

// mergeHandoffConfig merges hand-off configuration
func mergeHandoffConfig(dst, src *HandoffConfig) {
	mergeString(&dst.Path, src.Path)
	mergeString(&dst.Variable, src.Variable)
}

// mergeRenderConfig merges render configuration
func mergeRenderConfig(dst, src *RenderConfig) {
	mergeString(&dst.Runtime, src.Runtime)
	mergeString(&dst.Image, src.Image)
	mergeString(&dst.HostDir, src.HostDir)
	mergeString(&dst.MountTarget, src.MountTarget)
	mergeString(&dst.ScenesDir, src.ScenesDir)
	mergeString(&dst.Shell, src.Shell)
	mergeString(&dst.Renderer, src.Renderer)
	if len(src.RendererArgs) > 0 {
		dst.RendererArgs = src.RendererArgs
	}
	if src.Timeout != 0 {
		dst.Timeout = src.Timeout
	}
	if src.MaxLineLength != 0 {
		dst.MaxLineLength = src.MaxLineLength
	}
	if src.LogLines != 0 {
		dst.LogLines = src.LogLines
	}
}

// mergePlaybackConfig merges playback configuration
func mergePlaybackConfig(dst, src *PlaybackConfig) {
	mergeString(&dst.Player, src.Player)
	mergeString(&dst.MediaDir, src.MediaDir)
	mergeString(&dst.Quality, src.Quality)
	if len(src.PlayerArgs) > 0 {
		dst.PlayerArgs = src.PlayerArgs
	}
}

// mergeOutputConfig merges output configuration
func mergeOutputConfig(dst, src *OutputConfig) {
	mergeString(&dst.DefaultFormat, src.DefaultFormat)
	mergeString(&dst.ColorMode, src.ColorMode)
	mergeString(&dst.Theme, src.Theme)
	mergeString(&dst.LogFile, src.LogFile)
	// A false in a file cannot be told apart from an absent key; only true merges
	if src.Verbose {
		dst.Verbose = true
	}
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// Type conversion helpers

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseDuration(s string, dst *time.Duration) error {
	val, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
