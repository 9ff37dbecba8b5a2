package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yildizm/sortflow/internal/algorithm"
	"github.com/yildizm/sortflow/internal/arrayinput"
	"github.com/yildizm/sortflow/internal/config"
	"github.com/yildizm/sortflow/internal/playback"
	"github.com/yildizm/sortflow/internal/render"
)

// sampleArray is what the hand-off preview in validate writes
var sampleArray = arrayinput.Array{arrayinput.Int(5), arrayinput.Int(3), arrayinput.Int(1)}

// newConfigCommand groups the configuration subcommands. They read the
// global --config flag themselves so a broken file can still be inspected.
func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage SortFlow configuration",
		Long: `Create, inspect and check the SortFlow configuration.

Settings are read from the first config file found on the search path,
then overridden by SORTFLOW_* environment variables.`,
		Annotations: map[string]string{
			skipConfigAnnotation: "true",
		},
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigValidateCommand())
	configCmd.AddCommand(newConfigPathCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var (
		outputPath string
		minimal    bool
		force      bool
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long: `Write a configuration file holding the stock render, playback and
output settings. The full template documents every key; --minimal keeps
only the render image, host directory and player.`,
		Example: `  sortflow config init
  sortflow config init --minimal --output ~/.config/sortflow/config.yaml
  sortflow config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.SampleConfig()
			kind := "full configuration with every option documented"
			if minimal {
				content = config.MinimalSampleConfig()
				kind = "minimal configuration"
			}

			path := config.ExpandPath(outputPath)
			if err := writeConfigFile(path, content, force); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Configuration file created at: %s\n", GetEmoji("success"), path)
			fmt.Fprintf(out, "%s Wrote a %s\n", GetEmoji("file"), kind)
			return nil
		},
	}

	initCmd.Flags().StringVarP(&outputPath, "output", "o", ".sortflow.yaml", "where to write the config file")
	initCmd.Flags().BoolVarP(&minimal, "minimal", "m", false, "write only the essential settings")
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return initCmd
}

// writeConfigFile creates path and its directory. An existing file is only
// replaced when force is set.
func writeConfigFile(path, content string, force bool) error {
	if fileExists(path) && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func newConfigShowCommand() *cobra.Command {
	var format string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, config files and environment
overrides are merged.

--format commands prints what SortFlow would actually run instead: the
render command of every algorithm and the player invocation on its video.`,
		Example: `  sortflow config show
  sortflow config show --format json
  sortflow config show --format commands --config ./ci.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader().LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return showConfig(cmd.OutOrStdout(), cfg, format)
		},
	}

	showCmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml, json, commands)")

	return showCmd
}

func showConfig(out io.Writer, cfg *config.Config, format string) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
		_, err = out.Write(data)
		return err
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config to JSON: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case "commands":
		return writeCommands(out, cfg)
	default:
		return fmt.Errorf("unsupported format: %s (use yaml, json or commands)", format)
	}
}

// writeCommands prints the resolved render and player invocations
func writeCommands(out io.Writer, cfg *config.Config) error {
	dispatcher := render.NewDispatcher(cfg.Render, newLogger("render"))
	trigger := playback.NewTrigger(cfg.Playback, newLogger("playback"))

	for _, a := range algorithm.All() {
		renderCmd, err := dispatcher.CommandFor(a)
		if err != nil {
			return fmt.Errorf("failed to build %s render command: %w", a.Key(), err)
		}
		fmt.Fprintf(out, "%s %s\n", GetEmoji("render"), a)
		fmt.Fprintf(out, "   render: %s\n", renderCmd.String())
		fmt.Fprintf(out, "   play:   %s\n", trigger.CommandFor(a).String())
	}
	return nil
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a configuration file",
		Long: `Load and validate the configuration: YAML syntax, required render and
playback settings, output enums and the hand-off variable name. On success
the hand-off line and the video paths the settings produce are shown.`,
		Example: `  sortflow config validate
  sortflow config validate --config ./ci.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.NewLoader().LoadConfig(cfgFile)
			if err != nil {
				fmt.Fprintf(out, "%s Configuration validation failed:\n   %v\n", GetEmoji("error"), err)
				return err
			}

			handoff := arrayinput.NewHandoff(cfg.Handoff.Path, cfg.Handoff.Variable)
			trigger := playback.NewTrigger(cfg.Playback, newLogger("playback"))

			fmt.Fprintf(out, "%s Configuration is valid\n", GetEmoji("success"))
			fmt.Fprintf(out, "%s Configuration summary:\n", GetEmoji("statistics"))
			fmt.Fprintf(out, "   Version: %s\n", cfg.Version)
			fmt.Fprintf(out, "   Hand-off File: %s\n", handoff.Path())
			fmt.Fprintf(out, "   Hand-off Line: %s", handoff.Content(sampleArray))
			fmt.Fprintf(out, "   Render Image: %s (%s)\n", cfg.Render.Image, cfg.Render.Runtime)
			fmt.Fprintf(out, "   Player: %s\n", cfg.Playback.Player)
			for _, a := range algorithm.All() {
				fmt.Fprintf(out, "   %s Video: %s\n", a, trigger.PathFor(a))
			}
			fmt.Fprintf(out, "   Output Format: %s\n", cfg.Output.DefaultFormat)
			return nil
		},
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "List where configuration is looked up",
		Long:  "List the config file search path, highest priority first, and the file in use.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Configuration file search paths (highest priority first):\n\n", GetEmoji("file"))

			for i, path := range config.GetConfigPaths() {
				status := "not found"
				if fileExists(config.ExpandPath(path)) {
					status = GetEmoji("success") + " exists"
				}
				fmt.Fprintf(out, "  %d. %s (%s)\n", i+1, path, status)
			}
			fmt.Fprintln(out)

			switch current, found := config.FindConfigFile(); {
			case cfgFile != "":
				fmt.Fprintf(out, "In use: %s (from --config)\n", cfgFile)
			case found:
				fmt.Fprintf(out, "In use: %s\n", current)
			default:
				fmt.Fprintln(out, "In use: built-in defaults")
			}

			fmt.Fprintf(out, "%s SORTFLOW_* environment variables override file settings\n", GetEmoji("info"))
		},
	}
}

// fileExists reports whether path names an existing file
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
