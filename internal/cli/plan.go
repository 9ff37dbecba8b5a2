package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yildizm/sortflow/internal/algorithm"
	"github.com/yildizm/sortflow/internal/arrayinput"
	"github.com/yildizm/sortflow/internal/formatter"
	"github.com/yildizm/sortflow/internal/scene"
)

var (
	planAlgorithm  string
	planOutputFile string
)

func newPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [array]",
		Short: "Print the storyboard a scene would animate",
		Long: `Run a scene's sort without rendering and print every step it animates:
comparisons, swaps, shifts and the array after each step.

Without an array argument the current hand-off file is used.

Examples:
  sortflow plan --algorithm bubble "5, 3, 1"
  sortflow plan -a selection --output json 4 2 9
  sortflow plan -a insertion --output markdown --output-file plan.md`,
		RunE: runPlan,
	}

	addAlgorithmFlag(cmd, &planAlgorithm)
	cmd.Flags().StringVar(&planOutputFile, "output-file", "", "write the storyboard to a file instead of stdout")

	return cmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	a, err := algorithm.Parse(planAlgorithm)
	if err != nil {
		return err
	}

	array, err := planArray(args)
	if err != nil {
		return err
	}

	plan, err := scene.Build(a, array)
	if err != nil {
		return err
	}

	f, err := getFormatter(getOutputFormat(), useColor() && planOutputFile == "")
	if err != nil {
		return err
	}

	output, err := f.Format(plan)
	if err != nil {
		return fmt.Errorf("failed to format storyboard: %w", err)
	}

	if planOutputFile != "" {
		if err := validateOutputFilePath(planOutputFile); err != nil {
			return fmt.Errorf("invalid output file: %w", err)
		}
		if err := writeOutputBytesToFile(output, planOutputFile); err != nil {
			return err
		}
		if isVerbose() {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s Storyboard written to %s\n", GetEmoji("file"), planOutputFile)
		}
		return nil
	}

	_, err = cmd.OutOrStdout().Write(output)
	return err
}

func planArray(args []string) (arrayinput.Array, error) {
	if len(args) > 0 {
		return arrayinput.Parse(joinArrayArgs(args))
	}

	cfg := GetGlobalConfig()
	handoff := arrayinput.NewHandoff(cfg.Handoff.Path, cfg.Handoff.Variable)
	array, err := handoff.Read()
	if err != nil {
		return nil, fmt.Errorf("no array given and the hand-off file could not be read: %w", err)
	}
	return array, nil
}

// getFormatter returns the appropriate formatter for the given format
func getFormatter(format string, color bool) (formatter.Formatter, error) {
	return formatter.New(format, color)
}

func validateOutputFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty file path")
	}
	info, err := os.Stat(filepath.Clean(path))
	if err == nil && info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	return nil
}

func writeOutputBytesToFile(output []byte, filePath string) error {
	cleanPath := filepath.Clean(filePath)

	// Create or truncate the file
	file, err := os.Create(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close output file: %v\n", closeErr)
		}
	}()

	if _, err := file.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	// Sync to ensure data is written
	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync output file: %w", err)
	}

	return nil
}
