package cli

import (
	"github.com/spf13/cobra"

	"github.com/yildizm/sortflow/internal/algorithm"
)

var playAlgorithm string

func newPlayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the last rendered video of an algorithm",
		Long: `Open the video the renderer last wrote for an algorithm in the configured
media player. Nothing is rendered.

Examples:
  sortflow play --algorithm selection`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := algorithm.Parse(playAlgorithm)
			if err != nil {
				return err
			}
			return playVideo(cmd.Context(), cmd, GetGlobalConfig().Playback, a)
		},
	}

	addAlgorithmFlag(cmd, &playAlgorithm)

	return cmd
}
