package cmd

import (
	"github.com/mouse-blink/antinode/internal/domain"
	"github.com/spf13/cobra"
)

var viewPolicyFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Draw the grid with its antinodes",
		Long:  "Draw the grid with antennas by frequency and antinodes marked '#' for one policy.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := domain.PolicyByName(viewPolicyFlag)
			if err != nil {
				return err
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{
				Input:  parsePath(args),
				Policy: policy,
			})
		},
	}
	cmd.Flags().StringVarP(&viewPolicyFlag, "policy", "P", "nearest", "policy to draw: nearest or resonant")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
