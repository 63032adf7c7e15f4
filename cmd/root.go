package cmd

import (
	"context"

	"github.com/spf13/cobra"
	colorcmd "github.com/thenoetrevino/swatch/internal/cli/color"
	"github.com/thenoetrevino/swatch/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Swatch - random color swatches in your terminal",
	Long: `Swatch generates random colors, keeps them in a local SQLite database
and shows them as a grid of cards. Run without a subcommand to open the TUI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch()
	},
}

func init() {
	rootCmd.AddCommand(colorcmd.Commands()...)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}
