package color

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/swatch/internal/cli"
	"github.com/thenoetrevino/swatch/internal/cli/styles"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a random color",
		Long: `Generate a random color and store it in the local database.

Examples:
  # Human-readable output
  swatch add

  # JSON output for agents
  swatch add --json

  # Quiet mode for bash capture
  COLOR_ID=$(swatch add --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jsonOutput, quietMode := outputFlags(cmd)

	formatter := &cli.OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}

	// Initialize CLI
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.WithCode(cli.ExitError, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	record, err := cliInstance.App.ColorService.AddColor(ctx)
	if err != nil {
		if fmtErr := formatter.Error("COLOR_ADD_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.WithCode(cli.ExitError, err)
	}

	// Output based on mode
	if quietMode {
		return formatter.Success(record)
	}

	if jsonOutput {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"color":   colorJSON(record),
		})
	}

	formatter.Printf("✓ Color %s added (ID: %d)\n", styles.RenderSwatch(record), record.ID)
	formatter.Printf("  Created at %s\n", record.CreatedAt().Format(dateLayout))
	return nil
}
