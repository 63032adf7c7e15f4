package color

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/swatch/internal/cli"
	"github.com/thenoetrevino/swatch/internal/cli/styles"
	colorservice "github.com/thenoetrevino/swatch/internal/services/color"
)

// SyncCmd returns the sync subcommand
func SyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Push the sync record to Firestore",
		Long: `Write the sync placeholder document to Firestore.

Requires Firebase credentials, either in config.yaml under sync or through
FIREBASE_CREDENTIALS_PATH and FIREBASE_PROJECT_ID.

Examples:
  swatch sync
  swatch sync --json
`,
		Args: cobra.NoArgs,
		RunE: runSync,
	}

	addOutputFlags(cmd, "No output on success")

	return cmd
}

func runSync(cmd *cobra.Command, args []string) error {
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

	if err := cliInstance.App.ColorService.SyncColors(ctx); err != nil {
		if errors.Is(err, colorservice.ErrSyncNotConfigured) {
			if fmtErr := formatter.ErrorWithSuggestion("SYNC_NOT_CONFIGURED",
				err.Error(),
				"Set FIREBASE_CREDENTIALS_PATH and FIREBASE_PROJECT_ID, or sync.credentials_file in config.yaml"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			return cli.WithCode(cli.ExitNotConfigured, err)
		}

		if fmtErr := formatter.Error("SYNC_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.WithCode(cli.ExitError, err)
	}

	if jsonOutput {
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
		})
	}

	formatter.Printf("%s\n", styles.SuccessStyle.Render("✓ Colors synced"))
	return nil
}
