package color

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/swatch/internal/cli"
	"github.com/thenoetrevino/swatch/internal/cli/styles"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored colors",
		Long: `List every stored color in the order it was added.

Examples:
  # Human-readable list
  swatch list

  # JSON output for agents
  swatch list --json

  # Quiet mode (one ID per line)
  swatch list --quiet
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	addOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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

	colors, err := cliInstance.App.ColorService.FetchAll(ctx)
	if err != nil {
		if fmtErr := formatter.Error("COLOR_FETCH_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.WithCode(cli.ExitError, err)
	}

	// Output based on mode
	if quietMode {
		for _, c := range colors {
			if err := formatter.Success(c); err != nil {
				return err
			}
		}
		return nil
	}

	if jsonOutput {
		colorList := make([]map[string]interface{}, len(colors))
		for i, c := range colors {
			colorList[i] = colorJSON(c)
		}
		return formatter.WriteJSON(map[string]interface{}{
			"success": true,
			"colors":  colorList,
		})
	}

	// Human-readable output
	if len(colors) == 0 {
		formatter.Printf("No colors yet. Add one with: swatch add\n")
		return nil
	}

	formatter.Printf("%s\n", styles.TitleStyle.Render("Colors"))
	formatter.Printf("  %-4s %-9s %s\n", "ID", "Code", "Created")
	for _, c := range colors {
		formatter.Printf("  %-4d %s %s\n", c.ID, styles.RenderSwatch(c), c.CreatedAt().Format(dateLayout))
	}
	formatter.Printf("%s\n", styles.SubtitleStyle.Render(pluralize(len(colors), "color", "colors")))
	return nil
}
