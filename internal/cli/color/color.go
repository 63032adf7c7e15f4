// Package color holds the color subcommands: add, list and sync.
package color

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/swatch/internal/models"
)

// dateLayout matches the "Created at" line on the TUI cards
const dateLayout = "02/01/2006"

// Commands returns every color subcommand for registration on the root command
func Commands() []*cobra.Command {
	return []*cobra.Command{
		AddCmd(),
		ListCmd(),
		SyncCmd(),
	}
}

// addOutputFlags registers the agent-friendly flags shared by all subcommands
func addOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
	cmd.MarkFlagsMutuallyExclusive("json", "quiet")
}

func outputFlags(cmd *cobra.Command) (jsonOutput, quietMode bool) {
	jsonOutput, _ = cmd.Flags().GetBool("json")
	quietMode, _ = cmd.Flags().GetBool("quiet")
	return jsonOutput, quietMode
}

// colorJSON is the JSON shape of a single record
func colorJSON(c *models.ColorRecord) map[string]interface{} {
	return map[string]interface{}{
		"id":         c.ID,
		"code":       c.Code,
		"time":       c.Time,
		"created_at": c.CreatedAt().UTC().Format(time.RFC3339),
	}
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
