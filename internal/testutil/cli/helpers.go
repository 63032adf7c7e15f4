package cli

import (
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
)

// ColorJSON mirrors one color in --json output
type ColorJSON struct {
	ID        int    `json:"id"`
	Code      string `json:"code"`
	Time      int64  `json:"time"`
	CreatedAt string `json:"created_at"`
}

// ErrorJSON is the error object of a failed --json command
type ErrorJSON struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Envelope covers every shape the color commands print with --json
type Envelope struct {
	Success bool        `json:"success"`
	Color   *ColorJSON  `json:"color,omitempty"`
	Colors  []ColorJSON `json:"colors,omitempty"`
	Error   *ErrorJSON  `json:"error,omitempty"`
}

// DecodeEnvelope parses --json output, failing the test on malformed JSON
func DecodeEnvelope(t *testing.T, output string) Envelope {
	t.Helper()

	var env Envelope
	if err := json.Unmarshal([]byte(output), &env); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	return env
}

// prepareCommand resets args and silences cobra's own usage and error output
// so only what the command writes ends up in the buffers.
func prepareCommand(cmd *cobra.Command, args []string) {
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
