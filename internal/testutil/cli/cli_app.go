package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/swatch/internal/app"
	"github.com/thenoetrevino/swatch/internal/cli"
)

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is injected through the context so commands never open the
// user's database. Returns stdout; stderr is discarded.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	stdout, _, err := ExecuteCLICommandWithStderr(t, context.Background(), testApp, cmd, args)
	return stdout, err
}

// ExecuteCLICommandWithStderr executes a CLI command and returns stdout and stderr separately
func ExecuteCLICommandWithStderr(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	prepareCommand(cmd, args)

	err := cmd.ExecuteContext(cli.ContextWithApp(ctx, testApp))
	return stdout.String(), stderr.String(), err
}
