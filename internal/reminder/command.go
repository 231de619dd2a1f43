package reminder

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandAdapter delivers reminders by running a shell command with the
// digest text substituted in. Useful for desktop notifiers, e.g.
// "notify-send 'Stride' '{{.Text}}'".
type CommandAdapter struct {
	Command string
}

// NewCommandAdapter creates a CommandAdapter.
func NewCommandAdapter(command string) (*CommandAdapter, error) {
	if command == "" {
		return nil, fmt.Errorf("reminder: command is required")
	}
	return &CommandAdapter{Command: command}, nil
}

// Connect is a no-op; there is no connection to establish.
func (c *CommandAdapter) Connect(ctx context.Context) error { return nil }

// Send runs the configured command with message placeholders substituted.
func (c *CommandAdapter) Send(ctx context.Context, msg OutboundMessage) error {
	cmdStr := templateMessage(c.Command, msg)
	cmd := exec.CommandContext(ctx, "sh", "-c", cmdStr)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("reminder: command failed: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Close is a no-op.
func (c *CommandAdapter) Close() error { return nil }

// templateMessage replaces placeholders in the command template with
// message values.
func templateMessage(command string, msg OutboundMessage) string {
	var bodies []string
	for _, e := range msg.Events {
		bodies = append(bodies, e.Title)
	}
	r := strings.NewReplacer(
		"{{.Text}}", shellQuoteSafe(msg.Text),
		"{{.Summary}}", shellQuoteSafe(strings.Join(bodies, "; ")),
	)
	return r.Replace(command)
}

// shellQuoteSafe strips characters that would break out of a
// single-quoted shell argument.
func shellQuoteSafe(s string) string {
	return strings.NewReplacer("'", "", "`", "", "$", "").Replace(s)
}
