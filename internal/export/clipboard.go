package export

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Clipboard writes plain text to the system clipboard.
type Clipboard interface {
	Write(ctx context.Context, text string) error
}

// CommandClipboard pipes text into an external clipboard command
// (wl-copy, xclip, pbcopy, or an explicit override).
type CommandClipboard struct {
	name string
	args []string
}

// NewCommandClipboard builds a clipboard around an explicit command line.
func NewCommandClipboard(name string, args ...string) *CommandClipboard {
	return &CommandClipboard{name: name, args: args}
}

// DetectClipboard finds a usable clipboard command for the current platform.
// override, when non-empty, is used verbatim (split on whitespace) instead of
// probing.
func DetectClipboard(override string) (*CommandClipboard, error) {
	if override != "" {
		fields := strings.Fields(override)
		return NewCommandClipboard(fields[0], fields[1:]...), nil
	}

	var candidates [][]string
	switch runtime.GOOS {
	case "darwin":
		candidates = [][]string{{"pbcopy"}}
	case "windows":
		candidates = [][]string{{"clip"}}
	default:
		candidates = [][]string{
			{"wl-copy"},
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
		}
	}

	for _, c := range candidates {
		if _, err := exec.LookPath(c[0]); err == nil {
			return NewCommandClipboard(c[0], c[1:]...), nil
		}
	}
	return nil, fmt.Errorf("no clipboard command found for %s", runtime.GOOS)
}

func (c *CommandClipboard) Write(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, c.name, c.args...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("clipboard command %s failed: %w (%s)", c.name, err, strings.TrimSpace(string(out)))
	}
	return nil
}
