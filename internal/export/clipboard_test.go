package export

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandClipboardWrite(t *testing.T) {
	// cat consumes stdin and exits zero, standing in for a real clipboard
	// command.
	cb := NewCommandClipboard("cat")

	err := cb.Write(context.Background(), "Title:\nQ1 Results")
	assert.NoError(t, err)
}

func TestCommandClipboardWriteFailure(t *testing.T) {
	cb := NewCommandClipboard("slidegen-no-such-command")

	err := cb.Write(context.Background(), "anything")
	assert.Error(t, err)
}

func TestDetectClipboardOverride(t *testing.T) {
	cb, err := DetectClipboard("xclip -selection clipboard")
	require.NoError(t, err)
	assert.Equal(t, "xclip", cb.name)
	assert.Equal(t, []string{"-selection", "clipboard"}, cb.args)
}
