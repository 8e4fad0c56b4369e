//go:build darwin

package clipboard

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"
)

// NewSystemWatcher watches the macOS pasteboard through pbpaste.
func NewSystemWatcher(interval time.Duration) (Watcher, error) {
	if _, err := exec.LookPath("pbpaste"); err != nil {
		return nil, err
	}
	return NewPollingWatcher(interval, readPasteboard), nil
}

func readPasteboard(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "pbpaste")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return strings.TrimRight(out.String(), "\n"), nil
}
