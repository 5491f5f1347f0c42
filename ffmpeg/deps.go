// Package ffmpeg assembles and runs ffmpeg invocations for the concat
// demuxer. It knows nothing about frame ordering or configuration - callers
// hand it a ready Request and a list file.
package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotFound is returned by CheckDeps when the encoder binary is not on PATH.
var ErrNotFound = errors.New("ffmpeg not found on PATH")

// CheckDeps verifies that the configured ffmpeg binary can be located before
// any processing starts.
func CheckDeps(path string) error {
	if _, err := exec.LookPath(path); err != nil {
		return fmt.Errorf("%w (looked for %q): %v", ErrNotFound, path, err)
	}
	return nil
}

// Version returns the first line of "ffmpeg -version" output, useful for
// debug logging and reports.
func Version(ctx context.Context, path string) (string, error) {
	out, err := exec.CommandContext(ctx, path, "-version").Output()
	if err != nil {
		return "", fmt.Errorf("unable to get ffmpeg version: %w", err)
	}
	line := strings.TrimSpace(string(out))
	if idx := strings.Index(line, "\n"); idx > 0 {
		line = line[:idx]
	}
	return line, nil
}
