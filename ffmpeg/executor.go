package ffmpeg

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
)

// ExecResult holds the outcome of a single ffmpeg invocation. Stderr is
// always captured so a failed run can be reported to the user (and stored in
// a debug report) instead of being swallowed.
type ExecResult struct {
	Stderr string
	Err    error
}

// Execute runs the prepared argument slice. When tee is set stderr is
// mirrored to os.Stderr in real time in addition to being captured.
func Execute(ctx context.Context, args []string, tee bool) ExecResult {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if tee {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	return ExecResult{
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}
