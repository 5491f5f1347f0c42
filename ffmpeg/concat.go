package ffmpeg

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// WriteConcatList writes a concat demuxer list for the given frame paths into
// dir (os.TempDir when empty) and returns the list file path. Every frame
// gets an explicit per-frame duration of 1/fps seconds so the demuxer does
// not depend on a global input rate. The caller is responsible for removing
// the file once encoding is done.
func WriteConcatList(dir string, frames []string, fps float64) (string, error) {
	if len(frames) == 0 {
		return "", fmt.Errorf("no frames to list")
	}
	if dir == "" {
		dir = os.TempDir()
	}

	name := filepath.Join(dir, fmt.Sprintf("f2v-frames-%s.txt", uuid.NewString()))

	duration := strconv.FormatFloat(1/fps, 'f', -1, 64)

	var sb strings.Builder
	for _, frame := range frames {
		sb.WriteString("file ")
		sb.WriteString(quoteConcatPath(frame))
		sb.WriteByte('\n')
		sb.WriteString("duration ")
		sb.WriteString(duration)
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(name, []byte(sb.String()), 0644); err != nil {
		return "", fmt.Errorf("unable to write concat list: %w", err)
	}
	return name, nil
}

// quoteConcatPath quotes a path for the concat demuxer. The demuxer uses
// shell-like single quoting where an embedded quote is written as '\''.
func quoteConcatPath(p string) string {
	return "'" + strings.ReplaceAll(p, "'", `'\''`) + "'"
}
