package ffmpeg

import (
	"fmt"
	"strconv"
)

// Request describes a single encoding run: a prepared concat list in, one
// video file out.
type Request struct {
	ListPath    string
	Width       int
	Height      int
	FPS         float64
	Codec       string
	PixelFormat string
	LogLevel    string
	ExtraArgs   []string
	OutputPath  string
}

// Build constructs the complete ffmpeg argument slice for a request,
// section by section. args[0] is the binary path itself.
func Build(path string, req Request) []string {
	args := make([]string, 0, 24)

	// --- Preamble ---
	args = append(args, path, "-hide_banner", "-nostdin", "-y")
	if req.LogLevel != "" {
		args = append(args, "-loglevel", req.LogLevel)
	}

	// --- Input (concat demuxer over the prepared list) ---
	// -safe 0 because the list carries absolute paths
	args = append(args, "-f", "concat", "-safe", "0", "-i", req.ListPath)

	// --- Output geometry and codec ---
	args = append(args, "-s", fmt.Sprintf("%dx%d", req.Width, req.Height))
	args = append(args, "-c:v", req.Codec, "-pix_fmt", req.PixelFormat)
	args = append(args, "-r", strconv.FormatFloat(req.FPS, 'f', -1, 64))

	// --- Caller supplied extras ---
	args = append(args, req.ExtraArgs...)

	// --- Output ---
	args = append(args, req.OutputPath)

	return args
}
