package encode

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"f2v/config"
)

// listFrames returns names (not paths) of acceptable frame files directly
// under dir. Filtering is by configured extension and, when enabled, by
// content magic. Subdirectories are never descended into - recursion is a
// dispatch decision made above this level.
func listFrames(dir string, cfg *config.FramesConfig, log *zap.Logger) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to read frames directory (%s): %w", dir, err)
	}

	var frames []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}

		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !slices.Contains(cfg.Extensions, ext) {
			log.Debug("Skipping file, extension not accepted", zap.String("file", name))
			continue
		}

		if ext == ".svg" {
			if !cfg.RasterizeSVG {
				log.Debug("Skipping SVG file, rasterization disabled", zap.String("file", name))
				continue
			}
			frames = append(frames, name)
			continue
		}

		if cfg.VerifyContent {
			ok, err := isImageContent(filepath.Join(dir, name))
			if err != nil {
				log.Warn("Skipping file", zap.String("file", name), zap.Error(err))
				continue
			}
			if !ok {
				log.Debug("Skipping file, content not recognized as image", zap.String("file", name))
				continue
			}
		}
		frames = append(frames, name)
	}
	return frames, nil
}
