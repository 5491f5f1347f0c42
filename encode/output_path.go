package encode

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"f2v/config"
	"f2v/state"
)

// buildOutputPath returns constructed output video path based on requested
// name (or the frames directory when no name was given), optional user
// defined naming template and transliteration setting. The result always gets
// a cleaned file name with the .mp4 extension.
func buildOutputPath(name, dir, dst string, width, height int, env *state.LocalEnv) string {
	base := name
	if base == "" {
		base = filepath.Base(strings.TrimRight(dir, string(filepath.Separator)))
	}
	// folder names sometimes already carry the extension
	base = strings.TrimSuffix(base, ".mp4")

	if env.Cfg.Video.OutputNameTemplate != "" {
		expanded, err := expandOutputName(base, width, height, env)
		if err != nil {
			env.Log.Warn("Unable to prepare output filename, using default", zap.Error(err))
		} else if expanded != "" {
			base = expanded
		}
	}

	if env.Cfg.Video.FileNameTransliterate {
		base = slug.Make(base)
	}
	return filepath.Join(dst, config.CleanFileName(base)+".mp4")
}
