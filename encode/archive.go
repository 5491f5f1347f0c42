package encode

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"f2v/archive"
	"f2v/state"
)

// processArchive extracts frame images from a zip archive into a temporary
// directory, preserving relative paths, and then processes the extraction the
// same way a source directory would be. Non-image entries are skipped.
func processArchive(ctx context.Context, path, dst, name string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	tmp, err := os.MkdirTemp("", "f2v-arc-")
	if err != nil {
		return fmt.Errorf("unable to create extraction directory: %w", err)
	}
	defer os.RemoveAll(tmp)

	count, err := extractArchive(ctx, path, tmp, log)
	if err != nil {
		return fmt.Errorf("unable to process archive: %w", err)
	}
	if count == 0 {
		log.Warn("No image files found in archive", zap.String("archive", path))
		return nil
	}
	log.Debug("Archive extracted", zap.String("archive", path), zap.Int("files", count))

	// videos made from an archive are named after the archive unless told otherwise
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if env.Recursive {
		return processRecursive(ctx, tmp, dst, name, log)
	}
	return processSingleDir(ctx, tmp, dst, name, log)
}

// extractArchive extracts accepted frame entries from the archive into dir
// and returns the number of distinct files written. Entries whose names
// collide (which can happen after forced code page decoding) overwrite each
// other last-wins; the collision is logged so a frame count mismatch is not
// a mystery.
func extractArchive(ctx context.Context, path, dir string, log *zap.Logger) (int, error) {
	env := state.EnvFromContext(ctx)

	seen := make(map[string]struct{})
	err := archive.Walk(path, "", func(arc string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		entryName := f.FileHeader.Name
		if cp := env.CodePage; cp != nil && f.FileHeader.NonUTF8 {
			// forcing zip file name encoding
			if n, err := cp.NewDecoder().String(entryName); err == nil {
				entryName = n
			} else {
				n, _ = ianaindex.IANA.Name(cp)
				log.Warn("Unable to convert archive name from specified encoding",
					zap.String("charset", n), zap.String("path", entryName), zap.Error(err))
			}
		}

		ext := strings.ToLower(filepath.Ext(entryName))
		if !slices.Contains(env.Cfg.Frames.Extensions, ext) {
			log.Debug("Skipping file in archive, extension not accepted",
				zap.String("archive", arc), zap.String("file", entryName))
			return nil
		}

		if _, dup := seen[entryName]; dup {
			log.Warn("Duplicate file name in archive, overwriting previously extracted file",
				zap.String("archive", arc), zap.String("file", entryName))
		}
		if _, err := archive.Extract(f, dir, entryName); err != nil {
			log.Error("Unable to extract file from archive",
				zap.String("archive", arc), zap.String("file", entryName), zap.Error(err))
			return nil
		}
		seen[entryName] = struct{}{}
		return nil
	})
	return len(seen), err
}
