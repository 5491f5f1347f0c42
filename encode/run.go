// Package encode implements the encode subcommand: it turns directories (or
// zip archives) of numbered image frames into videos, ordering frames
// naturally so inconsistent zero padding does not break the sequence.
package encode

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"f2v/config"
	"f2v/ffmpeg"
	"f2v/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("encode")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	// command line takes precedence over configuration
	if cmd.IsSet("fps") {
		env.Cfg.Video.FPS = cmd.Float("fps")
	}
	if env.Cfg.Video.FPS <= 0 {
		return fmt.Errorf("frame rate must be positive, got %g", env.Cfg.Video.FPS)
	}
	if cmd.IsSet("resolution") {
		env.Cfg.Video.Resolution = cmd.String("resolution")
	}
	if cmd.Bool("transliterate") {
		env.Cfg.Video.FileNameTransliterate = true
	}
	if cmd.IsSet("sort-case") {
		sc, err := config.ParseSortCase(cmd.String("sort-case"))
		if err != nil {
			log.Warn("Unknown sort case requested, keeping configured one", zap.Error(err))
		} else {
			env.Cfg.Frames.SortCase = sc
		}
	}
	env.Recursive, env.Overwrite = cmd.Bool("recursive"), cmd.Bool("overwrite")

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	cp := cmd.String("force-zip-cp")
	if len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	if err := ffmpeg.CheckDeps(env.Cfg.FFmpeg.Path); err != nil {
		return err
	}
	if ver, err := ffmpeg.Version(ctx, env.Cfg.FFmpeg.Path); err == nil {
		log.Debug("Using encoder", zap.String("version", ver))
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, cmd.String("name"), log)
}

// process handles the core logic independently of CLI framework. It
// determines the input type (directory or zip archive of frames) and
// processes accordingly.
func process(ctx context.Context, src, dst, name string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	switch {
	case fi.Mode().IsDir():
		if env.Recursive {
			return processRecursive(ctx, src, dst, name, log)
		}
		return processSingleDir(ctx, src, dst, name, log)
	case fi.Mode().IsRegular():
		ok, err := isArchiveFile(src)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if !ok {
			return fmt.Errorf("input was not recognized as frames directory or zip archive (%s)", src)
		}
		return processArchive(ctx, src, dst, name, log)
	default:
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}
}

// processRecursive makes one video per immediate subdirectory of src, named
// after the subdirectory. When there are no subdirectories at all it falls
// back to processing src itself. Failing folders do not stop the rest.
func processRecursive(ctx context.Context, src, dst, defaultName string, log *zap.Logger) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("unable to read directory (%s): %w", src, err)
	}

	var folders []string
	for _, e := range entries {
		if e.IsDir() {
			folders = append(folders, e.Name())
		}
	}
	if len(folders) == 0 {
		log.Debug("No subdirectories found, processing source itself", zap.String("dir", src))
		return processSingleDir(ctx, src, dst, defaultName, log)
	}

	var errs error
	for _, folder := range folders {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}
		if err := processSingleDir(ctx, filepath.Join(src, folder), dst, folder, log); err != nil {
			log.Error("Unable to process folder", zap.String("folder", folder), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("folder %s: %w", folder, err))
		}
	}
	return errs
}
