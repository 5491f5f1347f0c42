package encode

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"f2v/config"
	"f2v/ffmpeg"
	"f2v/natsort"
	"f2v/state"
	"f2v/utils/images"
)

// processSingleDir turns one directory of frames into one video. "name" is
// the requested output name without extension, empty means derive it from the
// directory itself. An empty directory is logged and skipped, not fatal.
func processSingleDir(ctx context.Context, dir, dst, name string, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)

	log.Info("Encoding starting", zap.String("from", dir))
	start := time.Now()

	frames, err := listFrames(dir, &env.Cfg.Frames, log)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		log.Warn("No image files found", zap.String("dir", dir))
		return nil
	}

	// the whole point: order frames by numeric value of embedded numbers, not
	// by character code, so missing zero padding cannot scramble the sequence
	if env.Cfg.Frames.SortCase == config.SortCaseExact {
		natsort.Sort(frames)
	} else {
		natsort.SortFold(frames)
	}

	paths, cleanup, err := prepareFrames(dir, frames, &env.Cfg.Frames, log)
	if err != nil {
		return err
	}
	defer cleanup()

	width, height, err := resolveDimensions(env.Cfg.Video.Resolution, paths[0])
	if err != nil {
		return err
	}

	outputName := buildOutputPath(name, dir, dst, width, height, env)

	// Check if output file already exists
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	list, err := ffmpeg.WriteConcatList("", paths, env.Cfg.Video.FPS)
	if err != nil {
		return err
	}
	defer os.Remove(list)

	if err := env.Rpt.StoreCopy(fmt.Sprintf("concat/%s.txt", filepath.Base(outputName)), list); err != nil {
		log.Warn("Unable to store concat list in report", zap.Error(err))
	}

	args := ffmpeg.Build(env.Cfg.FFmpeg.Path, ffmpeg.Request{
		ListPath:    list,
		Width:       width,
		Height:      height,
		FPS:         env.Cfg.Video.FPS,
		Codec:       env.Cfg.Video.Codec,
		PixelFormat: env.Cfg.Video.PixelFormat,
		LogLevel:    env.Cfg.FFmpeg.LogLevel,
		ExtraArgs:   env.Cfg.FFmpeg.ExtraArgs,
		OutputPath:  outputName,
	})
	log.Debug("Running encoder", zap.Strings("args", args))

	res := ffmpeg.Execute(ctx, args, env.Cfg.Logging.ConsoleLogger.Level == "debug")
	if res.Err != nil {
		env.Rpt.StoreData(fmt.Sprintf("ffmpeg/%s.stderr.log", filepath.Base(outputName)), []byte(res.Stderr))
		return fmt.Errorf("encoder failed for %s: %w\n%s", dir, res.Err, strings.TrimSpace(res.Stderr))
	}

	log.Info("Encoding completed",
		zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.Int("frames", len(paths)))
	return nil
}

// prepareFrames resolves ordered frame names into absolute paths ffmpeg can
// consume. SVG frames are rasterized to PNG into a temporary directory which
// the returned cleanup removes.
func prepareFrames(dir string, frames []string, cfg *config.FramesConfig, log *zap.Logger) ([]string, func(), error) {
	cleanup := func() {}

	var tmp string
	paths := make([]string, 0, len(frames))
	for _, frame := range frames {
		full := filepath.Join(dir, frame)
		if !strings.EqualFold(filepath.Ext(frame), ".svg") {
			paths = append(paths, full)
			continue
		}

		if tmp == "" {
			var err error
			if tmp, err = os.MkdirTemp("", "f2v-svg-"); err != nil {
				return nil, cleanup, fmt.Errorf("unable to create rasterization directory: %w", err)
			}
			cleanup = func() { os.RemoveAll(tmp) }
		}

		data, err := os.ReadFile(full)
		if err != nil {
			return nil, cleanup, fmt.Errorf("unable to read SVG frame: %w", err)
		}
		png, err := images.RasterizeSVGToPNG(data, 0, 0)
		if err != nil {
			return nil, cleanup, fmt.Errorf("unable to rasterize SVG frame %q: %w", frame, err)
		}
		rasterized := filepath.Join(tmp, strings.TrimSuffix(frame, filepath.Ext(frame))+".png")
		if err := os.WriteFile(rasterized, png, 0644); err != nil {
			return nil, cleanup, err
		}
		log.Debug("Rasterized SVG frame", zap.String("frame", frame), zap.Int("bytes", len(png)))
		paths = append(paths, rasterized)
	}
	return paths, cleanup, nil
}

// resolveDimensions turns the configured resolution into concrete pixel
// values. "auto" probes the first frame and rounds both dimensions up to even
// values since libx264 cannot encode odd ones.
func resolveDimensions(resolution, firstFrame string) (int, int, error) {
	if strings.EqualFold(resolution, "auto") {
		w, h, err := images.ProbeSize(firstFrame)
		if err != nil {
			return 0, 0, fmt.Errorf("unable to probe frame dimensions: %w", err)
		}
		return images.Even(w), images.Even(h), nil
	}
	return parseResolution(resolution)
}

func parseResolution(res string) (int, int, error) {
	parts := strings.Split(res, "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad resolution %q; expected WIDTHxHEIGHT", res)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad width in %q: %w", res, err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad height in %q: %w", res, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("resolution %q must be positive", res)
	}
	return w, h, nil
}
