// Package archive builds Walk/Extract abstraction on top of "archive/zip"
// for frame sets distributed as zip files.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The archive argument contains path to archive passed to
// Walk. The file argument is the zip.File structure for file in archive which
// satisfies match condition. If an error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk walks the all files in the archive which satisfy match condition,
// calling walkFn for each item. Entries with path traversal components
// ("..") or absolute paths are rejected to prevent Zip Slip attacks.
func Walk(archive, pattern string, walkFn WalkFunc) error {

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(name, pattern) {
			if err := walkFn(archive, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Extract writes a single archive entry under dir as name, creating
// intermediate directories as needed. Entry modification time is preserved so
// extracted frames look the same to later stat based checks.
func Extract(f *zip.File, dir, name string) (string, error) {
	dst := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}

	r, err := f.Open()
	if err != nil {
		return "", err
	}
	defer r.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}

	mod := f.FileHeader.Modified
	if !mod.IsZero() {
		_ = os.Chtimes(dst, mod, mod)
	}
	return dst, nil
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths, names containing ".." components and anything
// with a backslash. The zip format mandates forward slashes, so a backslash
// only ever shows up in names crafted to sneak ".." past separator-naive
// checks on Windows.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.ContainsRune(name, '\\') {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
