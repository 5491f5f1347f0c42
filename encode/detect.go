package encode

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// headerSize is what filetype needs to recognize any of its matchers.
const headerSize = 261

// isArchiveFile reports whether path looks like a zip archive - both the
// extension and the content magic have to agree.
func isArchiveFile(path string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}
	head, err := readHeader(path)
	if err != nil {
		return false, err
	}
	return filetype.Is(head, "zip"), nil
}

// isImageContent reports whether file content magic identifies a raster
// image. SVG is text and has no magic - callers filter it by extension.
func isImageContent(path string) (bool, error) {
	head, err := readHeader(path)
	if err != nil {
		return false, err
	}
	return filetype.IsImage(head), nil
}

func readHeader(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	head := make([]byte, headerSize)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return head[:n], nil
}
