package editor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DirFiles opens paths from the filesystem and saves into a directory.
type DirFiles struct {
	// OpenPath is the file Open reads when it is given no path.
	OpenPath string
	// SaveDir is where Create writes. Empty means the working directory.
	SaveDir string
}

// defaultPather is implemented by Files that know what Open reads when it
// is given no path.
type defaultPather interface {
	DefaultPath() string
}

func defaultPath(f Files) string {
	if d, ok := f.(defaultPather); ok {
		return d.DefaultPath()
	}
	return ""
}

func (f DirFiles) DefaultPath() string { return f.OpenPath }

func (f DirFiles) Open(path string) (io.ReadCloser, error) {
	if path == "" {
		path = f.OpenPath
	}
	if path == "" {
		return nil, ErrNoFile
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return file, nil
}

func (f DirFiles) Create(name string) (io.WriteCloser, string, error) {
	path := name
	if f.SaveDir != "" && !filepath.IsAbs(name) {
		if err := os.MkdirAll(f.SaveDir, 0o755); err != nil {
			return nil, "", fmt.Errorf("create save directory: %w", err)
		}
		path = filepath.Join(f.SaveDir, name)
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("create %s: %w", path, err)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return file, path, nil
}
