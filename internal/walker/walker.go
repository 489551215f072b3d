// Package walker expands command-line path arguments into concrete files.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	cerrors "github.com/dmytro-macuser/cryptocrate/internal/errors"
)

// FileEntry is one input file discovered under a path argument.
type FileEntry struct {
	// Path is the absolute or as-given path to the file.
	Path string
	// RelativePath is Path relative to the base directory, used to rebuild
	// directory structure under an output directory.
	RelativePath string
	// Size is the file size in bytes at discovery time.
	Size int64
}

// CollectFiles expands path into file entries. A file yields one entry; a
// directory is walked recursively without following symlinks. basePath
// anchors the relative paths; when empty the parent of path is used.
func CollectFiles(path, basePath string) ([]FileEntry, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", cerrors.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if basePath == "" {
		basePath = filepath.Dir(path)
	}

	if !info.IsDir() {
		return []FileEntry{{
			Path:         path,
			RelativePath: relativeTo(basePath, path),
			Size:         info.Size(),
		}}, nil
	}

	var entries []FileEntry
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		entries = append(entries, FileEntry{
			Path:         p,
			RelativePath: relativeTo(basePath, p),
			Size:         fi.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", path, err)
	}

	return entries, nil
}

func relativeTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}
