package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
)

// CopyFile copies src to dst byte for byte, keeping the permission bits.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	return WriteFileAtomic(dst, data, info.Mode().Perm())
}

// CopyDir copies the tree rooted at src into dst, creating dst.
// Symlinks are followed.
func CopyDir(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", src)
	}
	if err := os.MkdirAll(dst, info.Mode().Perm()|0o700); err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	for _, e := range entries {
		from := filepath.Join(src, e.Name())
		to := filepath.Join(dst, e.Name())

		isDir := e.IsDir()
		if e.Type()&iofs.ModeSymlink != 0 {
			target, err := os.Stat(from)
			if err != nil {
				return fmt.Errorf("failed to follow %s: %w", from, err)
			}
			isDir = target.IsDir()
		}

		if isDir {
			err = CopyDir(from, to)
		} else {
			err = CopyFile(from, to)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
