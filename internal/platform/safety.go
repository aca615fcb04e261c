package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/zkconv/pkg/core"
)

// checkInputDir ensures the input exists and is a directory.
func checkInputDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("input directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", core.ErrNotDirectory, path)
	}
	return nil
}

// checkOutputSafety refuses output directories whose removal would destroy
// input: the input itself, any of its ancestors, or anything inside or
// above the input's media directory, wherever that resolves to.
func checkOutputSafety(input, output, mediaDir string) error {
	in, err := canonicalPath(input)
	if err != nil {
		return err
	}
	out, err := canonicalPath(output)
	if err != nil {
		return err
	}

	if within(in, out) {
		return fmt.Errorf("%w: %s contains %s", core.ErrUnsafeOutput, output, input)
	}
	if mediaDir == "" {
		return nil
	}

	// The media directory may be a symlink out of the input tree.
	media, err := canonicalPath(filepath.Join(in, mediaDir))
	if err != nil {
		return err
	}
	if within(out, media) {
		return fmt.Errorf("%w: %s is inside the media directory", core.ErrUnsafeOutput, output)
	}
	if within(media, out) {
		return fmt.Errorf("%w: %s contains the media directory", core.ErrUnsafeOutput, output)
	}
	return nil
}

// within reports whether path equals root or lies below it.
func within(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// canonicalPath returns the absolute path with symlinks resolved as far as
// the path exists. Missing trailing elements are kept as they are.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	var missing []string
	dir := abs
	for {
		resolved, err := filepath.EvalSymlinks(dir)
		if err == nil {
			parts := append([]string{resolved}, missing...)
			return filepath.Join(parts...), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		missing = append([]string{filepath.Base(dir)}, missing...)
		dir = parent
	}
}
