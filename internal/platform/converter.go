package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aretw0/zkconv/pkg/adapters/fs"
	"github.com/aretw0/zkconv/pkg/core"
)

// Report summarises one conversion run.
type Report struct {
	Converted   []string `json:"converted"`
	Copied      []string `json:"copied"`
	MediaCopied bool     `json:"media_copied"`
}

// Converter turns a directory of Zettelkasten notes into a directory of
// front matter notes. The output directory is rebuilt from scratch on every
// run.
type Converter struct {
	inputDir  string
	outputDir string
	opts      *options

	mu       sync.RWMutex
	runs     int
	last     *Report
	watching bool
}

// New creates a Converter reading from inputDir and writing to outputDir.
func New(inputDir, outputDir string, opts ...Option) (*Converter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if inputDir == "" || outputDir == "" {
		return nil, errors.New("input and output directories are required")
	}
	if !strings.HasPrefix(o.extension, ".") || len(o.extension) < 2 || strings.ContainsAny(o.extension, `*?[]{}\/`) {
		return nil, fmt.Errorf("invalid note extension: %q", o.extension)
	}
	if strings.ContainsAny(o.mediaDir, `/\`) || o.mediaDir == "." || o.mediaDir == ".." {
		return nil, fmt.Errorf("invalid media directory name: %q", o.mediaDir)
	}

	return &Converter{
		inputDir:  inputDir,
		outputDir: outputDir,
		opts:      o,
	}, nil
}

// Run performs one full conversion.
//
// Workflow:
//  1. Check the input exists and the output cannot destroy it.
//  2. Remove the output directory if present, then create it.
//  3. Copy the media directory, if the input has one.
//  4. Convert every note of the input (flat, sorted); notes whose filename
//     does not match the pattern are copied unchanged.
//
// Any error other than a naming mismatch aborts the run.
func (c *Converter) Run(ctx context.Context) (Report, error) {
	var report Report
	logger := c.opts.logger

	if err := checkInputDir(c.inputDir); err != nil {
		return report, err
	}
	if err := checkOutputSafety(c.inputDir, c.outputDir, c.opts.mediaDir); err != nil {
		return report, err
	}

	if err := resetDir(c.outputDir); err != nil {
		return report, err
	}
	logger.Debug("output directory prepared", "path", c.outputDir)

	if c.opts.mediaDir != "" {
		copied, err := c.copyMedia()
		if err != nil {
			return report, err
		}
		report.MediaCopied = copied
	}

	index, err := fs.NewIndex(os.DirFS(c.inputDir), c.opts.extension)
	if err != nil {
		return report, err
	}
	logger.Debug("notes indexed", "count", index.Len())

	svc := core.NewService(index)
	serializer := fs.NewFrontMatterSerializer()

	for _, name := range index.Files() {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		src := filepath.Join(c.inputDir, name)
		dst := filepath.Join(c.outputDir, name)

		converted, err := c.convertFile(svc, serializer, src, dst, name)
		if err != nil {
			return report, err
		}

		if converted {
			report.Converted = append(report.Converted, name)
			fmt.Fprintln(c.opts.progress, "Converted:", name)
		} else {
			report.Copied = append(report.Copied, name)
			fmt.Fprintln(c.opts.progress, "Copied:", name)
		}
	}

	c.recordRun(report)
	logger.Info("conversion finished",
		"converted", len(report.Converted),
		"copied", len(report.Copied),
		"media", report.MediaCopied,
	)
	return report, nil
}

// convertFile converts src into dst. It reports false when the filename did
// not match the note pattern and the file was copied verbatim instead.
func (c *Converter) convertFile(svc *core.Service, serializer *fs.FrontMatterSerializer, src, dst, name string) (bool, error) {
	content, err := os.ReadFile(src)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}

	note, err := svc.ConvertNote(name, content)
	if errors.Is(err, core.ErrNaming) {
		c.opts.logger.Info("filename does not match note pattern, copying verbatim", "file", name)
		if err := fs.CopyFile(src, dst); err != nil {
			return false, fmt.Errorf("failed to copy %s: %w", name, err)
		}
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to convert %s: %w", name, err)
	}

	data, err := serializer.Serialize(note)
	if err != nil {
		return false, fmt.Errorf("failed to serialize %s: %w", name, err)
	}
	if err := fs.WriteFileAtomic(dst, data, 0644); err != nil {
		return false, err
	}
	return true, nil
}

// copyMedia copies the input's media directory into the output, if present.
func (c *Converter) copyMedia() (bool, error) {
	src := filepath.Join(c.inputDir, c.opts.mediaDir)
	info, err := os.Stat(src)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat media directory: %w", err)
	}
	if !info.IsDir() {
		c.opts.logger.Debug("media path is not a directory, skipping", "path", src)
		return false, nil
	}

	if err := fs.CopyDir(src, filepath.Join(c.outputDir, c.opts.mediaDir)); err != nil {
		return false, fmt.Errorf("failed to copy media directory: %w", err)
	}
	c.opts.logger.Debug("media directory copied", "path", src)
	return true, nil
}

// resetDir removes path recursively if it exists, then creates it.
// An existing path that is not a directory is left alone.
func resetDir(path string) error {
	if info, err := os.Stat(path); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("output %w: %s", core.ErrNotDirectory, path)
		}
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to clear output directory: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat output directory: %w", err)
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

func (c *Converter) recordRun(report Report) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.runs++
	c.last = &report
}
