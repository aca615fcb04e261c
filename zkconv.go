package zkconv

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/zkconv/internal/platform"
)

// --- Types ---

// Converter converts a directory of Zettelkasten notes.
type Converter = platform.Converter

// Report summarises one conversion run.
type Report = platform.Report

// ConverterState is the observable state of a Converter.
type ConverterState = platform.ConverterState

// --- Configuration ---

// Option defines a functional option for configuring the converter.
type Option = platform.Option

// WithLogger sets the logger for the converter.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithProgress sets where the per-file progress lines are written.
func WithProgress(w io.Writer) Option {
	return platform.WithProgress(w)
}

// WithExtension sets the note file extension (default ".md").
func WithExtension(ext string) Option {
	return platform.WithExtension(ext)
}

// WithMediaDir sets the name of the asset directory copied as-is (default "media").
func WithMediaDir(name string) Option {
	return platform.WithMediaDir(name)
}

// WithDebounce sets the quiet period Watch waits for before rebuilding.
func WithDebounce(d time.Duration) Option {
	return platform.WithDebounce(d)
}

// --- Factory ---

// New creates a Converter from inputDir to outputDir.
func New(inputDir, outputDir string, opts ...Option) (*Converter, error) {
	return platform.New(inputDir, outputDir, opts...)
}

// --- Operations ---

// Convert runs a single conversion from inputDir to outputDir.
func Convert(ctx context.Context, inputDir, outputDir string, opts ...Option) (Report, error) {
	c, err := New(inputDir, outputDir, opts...)
	if err != nil {
		return Report{}, err
	}
	return c.Run(ctx)
}
