package platform

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Defaults.
const (
	DefaultExtension = ".md"
	DefaultMediaDir  = "media"
	DefaultDebounce  = 200 * time.Millisecond
)

// options holds the internal configuration for the converter.
type options struct {
	logger    *slog.Logger
	progress  io.Writer
	extension string
	mediaDir  string
	debounce  time.Duration
}

// Option defines a functional option for configuring the converter.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:    slog.Default(),
		progress:  os.Stdout,
		extension: DefaultExtension,
		mediaDir:  DefaultMediaDir,
		debounce:  DefaultDebounce,
	}
}

// WithLogger sets the logger for the converter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithProgress sets where the one-line-per-file progress records go.
// Defaults to os.Stdout. Pass io.Discard to silence them.
func WithProgress(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.progress = w
		}
	}
}

// WithExtension sets the note file extension, dot included. Defaults to ".md".
func WithExtension(ext string) Option {
	return func(o *options) {
		o.extension = ext
	}
}

// WithMediaDir sets the name of the asset directory copied as-is.
// Defaults to "media".
func WithMediaDir(name string) Option {
	return func(o *options) {
		o.mediaDir = name
	}
}

// WithDebounce sets how long Watch waits for a burst of changes to settle
// before rebuilding.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}
