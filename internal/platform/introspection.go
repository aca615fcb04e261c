package platform

import (
	"github.com/aretw0/introspection"
)

// ConverterState exposes internal state for observability.
type ConverterState struct {
	InputDir   string  `json:"input_dir"`
	OutputDir  string  `json:"output_dir"`
	Extension  string  `json:"extension"`
	MediaDir   string  `json:"media_dir"`
	Watching   bool    `json:"watching"`
	Runs       int     `json:"runs"`
	LastReport *Report `json:"last_report,omitempty"`
}

// State implements introspection.Introspectable.
func (c *Converter) State() any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return ConverterState{
		InputDir:   c.inputDir,
		OutputDir:  c.outputDir,
		Extension:  c.opts.extension,
		MediaDir:   c.opts.mediaDir,
		Watching:   c.watching,
		Runs:       c.runs,
		LastReport: c.last,
	}
}

// ComponentType implements introspection.Component.
func (c *Converter) ComponentType() string {
	return "converter"
}

var _ introspection.Introspectable = (*Converter)(nil)
var _ introspection.Component = (*Converter)(nil)
