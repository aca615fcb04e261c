package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrNaming          = errors.New("filename does not match note pattern")
	ErrInvalidEncoding = errors.New("note content is not valid utf-8")
	ErrNotDirectory    = errors.New("path is not a directory")
	ErrUnsafeOutput    = errors.New("output directory would destroy input")
)

// NamingError reports a note file whose name is not "<digits><space><title>".
type NamingError struct {
	Name string
}

func (e *NamingError) Error() string {
	return fmt.Sprintf("bad filename: %q", e.Name)
}

func (e *NamingError) Unwrap() error {
	return ErrNaming
}
