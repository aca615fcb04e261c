package fs

import (
	"fmt"
	iofs "io/fs"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Index is the read-only listing of a note directory, taken once per run.
// It implements core.Resolver.
type Index struct {
	ext   string
	names []string // sorted
	cache map[string]resolution
}

type resolution struct {
	stem string
	ok   bool
}

// NewIndex lists the note files (flat, files only) of fsys whose names end
// with ext.
func NewIndex(fsys iofs.FS, ext string) (*Index, error) {
	names, err := doublestar.Glob(fsys, "*"+ext, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	sort.Strings(names)

	return &Index{
		ext:   ext,
		names: names,
		cache: make(map[string]resolution),
	}, nil
}

// Files returns the note file names in lexicographic order.
func (x *Index) Files() []string {
	out := make([]string, len(x.names))
	copy(out, x.names)
	return out
}

// Len returns the number of note files.
func (x *Index) Len() int {
	return len(x.names)
}

// Resolve returns the stem of the note file whose name starts with id.
// When several files match, the lexicographically smallest name wins.
func (x *Index) Resolve(id string) (string, bool) {
	if r, ok := x.cache[id]; ok {
		return r.stem, r.ok
	}

	var r resolution
	i := sort.SearchStrings(x.names, id)
	if i < len(x.names) && strings.HasPrefix(x.names[i], id) {
		r = resolution{stem: strings.TrimSuffix(x.names[i], x.ext), ok: true}
	}
	x.cache[id] = r
	return r.stem, r.ok
}
