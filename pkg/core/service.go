package core

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Service handles the business logic of turning one Zettelkasten note
// into a front matter note.
type Service struct {
	resolver Resolver
}

// NewService creates a new Service. Links are resolved through r;
// a nil Resolver leaves every link untouched.
func NewService(r Resolver) *Service {
	return &Service{resolver: r}
}

// ConvertNote converts the note stored in filename (a base name, extension
// included) with the given content.
//
// The returned metadata holds the scanned labels first, then id, then the
// filename title if no Title: line was found, then aliases. A filename that
// does not match the note pattern yields a *NamingError.
func (s *Service) ConvertNote(filename string, content []byte) (Note, error) {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	id, title, err := ParseFilename(stem)
	if err != nil {
		return Note{}, err
	}

	if !utf8.Valid(content) {
		return Note{}, ErrInvalidEncoding
	}

	md, body := ExtractMetadata(SplitLines(string(content)))
	md.Set("id", id)
	md.SetDefault("title", title)
	md.Set("aliases", []string{id})

	return Note{
		ID:       id,
		Title:    md.String("title"),
		Date:     md.String("date"),
		Tags:     md.Strings("tags"),
		Metadata: md,
		Content:  RewriteLinks(strings.Join(body, ""), s.resolver),
	}, nil
}
