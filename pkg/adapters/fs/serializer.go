package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/zkconv/pkg/core"
	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---\n"

// FrontMatterSerializer reads and writes notes as a YAML front matter block,
// a blank line and the body.
type FrontMatterSerializer struct{}

// NewFrontMatterSerializer creates a new front matter serializer.
func NewFrontMatterSerializer() *FrontMatterSerializer {
	return &FrontMatterSerializer{}
}

// Serialize converts the note to bytes. Metadata keys keep their insertion
// order and the body is written verbatim.
func (s *FrontMatterSerializer) Serialize(note core.Note) ([]byte, error) {
	md := note.Metadata
	if md == nil {
		md = core.NewMetadata()
	}

	var buf bytes.Buffer
	buf.WriteString(frontMatterDelimiter)
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(md); err != nil {
		return nil, fmt.Errorf("failed to encode front matter: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode front matter: %w", err)
	}
	buf.WriteString(frontMatterDelimiter)
	buf.WriteString("\n")
	buf.WriteString(note.Content)
	return buf.Bytes(), nil
}

// Parse reads a document written by Serialize back into a Note.
func (s *FrontMatterSerializer) Parse(r io.Reader) (*core.Note, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if !bytes.HasPrefix(data, []byte(frontMatterDelimiter)) {
		return nil, errors.New("document does not start with front matter")
	}
	rest := data[len(frontMatterDelimiter):]

	var block, content []byte
	if bytes.HasPrefix(rest, []byte(frontMatterDelimiter)) {
		content = rest[len(frontMatterDelimiter):]
	} else {
		end := bytes.Index(rest, []byte("\n"+frontMatterDelimiter))
		if end < 0 {
			return nil, errors.New("front matter started but no closing delimiter found")
		}
		block = rest[:end+1]
		content = rest[end+1+len(frontMatterDelimiter):]
	}

	md := core.NewMetadata()
	if len(bytes.TrimSpace(block)) > 0 {
		if err := yaml.Unmarshal(block, md); err != nil {
			return nil, fmt.Errorf("failed to parse front matter: %w", err)
		}
	}

	return &core.Note{
		ID:       md.String("id"),
		Title:    md.String("title"),
		Date:     md.String("date"),
		Tags:     md.Strings("tags"),
		Metadata: md,
		Content:  string(bytes.TrimPrefix(content, []byte("\n"))),
	}, nil
}
