package core

import (
	"regexp"
	"strings"
)

var (
	backlinkPattern = regexp.MustCompile(`^Backlinks?:` + spaceClass + `*\[\[\p{Nd}+\]\]$`)
	idLinkPattern   = regexp.MustCompile(`\[\[(\p{Nd}{12})\]\]`)
)

// Resolver maps a Zettelkasten ID to the filename stem of the note carrying it.
type Resolver interface {
	Resolve(id string) (stem string, ok bool)
}

// ResolverFunc adapts a plain function to a Resolver.
type ResolverFunc func(id string) (string, bool)

// Resolve calls f(id).
func (f ResolverFunc) Resolve(id string) (string, bool) {
	return f(id)
}

// RewriteLinks drops backlink annotation lines, then resolves ID links.
func RewriteLinks(text string, r Resolver) string {
	return ResolveLinks(StripBacklinks(text), r)
}

// StripBacklinks removes every line that, once trimmed, is exactly a
// "Backlink:" or "Backlinks:" label followed by one [[digits]] link.
// The line terminator goes with it.
func StripBacklinks(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, line := range SplitLines(text) {
		if backlinkPattern.MatchString(strings.TrimFunc(line, isSpace)) {
			continue
		}
		b.WriteString(line)
	}
	return b.String()
}

// ResolveLinks rewrites every [[<12 digits>]] whose ID r knows into the
// aliased form [[<stem>|<id>]]. Unknown IDs are left as they are.
func ResolveLinks(text string, r Resolver) string {
	if r == nil {
		return text
	}
	return idLinkPattern.ReplaceAllStringFunc(text, func(link string) string {
		id := link[2 : len(link)-2]
		stem, ok := r.Resolve(id)
		if !ok {
			return link
		}
		return "[[" + stem + "|" + id + "]]"
	})
}
