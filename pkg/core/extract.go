package core

import (
	"regexp"
	"strings"
)

// Labels recognised at the top of a Zettelkasten note.
const (
	labelTitle    = "Title:"
	labelDate     = "Date:"
	labelKeywords = "Keywords:"
)

var tagPattern = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)

// SplitLines splits text after every "\n", keeping the terminators, so that
// joining the result gives back text unchanged.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ExtractMetadata scans lines from the top for the Title:, Date: and
// Keywords: labels and returns the collected metadata together with the body.
//
// Scanning stops at the first Keywords: line; the body starts right after it.
// Without a Keywords: line the whole input is body, so Title: and Date: lines
// end up both in the metadata and in the body.
func ExtractMetadata(lines []string) (*Metadata, []string) {
	md := NewMetadata()
	bodyStart := 0
scan:
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, labelTitle):
			md.Set("title", labelValue(line))
		case strings.HasPrefix(line, labelDate):
			md.Set("date", labelValue(line))
		case strings.HasPrefix(line, labelKeywords):
			tags := []string{}
			for _, m := range tagPattern.FindAllStringSubmatch(line, -1) {
				tags = append(tags, m[1])
			}
			md.Set("tags", tags)
			bodyStart = i + 1
			break scan
		}
	}
	return md, lines[bodyStart:]
}

func labelValue(line string) string {
	_, value, _ := strings.Cut(line, ":")
	return strings.TrimFunc(value, isSpace)
}
