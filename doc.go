// Package zkconv converts Zettelkasten notes into front matter notes.
//
// Input notes live in a flat directory and are named "<ID> <Title>.md", where
// ID is a numeric, usually timestamp-derived, identifier. Their metadata is
// written as plain labelled lines at the top of the body:
//
//	Title: Ask first and summarize last
//	Date: 2025-04-21 15:59
//	Keywords: #communication #habits
//
// Each note is rewritten with a YAML front matter block (title, date, tags,
// id, aliases) and its body is kept as is, except that:
//
//   - "Backlinks: [[<digits>]]" annotation lines are dropped.
//   - "[[<12-digit ID>]]" links whose target exists become "[[<ID> <Title>|<ID>]]".
//
// Files whose name does not follow the pattern are copied unchanged, and a
// "media" directory is copied wholesale. The output directory is rebuilt
// from scratch on every run.
//
// Usage:
//
//	report, err := zkconv.Convert(ctx, "./archive", "./vault",
//		zkconv.WithLogger(logger),
//	)
package zkconv
