package zkconv

import _ "embed"

// Version is the version of zkconv, read from the VERSION file.
//
//go:embed VERSION
var Version string
