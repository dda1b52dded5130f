// Package difficulty provides the embedded difficulty presets and hint palette.
package difficulty

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
