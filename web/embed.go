// Package web carries the embedded dashboard assets.
package web

import "embed"

//go:embed templates
var Pages embed.FS
