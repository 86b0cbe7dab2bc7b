// Package configs embeds the default settings, scenes and images.
package configs

import "embed"

// FS holds settings.yaml, scenes/*.json and assets/**.png at its root
//
//go:embed settings.yaml scenes assets
var FS embed.FS
