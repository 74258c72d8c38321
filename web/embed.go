// Copyright (c) 2026 BAR HIK. All rights reserved.

// Package web embeds the static assets served under /static/.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFiles embed.FS

// StaticFS is the embedded asset tree rooted at the static directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// The subtree is embedded at compile time; a failure here is a
		// build defect, not a runtime condition.
		panic(err)
	}
	return sub
}
