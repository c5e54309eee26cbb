package blog

import "embed"

// EmbeddedAssets contains static assets shipped with the engine:
// site.css, redirect.js, theme.js, nav.js
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
