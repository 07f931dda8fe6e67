package web

import (
	"embed"
	"io/fs"
)

//go:embed *.html static/*
var files embed.FS

// FS provides access to the embedded pages and static assets.
var FS fs.FS = files
