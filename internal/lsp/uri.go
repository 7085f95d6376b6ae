package lsp

import (
	"net/url"
	"path/filepath"
)

// uriToPath returns the local path of a file:// URI, or "" for other schemes.
// A bare path is taken as is.
func uriToPath(uri string) string {
	parsed, err := url.Parse(uri)
	switch {
	case uri == "" || err != nil:
		return ""
	case parsed.Scheme == "":
		return filepath.FromSlash(uri)
	case parsed.Scheme != "file":
		return ""
	}
	path := parsed.Path
	// file:///C:/dir приходит с лишним ведущим слешем
	if len(path) >= 3 && path[0] == '/' && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path)
}
