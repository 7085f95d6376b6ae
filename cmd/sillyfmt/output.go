package main

import (
	"fmt"
	"io"

	"sillyfmt/internal/diagfmt"
	"sillyfmt/internal/driver"
)

// writeTree prints one parse result in format.
func writeTree(w io.Writer, format string, color bool, res *driver.ParseResult) error {
	switch format {
	case "sexp":
		return diagfmt.FormatTreeSexp(w, res.Builder, res.FileID)
	case "tree":
		return diagfmt.FormatTreePretty(w, res.Builder, res.FileID, res.FileSet, diagfmt.TreeOpts{Color: color})
	case "json":
		return diagfmt.FormatTreeJSON(w, res.Builder, res.FileID, res.FileSet)
	case "msgpack":
		return diagfmt.FormatTreeMsgpack(w, res.Builder, res.FileID, res.FileSet)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// textual reports whether format is meant for a terminal, so headers and
// blank separators make sense between results.
func textual(format string) bool {
	return format == "sexp" || format == "tree"
}
