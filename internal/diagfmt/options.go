package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
	ShowFixes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	IncludeNotes     bool
	IncludeFixes     bool
}

// TreeOpts configures the tree formats.
type TreeOpts struct {
	Color bool
	// Spans appends byte spans to the pretty tree.
	Spans bool
}
