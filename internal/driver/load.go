package driver

import (
	"fmt"
	"os"

	"sillyfmt/internal/balance"
	"sillyfmt/internal/source"
)

func loadFile(fs *source.FileSet, path string, opts Options) (*source.File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	if opts.Balance {
		content = []byte(balance.Apply(string(content)))
	}
	return fs.Get(fs.AddContent(path, content, opts.Load)), nil
}

func addText(fs *source.FileSet, name, text string, opts Options) *source.File {
	if opts.Balance {
		text = balance.Apply(text)
	}
	return fs.Get(fs.AddText(name, text, opts.Load))
}
