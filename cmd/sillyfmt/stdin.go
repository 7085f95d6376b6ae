package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const stdinHint = "Hit enter twice to parse a block, or re-run with --newline. Ctrl-D ends input."

// maxLine bounds a single input line; debug dumps can be long.
const maxLine = 16 << 20

// readBlocks calls fn with every block of r. A block ends at an empty line,
// or at every line when perLine is set. Blank blocks are skipped.
func readBlocks(r io.Reader, perLine bool, fn func(block string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	var lines []string
	flush := func() error {
		block := strings.Join(lines, "\n")
		lines = lines[:0]
		if strings.TrimSpace(block) == "" {
			return nil
		}
		return fn(block)
	}
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			if err := flush(); err != nil {
				return err
			}
			continue
		}
		lines = append(lines, line)
		if perLine {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	return flush()
}
