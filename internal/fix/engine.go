// Package fix applies the edits attached to diagnostics back to the text
// they were reported on.
package fix

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"fortio.org/safecast"

	"sillyfmt/internal/diag"
	"sillyfmt/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode determines selection strategy for fixes.
type ApplyMode uint8

const (
	ApplyModeAll ApplyMode = iota
	ApplyModeOnce
	ApplyModeCode
)

// ApplyOptions configures how fixes are selected.
type ApplyOptions struct {
	Mode ApplyMode
	// Code is a diagnostic id such as "SYN2001", used by ApplyModeCode.
	Code string
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	Title     string
	Code      diag.Code
	Message   string
	Primary   source.Span
	EditCount int
}

// SkippedFix captures a fix that was not applied and why.
type SkippedFix struct {
	Title  string
	Code   diag.Code
	Reason string
}

// Result holds the rewritten content and the fate of every candidate.
type Result struct {
	Content []byte
	Applied []AppliedFix
	Skipped []SkippedFix
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	order int
}

type edit struct {
	span  source.Span
	text  string
	depth uint32 // начало основного спана: вложенные скобки открываются позже
	order int
}

// Apply selects fixes of diagnostics reported on file and applies them to
// content. content itself is never modified. Edits of different fixes that
// overlap are skipped; closes inserted at one offset are written innermost
// container first, whatever order the diagnostics come in.
func Apply(file source.FileID, content []byte, diagnostics []diag.Diagnostic, opts ApplyOptions) (*Result, error) {
	result := &Result{Content: content}

	size, err := safecast.Conv[uint32](len(content))
	if err != nil {
		return result, fmt.Errorf("fix: content too large: %w", err)
	}

	candidates, skipped := gatherCandidates(file, size, diagnostics)
	result.Skipped = append(result.Skipped, skipped...)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}

	selected, skipped := selectCandidates(candidates, opts)
	result.Skipped = append(result.Skipped, skipped...)
	if len(selected) == 0 {
		return result, ErrNoFixes
	}

	var edits []edit
	for _, cand := range selected {
		if conflictsWithExisting(edits, cand.fix.Edits) {
			result.Skipped = append(result.Skipped, SkippedFix{
				Title:  cand.fix.Title,
				Code:   cand.diag.Code,
				Reason: "conflicts with previously applied edits",
			})
			continue
		}
		for _, e := range cand.fix.Edits {
			edits = append(edits, edit{span: e.Span, text: e.NewText, depth: cand.diag.Primary.Start, order: cand.order})
		}
		result.Applied = append(result.Applied, AppliedFix{
			Title:     cand.fix.Title,
			Code:      cand.diag.Code,
			Message:   cand.diag.Message,
			Primary:   cand.diag.Primary,
			EditCount: len(cand.fix.Edits),
		})
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}

	result.Content = rewrite(content, edits)
	return result, nil
}

// gatherCandidates keeps the fixes of diagnostics on file whose edits all lie
// inside content.
func gatherCandidates(file source.FileID, size uint32, diagnostics []diag.Diagnostic) ([]candidate, []SkippedFix) {
	var (
		cands []candidate
		skips []SkippedFix
	)
	order := 0
	for _, d := range diagnostics {
		if d.Primary.File != file {
			continue
		}
		for _, f := range d.Fixes {
			if reason := checkEdits(file, size, f.Edits); reason != "" {
				skips = append(skips, SkippedFix{Title: f.Title, Code: d.Code, Reason: reason})
				continue
			}
			cands = append(cands, candidate{diag: d, fix: f, order: order})
			order++
		}
	}
	return cands, skips
}

func checkEdits(file source.FileID, size uint32, edits []diag.FixEdit) string {
	if len(edits) == 0 {
		return "fix has no edits"
	}
	for _, e := range edits {
		switch {
		case e.Span.File != file:
			return "edit targets another file"
		case e.Span.Start > e.Span.End || e.Span.End > size:
			return "edit span out of range"
		}
	}
	for i := range edits {
		for j := i + 1; j < len(edits); j++ {
			if spansConflict(edits[i].Span, edits[j].Span) {
				return "fix edits overlap"
			}
		}
	}
	return ""
}

func selectCandidates(candidates []candidate, opts ApplyOptions) ([]candidate, []SkippedFix) {
	switch opts.Mode {
	case ApplyModeOnce:
		return candidates[:1], nil
	case ApplyModeCode:
		var selected []candidate
		for _, cand := range candidates {
			if cand.diag.Code.ID() == opts.Code {
				selected = append(selected, cand)
			}
		}
		if len(selected) == 0 {
			return nil, []SkippedFix{{Reason: fmt.Sprintf("no fix for code %s", opts.Code)}}
		}
		return selected, nil
	default:
		return candidates, nil
	}
}

func conflictsWithExisting(existing []edit, edits []diag.FixEdit) bool {
	for _, prev := range existing {
		for _, e := range edits {
			if spansConflict(prev.span, e.Span) {
				return true
			}
		}
	}
	return false
}

// spansConflict reports whether two half-open spans overlap. Two insertions
// never conflict; an insertion conflicts with a replacement that strictly
// surrounds it.
func spansConflict(a, b source.Span) bool {
	switch {
	case a.Empty() && b.Empty():
		return false
	case a.Empty():
		return b.Start < a.Start && a.Start < b.End
	case b.Empty():
		return a.Start < b.Start && b.Start < a.End
	}
	return a.Start < b.End && b.Start < a.End
}

// rewrite applies non-conflicting edits in one left-to-right pass.
func rewrite(content []byte, edits []edit) []byte {
	slices.SortStableFunc(edits, func(a, b edit) int {
		return cmp.Or(
			cmp.Compare(a.span.Start, b.span.Start),
			cmp.Compare(a.span.End, b.span.End),
			cmp.Compare(b.depth, a.depth),
			cmp.Compare(a.order, b.order),
		)
	})
	grow := 0
	for _, e := range edits {
		grow += len(e.text)
	}
	out := make([]byte, 0, len(content)+grow)
	var pos uint32
	for _, e := range edits {
		out = append(out, content[pos:e.span.Start]...)
		out = append(out, e.text...)
		pos = e.span.End
	}
	return append(out, content[pos:]...)
}
