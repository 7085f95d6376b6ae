// Package diag defines the diagnostic model shared by the parser and the
// outer layers.
//
// Parsing never fails, so the parser only emits recovery notes (SevInfo and
// SevWarning): an unterminated container, a stray closing bracket, an angle
// bracket that had to be read as an operator, and so on. The notes describe
// the decision that was taken; they never change the tree. SevError is left
// to the outer layers (unreadable files, broken configuration).
//
// Producers emit through a Reporter, usually with a ReportBuilder. BagReporter
// stores into a Bag, which can be sorted and filtered before rendering by
// internal/diagfmt or publishing by internal/lsp.
package diag
