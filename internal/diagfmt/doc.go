// Package diagfmt renders tokens, trees and diagnostics for the CLI and
// for tests.
package diagfmt
