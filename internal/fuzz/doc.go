// Package fuzztests houses Go fuzz harnesses for the lexer and parser. They
// check that parsing is total, never hangs and never drops a character.
//
// Назначение: загружать произвольные байты в FileSet и прогонять их через
// лексер и парсер обеих ревизий грамматики.
package fuzztests
