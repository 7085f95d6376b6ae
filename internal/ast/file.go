package ast

import (
	"sillyfmt/internal/source"
)

// File is the top-level list of expressions of one input.
type File struct {
	Span  source.Span
	Exprs []NodeID
}

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{
		Arena: NewArena[File](capHint),
	}
}

func (f *Files) New(sp source.Span) FileID {
	return FileID(f.Arena.Allocate(File{
		Span:  sp,
		Exprs: make([]NodeID, 0),
	}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
