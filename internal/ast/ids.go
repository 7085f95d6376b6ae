package ast

type (
	FileID uint32
	NodeID uint32
	// PayloadID indexes a per-kind payload arena.
	PayloadID uint32
)

const (
	NoFileID    FileID    = 0
	NoNodeID    NodeID    = 0
	NoPayloadID PayloadID = 0
)

func (id FileID) IsValid() bool    { return id != NoFileID }
func (id NodeID) IsValid() bool    { return id != NoNodeID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
