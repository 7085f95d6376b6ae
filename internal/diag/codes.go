package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Разбор: только заметки о восстановлении, дерево строится всегда
	SynInfo                  Code = 2000
	SynUnterminatedContainer Code = 2001
	SynCutContainer          Code = 2002
	SynStrayClose            Code = 2003
	SynAngleAsOperator       Code = 2004
	SynDanglingOperator      Code = 2005
	SynStrayComma            Code = 2006

	// Ввод/вывод
	IOLoadFileError Code = 4001
	IOReadStdin     Code = 4002

	// Конфигурация
	CfgInvalid Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:              "Unknown diagnostic",
	SynInfo:                  "Parser information",
	SynUnterminatedContainer: "Container is never closed",
	SynCutContainer:          "Container closed by an outer bracket",
	SynStrayClose:            "Closing bracket without opening one",
	SynAngleAsOperator:       "Angle bracket read as an operator",
	SynDanglingOperator:      "Operator without operand",
	SynStrayComma:            "Comma without a group",
	IOLoadFileError:          "Failed to load file",
	IOReadStdin:              "Failed to read standard input",
	CfgInvalid:               "Invalid configuration",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CFG%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
