// Package xlref models spreadsheet coordinates: cell, column and row
// references, ranges over them, labels, range traversal orders and the
// viewport selection and navigation state machine.
package xlref

// ReferenceKind tells whether a column or row coordinate shifts when a
// formula is copied (Relative) or stays put (Absolute, written with "$").
type ReferenceKind int

const (
	Relative ReferenceKind = iota
	Absolute
)

func (k ReferenceKind) String() string {
	if k == Absolute {
		return "absolute"
	}
	return "relative"
}

// prefix returns "$" for absolute references.
func (k ReferenceKind) prefix() string {
	if k == Absolute {
		return "$"
	}
	return ""
}

// splitKind strips a leading "$" and reports the kind it implies.
func splitKind(text string) (ReferenceKind, string) {
	if len(text) > 0 && text[0] == '$' {
		return Absolute, text[1:]
	}
	return Relative, text
}
