package xlref

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfBounds indicates a column or row value outside the grid.
var ErrOutOfBounds = errors.New("out of bounds")

// ErrInvalidReference indicates text that is not a valid reference.
var ErrInvalidReference = errors.New("invalid reference")

// ErrInvalidAnchor indicates an anchor that cannot be used with a selection.
var ErrInvalidAnchor = errors.New("invalid anchor")

// ErrSelfReference indicates a label mapping that refers to its own label.
var ErrSelfReference = errors.New("label refers to itself")

// ParseError reports a token that is not one of a closed set of alternatives.
type ParseError struct {
	Text     string
	Expected []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Got %q expected one of %s", e.Text, strings.Join(e.Expected, ", "))
}

func newParseError(text string, expected []string) *ParseError {
	return &ParseError{Text: text, Expected: expected}
}

// ErrInvalidNavigation indicates text that is not a navigation.
var ErrInvalidNavigation = errors.New("invalid navigation")
