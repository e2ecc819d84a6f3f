package xlref

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

const maxLabelLength = 255

// LabelName is a user defined name for a cell or range, compared without
// regard to case.
type LabelName struct {
	name string
}

// ParseLabel validates a label name. Names start with a letter, "_" or "\",
// continue with letters, digits, "_", "." or "\", and must not also read as
// a cell reference.
func ParseLabel(text string) (LabelName, error) {
	if text == "" {
		return LabelName{}, fmt.Errorf("empty label: %w", ErrInvalidReference)
	}
	if utf8.RuneCountInString(text) > maxLabelLength {
		return LabelName{}, fmt.Errorf("label %q longer than %d: %w", text, maxLabelLength, ErrInvalidReference)
	}
	for i, r := range text {
		ok := unicode.IsLetter(r) || r == '_' || r == '\\'
		if i > 0 {
			ok = ok || unicode.IsDigit(r) || r == '.'
		}
		if !ok {
			return LabelName{}, fmt.Errorf("label %q has invalid character %q at %d: %w", text, r, i, ErrInvalidReference)
		}
	}
	if _, err := ParseCell(text); err == nil {
		return LabelName{}, fmt.Errorf("label %q is a cell reference: %w", text, ErrInvalidReference)
	}
	return LabelName{name: text}, nil
}

// MustParseLabel is like ParseLabel but panics on error.
func MustParseLabel(text string) LabelName {
	l, err := ParseLabel(text)
	if err != nil {
		panic(err)
	}
	return l
}

func (l LabelName) String() string { return l.name }

// key folds the name so labels differing only in case collide.
func (l LabelName) key() string { return cases.Fold().String(l.name) }

// Equal compares names case-insensitively.
func (l LabelName) Equal(other LabelName) bool { return l.key() == other.key() }

// Compare orders names case-insensitively.
func (l LabelName) Compare(other LabelName) int { return strings.Compare(l.key(), other.key()) }

func (l LabelName) MarshalText() ([]byte, error) {
	return []byte(l.name), nil
}

func (l *LabelName) UnmarshalText(text []byte) error {
	parsed, err := ParseLabel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func (LabelName) selection()           {}
func (LabelName) expressionReference() {}

// LabelMapping binds a label to a cell, a cell range or another label.
type LabelMapping struct {
	label     LabelName
	reference ExpressionReference
}

// NewLabelMapping rejects a missing reference and a label pointing at itself.
func NewLabelMapping(label LabelName, reference ExpressionReference) (LabelMapping, error) {
	if reference == nil {
		return LabelMapping{}, fmt.Errorf("label %s missing reference: %w", label, ErrInvalidReference)
	}
	if other, ok := reference.(LabelName); ok && other.Equal(label) {
		return LabelMapping{}, fmt.Errorf("label %s: %w", label, ErrSelfReference)
	}
	return LabelMapping{label: label, reference: reference}, nil
}

func (m LabelMapping) Label() LabelName                { return m.label }
func (m LabelMapping) Reference() ExpressionReference { return m.reference }

// SetReference returns the mapping pointing at reference.
func (m LabelMapping) SetReference(reference ExpressionReference) (LabelMapping, error) {
	return NewLabelMapping(m.label, reference)
}

// Compare orders by label ignoring case, then by reference ignoring kinds.
func (m LabelMapping) Compare(other LabelMapping) int {
	if c := m.label.Compare(other.label); c != 0 {
		return c
	}
	return strings.Compare(referenceKey(m.reference), referenceKey(other.reference))
}

func referenceKey(r ExpressionReference) string {
	switch v := r.(type) {
	case CellReference:
		return v.ToRelative().String()
	case CellRangeReference:
		return v.ToRelative().String()
	case LabelName:
		return v.key()
	}
	return ""
}

func (m LabelMapping) String() string {
	return m.label.String() + "=" + m.reference.String()
}

type labelMappingJSON struct {
	Label     string `json:"label"`
	Reference string `json:"reference"`
}

func (m LabelMapping) MarshalJSON() ([]byte, error) {
	return json.Marshal(labelMappingJSON{Label: m.label.String(), Reference: m.reference.String()})
}

func (m *LabelMapping) UnmarshalJSON(data []byte) error {
	var raw labelMappingJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode label mapping: %w", err)
	}
	label, err := ParseLabel(raw.Label)
	if err != nil {
		return err
	}
	reference, err := ParseExpressionReference(raw.Reference)
	if err != nil {
		return err
	}
	parsed, err := NewLabelMapping(label, reference)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// LabelStore holds label mappings keyed by case-folded name.
type LabelStore struct {
	mu       sync.RWMutex
	mappings map[string]LabelMapping
}

// NewLabelStore creates a store holding the given mappings.
func NewLabelStore(mappings ...LabelMapping) *LabelStore {
	s := &LabelStore{mappings: make(map[string]LabelMapping, len(mappings))}
	for _, m := range mappings {
		s.mappings[m.label.key()] = m
	}
	return s
}

// Save adds or replaces the mapping for its label.
func (s *LabelStore) Save(m LabelMapping) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mappings[m.label.key()] = m
}

// Delete removes a label, reporting whether it existed.
func (s *LabelStore) Delete(label LabelName) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.mappings[label.key()]
	delete(s.mappings, label.key())
	return ok
}

func (s *LabelStore) Load(label LabelName) (LabelMapping, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.mappings[label.key()]
	return m, ok
}

// All returns every mapping sorted by LabelMapping.Compare.
func (s *LabelStore) All() []LabelMapping {
	s.mu.RLock()
	all := make([]LabelMapping, 0, len(s.mappings))
	for _, m := range s.mappings {
		all = append(all, m)
	}
	s.mu.RUnlock()
	slices.SortFunc(all, LabelMapping.Compare)
	return all
}

// ResolveLabel follows label to the cell or cell range it finally names.
// Unknown labels and cycles resolve to false.
func (s *LabelStore) ResolveLabel(label LabelName) (Selection, bool) {
	seen := make(map[string]bool)
	for {
		if seen[label.key()] {
			return nil, false
		}
		seen[label.key()] = true
		m, ok := s.Load(label)
		if !ok {
			return nil, false
		}
		next, ok := m.reference.(LabelName)
		if !ok {
			return simplify(m.reference), true
		}
		label = next
	}
}
