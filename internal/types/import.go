package types

import "strings"

// WildcardToken selects every definition (or every field of a type).
const WildcardToken = "*"

// Selector is one entry of an import statement: a bare type name, a
// Type.field pair, or the wildcard.
type Selector struct {
	Type  string
	Field string
}

func WildcardSelector() Selector {
	return Selector{Type: WildcardToken}
}

func (s Selector) IsWildcard() bool {
	return s.Type == WildcardToken && s.Field == ""
}

func (s Selector) IsField() bool {
	return s.Field != ""
}

func (s Selector) String() string {
	if s.Field != "" {
		return s.Type + "." + s.Field
	}
	return s.Type
}

// ImportRecord is one parsed import statement. Immutable once parsed.
type ImportRecord struct {
	Imports []Selector
	From    string
}

// IsWildcard reports whether the record is the true wildcard import,
// not a mixed selector list that happens to contain one.
func (r ImportRecord) IsWildcard() bool {
	return len(r.Imports) == 1 && r.Imports[0].IsWildcard()
}

// Key returns a canonical string used for suppression-map equality.
func (r ImportRecord) Key() string {
	parts := make([]string, 0, len(r.Imports))
	for _, selector := range r.Imports {
		parts = append(parts, selector.String())
	}
	return strings.Join(parts, ",") + "|" + r.From
}

func (r ImportRecord) String() string {
	parts := make([]string, 0, len(r.Imports))
	for _, selector := range r.Imports {
		parts = append(parts, selector.String())
	}
	return "import " + strings.Join(parts, ", ") + " from '" + r.From + "'"
}
