package policies

import (
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
)

// rootOperationTypeNames are the conventional operation-root type
// names. Wildcard imports from non-entry documents never re-expose
// them, so a transitively imported file cannot silently redefine an
// operation root.
var rootOperationTypeNames = map[string]struct{}{
	"Query":        {},
	"Mutation":     {},
	"Subscription": {},
}

func IsRootOperationType(name string) bool {
	_, ok := rootOperationTypeNames[name]
	return ok
}

// SortFieldList orders a retained field list deterministically by field
// name.
func SortFieldList(fields ast.FieldList) {
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Name < fields[j].Name
	})
}
