package core

import (
	"github.com/vektah/gqlparser/v2/ast"

	"graphql-import/internal/policies"
	"graphql-import/internal/types"
)

// Projector reduces a document's definitions to those selected by an
// import record. It returns filtered clones; the loaded document's own
// definitions are never touched, so a document referenced from multiple
// traversal paths cannot be corrupted by aliasing.
//
// Selectors naming unknown types or fields silently yield nothing.
// That is a filtering policy, not an error path.
type Projector struct {
	SortFields bool
}

func NewProjector(sortFields bool) Projector {
	return Projector{SortFields: sortFields}
}

// Project applies the import record to one document's definitions.
// earlier holds the full definition sets of strictly earlier documents
// in the pass; it only matters for the wildcard rule below.
func (p Projector) Project(record types.ImportRecord, defs types.DefinitionList, earlier []types.DefinitionList) types.DefinitionList {
	if record.IsWildcard() {
		if len(earlier) == 0 {
			return defs
		}
		return p.projectSeenObjects(defs, earlier)
	}
	return p.projectSelectors(record.Imports, defs)
}

// projectSeenObjects handles a bare wildcard import from a non-entry
// document: it only re-exposes object types the importing chain already
// knows about, never introduces unrelated types, and never lets a
// transitively imported file redefine an operation-root type.
func (p Projector) projectSeenObjects(defs types.DefinitionList, earlier []types.DefinitionList) types.DefinitionList {
	seen := make(map[string]struct{})
	for _, docDefs := range earlier {
		for _, def := range docDefs {
			if !def.Named() || policies.IsRootOperationType(def.Name) {
				continue
			}
			seen[def.Name] = struct{}{}
		}
	}

	var projected types.DefinitionList
	for _, def := range defs {
		if def.Kind != types.NodeKindObject {
			continue
		}
		if _, ok := seen[def.Name]; !ok {
			continue
		}
		projected = append(projected, def.Clone())
	}
	return projected
}

func (p Projector) projectSelectors(selectors []types.Selector, defs types.DefinitionList) types.DefinitionList {
	selected := make(map[string]struct{})
	fieldsByType := make(map[string][]string)
	for _, selector := range selectors {
		if selector.IsWildcard() {
			continue
		}
		selected[selector.Type] = struct{}{}
		if selector.IsField() {
			fieldsByType[selector.Type] = append(fieldsByType[selector.Type], selector.Field)
		}
	}

	var projected types.DefinitionList
	for _, def := range defs {
		if !def.Named() {
			continue
		}
		if _, ok := selected[def.Name]; !ok {
			continue
		}
		clone := def.Clone()
		if requested, ok := fieldsByType[def.Name]; ok && clone.FieldBearing() {
			p.projectFields(clone, requested)
		}
		projected = append(projected, clone)
	}
	return projected
}

func (p Projector) projectFields(def *types.DefinitionNode, requested []string) {
	if !containsWildcard(requested) {
		wanted := make(map[string]struct{}, len(requested))
		for _, name := range requested {
			wanted[name] = struct{}{}
		}
		var retained ast.FieldList
		for _, field := range def.Definition.Fields {
			if _, ok := wanted[field.Name]; ok {
				retained = append(retained, field)
			}
		}
		def.Definition.Fields = retained
	}
	if p.SortFields {
		policies.SortFieldList(def.Definition.Fields)
	}
}

func containsWildcard(names []string) bool {
	for _, name := range names {
		if name == types.WildcardToken {
			return true
		}
	}
	return false
}
