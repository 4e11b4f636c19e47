package core

import (
	"graphql-import/internal/policies"
	"graphql-import/internal/types"
)

// Merger unions same-named definitions discovered across different
// files after traversal completes.
type Merger struct {
	SortFields bool
}

func NewMerger(sortFields bool) Merger {
	return Merger{SortFields: sortFields}
}

// Merge walks the candidate set once, keyed by definition name. The
// candidate set concatenates the flattened projections, the entry
// document's projection again, then the non-entry projections again:
// entry definitions win name collisions as the canonical copy while
// every candidate still surfaces for field merging.
//
// The first occurrence of a name is kept (as a clone); later
// field-bearing occurrences have their field lists unioned into it,
// de-duplicated by field name with the first-seen field retained.
// Unnamed definitions pass through unmerged, de-duplicated by node
// identity so the doubled concatenation does not repeat them.
func (m Merger) Merge(typeDefinitions []types.DefinitionList) types.DefinitionList {
	if len(typeDefinitions) == 0 {
		return nil
	}

	var candidates types.DefinitionList
	for _, docDefs := range typeDefinitions {
		candidates = append(candidates, docDefs...)
	}
	candidates = append(candidates, typeDefinitions[0]...)
	for _, docDefs := range typeDefinitions[1:] {
		candidates = append(candidates, docDefs...)
	}

	var merged types.DefinitionList
	canonical := make(map[string]*types.DefinitionNode)
	passthrough := make(map[*types.DefinitionNode]struct{})
	for _, def := range candidates {
		if !def.Named() {
			if _, dup := passthrough[def]; dup {
				continue
			}
			passthrough[def] = struct{}{}
			merged = append(merged, def)
			continue
		}
		existing, ok := canonical[def.Name]
		if !ok {
			clone := def.Clone()
			canonical[def.Name] = clone
			merged = append(merged, clone)
			continue
		}
		if existing.FieldBearing() && def.FieldBearing() {
			unionFields(existing, def)
		}
	}

	if m.SortFields {
		for _, def := range merged {
			if def.FieldBearing() {
				policies.SortFieldList(def.Definition.Fields)
			}
		}
	}
	return merged
}

func unionFields(dst *types.DefinitionNode, src *types.DefinitionNode) {
	known := make(map[string]struct{}, len(dst.Definition.Fields))
	for _, field := range dst.Definition.Fields {
		known[field.Name] = struct{}{}
	}
	for _, field := range src.Fields() {
		if _, dup := known[field.Name]; dup {
			continue
		}
		known[field.Name] = struct{}{}
		dst.Definition.Fields = append(dst.Definition.Fields, field)
	}
}
