package core

import (
	"github.com/rs/zerolog/log"
	"github.com/vektah/gqlparser/v2/ast"

	"graphql-import/internal/types"
)

// PoolCompleter reconciles the merged definition set against the full
// accumulated pool: definitions the merged set references but does not
// contain (field and argument types, implemented interfaces, union
// members, applied directives) are pulled in from the pool,
// recursively. The first occurrence in accumulation order wins.
type PoolCompleter struct{}

func NewPoolCompleter() PoolCompleter {
	return PoolCompleter{}
}

var builtinScalars = map[string]struct{}{
	"Int":     {},
	"Float":   {},
	"String":  {},
	"Boolean": {},
	"ID":      {},
}

func (c PoolCompleter) Complete(all []types.DefinitionList, merged types.DefinitionList) types.DefinitionList {
	var pool types.DefinitionList
	for _, docDefs := range all {
		pool = append(pool, docDefs...)
	}

	presentTypes := make(map[string]struct{})
	presentDirectives := make(map[string]struct{})
	for _, def := range merged {
		if !def.Named() {
			continue
		}
		if def.Kind == types.NodeKindDirective {
			presentDirectives[def.Name] = struct{}{}
			continue
		}
		presentTypes[def.Name] = struct{}{}
	}

	result := append(types.DefinitionList(nil), merged...)
	queue := append(types.DefinitionList(nil), merged...)
	added := 0
	for len(queue) > 0 {
		def := queue[0]
		queue = queue[1:]
		typeRefs, directiveRefs := referencedNames(def)
		for _, name := range typeRefs {
			if _, builtin := builtinScalars[name]; builtin {
				continue
			}
			if _, ok := presentTypes[name]; ok {
				continue
			}
			found := lookupPool(pool, name, false)
			if found == nil {
				continue
			}
			presentTypes[name] = struct{}{}
			result = append(result, found)
			queue = append(queue, found)
			added++
		}
		for _, name := range directiveRefs {
			if _, ok := presentDirectives[name]; ok {
				continue
			}
			found := lookupPool(pool, name, true)
			if found == nil {
				continue
			}
			presentDirectives[name] = struct{}{}
			result = append(result, found)
			queue = append(queue, found)
			added++
		}
	}

	if added > 0 {
		log.Debug().Int("added", added).Msg("definition pool completed")
	}
	return result
}

func lookupPool(pool types.DefinitionList, name string, directive bool) *types.DefinitionNode {
	for _, def := range pool {
		if def.Name != name {
			continue
		}
		if directive != (def.Kind == types.NodeKindDirective) {
			continue
		}
		return def
	}
	return nil
}

// referencedNames collects the type names and the directive names a
// definition depends on.
func referencedNames(def *types.DefinitionNode) ([]string, []string) {
	var typeRefs []string
	var directiveRefs []string

	collectDirectives := func(list ast.DirectiveList) {
		for _, directive := range list {
			directiveRefs = append(directiveRefs, directive.Name)
		}
	}

	switch {
	case def.Definition != nil:
		collectDirectives(def.Definition.Directives)
		typeRefs = append(typeRefs, def.Definition.Interfaces...)
		typeRefs = append(typeRefs, def.Definition.Types...)
		for _, field := range def.Definition.Fields {
			typeRefs = append(typeRefs, field.Type.Name())
			collectDirectives(field.Directives)
			for _, arg := range field.Arguments {
				typeRefs = append(typeRefs, arg.Type.Name())
			}
		}
		for _, value := range def.Definition.EnumValues {
			collectDirectives(value.Directives)
		}
	case def.Directive != nil:
		for _, arg := range def.Directive.Arguments {
			typeRefs = append(typeRefs, arg.Type.Name())
		}
	case def.Schema != nil:
		collectDirectives(def.Schema.Directives)
		for _, op := range def.Schema.OperationTypes {
			typeRefs = append(typeRefs, op.Type)
		}
	}
	return typeRefs, directiveRefs
}
