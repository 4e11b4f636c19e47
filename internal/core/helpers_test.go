package core

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"graphql-import/internal/types"
)

func parseTestDocument(t *testing.T, location string, sdl string) types.SchemaDocument {
	t.Helper()
	doc, err := parser.ParseSchema(&ast.Source{Name: location, Input: sdl})
	require.NoError(t, err)
	return types.NewSchemaDocument(location, sdl, doc)
}

func definitionNames(defs types.DefinitionList) []string {
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	return names
}

func fieldNames(def *types.DefinitionNode) []string {
	names := make([]string, 0, len(def.Fields()))
	for _, field := range def.Fields() {
		names = append(names, field.Name)
	}
	return names
}

func findDefinition(t *testing.T, defs types.DefinitionList, name string) *types.DefinitionNode {
	t.Helper()
	for _, def := range defs {
		if def.Name == name {
			return def
		}
	}
	t.Fatalf("definition not found: %s", name)
	return nil
}
