package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

func parse(t *testing.T, sdl string) SchemaDocument {
	t.Helper()
	doc, err := parser.ParseSchema(&ast.Source{Name: "test.graphql", Input: sdl})
	require.NoError(t, err)
	return NewSchemaDocument("test.graphql", sdl, doc)
}

func TestNewSchemaDocumentRestoresSourceOrder(t *testing.T) {
	doc := parse(t, `directive @cached on FIELD_DEFINITION
type Query { ok: Boolean }
schema { query: Query }
extend type Query { extra: Int }
scalar Time
`)
	var kinds []NodeKind
	for _, def := range doc.Definitions {
		kinds = append(kinds, def.Kind)
	}
	want := []NodeKind{
		NodeKindDirective,
		NodeKindObject,
		NodeKindSchema,
		NodeKindObjectExtension,
		NodeKindScalar,
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("unexpected node order (-want +got):\n%s", diff)
	}
}

func TestDefinitionNodeClone(t *testing.T) {
	doc := parse(t, "type Foo { x: Int y: Int }")
	original := doc.Definitions[0]

	clone := original.Clone()
	clone.Definition.Fields = clone.Definition.Fields[:1]

	assert.Len(t, original.Definition.Fields, 2, "clone must not alias the original field list")
	assert.Len(t, clone.Definition.Fields, 1)
}

func TestDefinitionNodeFieldBearing(t *testing.T) {
	doc := parse(t, `
type Object { x: Int }
interface Iface { x: Int }
input Input { x: Int }
enum Color { RED }
scalar Time
union U = Object
`)
	bearing := map[string]bool{
		"Object": true,
		"Iface":  true,
		"Input":  true,
		"Color":  false,
		"Time":   false,
		"U":      false,
	}
	for _, def := range doc.Definitions {
		assert.Equal(t, bearing[def.Name], def.FieldBearing(), "kind %s", def.Kind)
	}
}

func TestSchemaBlockIsUnnamed(t *testing.T) {
	doc := parse(t, `schema { query: Query }
type Query { ok: Boolean }
`)
	require.Len(t, doc.Definitions, 2)
	assert.False(t, doc.Definitions[0].Named())
	assert.True(t, doc.Definitions[1].Named())
}
