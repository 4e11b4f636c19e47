package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphql-import/internal/types"
)

func TestCompletePullsReferencedTypes(t *testing.T) {
	entry := parseTestDocument(t, "a.graphql", `type Query { foo: Foo }`)
	pool := parseTestDocument(t, "b.graphql", `
type Foo { bar: Bar }
type Bar { x: Int }
type Unreferenced { y: Int }
`)

	all := []types.DefinitionList{entry.Definitions, pool.Definitions}
	merged := types.DefinitionList{entry.Definitions[0]}

	completed := NewPoolCompleter().Complete(all, merged)
	names := definitionNames(completed)
	if diff := cmp.Diff([]string{"Query", "Foo", "Bar"}, names); diff != "" {
		t.Fatalf("unexpected completion (-want +got):\n%s", diff)
	}
}

func TestCompleteSkipsBuiltinsAndPresent(t *testing.T) {
	entry := parseTestDocument(t, "a.graphql", `
type Query { id: ID name: String foo: Foo }
type Foo { x: Int }
`)
	completed := NewPoolCompleter().Complete(
		[]types.DefinitionList{entry.Definitions},
		entry.Definitions,
	)
	assert.Len(t, completed, 2)
}

func TestCompletePullsDirectiveDefinitions(t *testing.T) {
	entry := parseTestDocument(t, "a.graphql", `
type Query { foo: Int @cached }
`)
	pool := parseTestDocument(t, "b.graphql", `
directive @cached on FIELD_DEFINITION
`)
	completed := NewPoolCompleter().Complete(
		[]types.DefinitionList{entry.Definitions, pool.Definitions},
		entry.Definitions,
	)
	require.Len(t, completed, 2)
	assert.Equal(t, types.NodeKindDirective, completed[1].Kind)
	assert.Equal(t, "cached", completed[1].Name)
}

func TestCompleteUnionMembersAndInterfaces(t *testing.T) {
	entry := parseTestDocument(t, "a.graphql", `
type Query { item: Item }
`)
	pool := parseTestDocument(t, "b.graphql", `
union Item = Book | Movie
type Book implements Media { title: String }
type Movie implements Media { title: String }
interface Media { title: String }
`)
	completed := NewPoolCompleter().Complete(
		[]types.DefinitionList{entry.Definitions, pool.Definitions},
		entry.Definitions,
	)
	names := definitionNames(completed)
	assert.Contains(t, names, "Item")
	assert.Contains(t, names, "Book")
	assert.Contains(t, names, "Movie")
	assert.Contains(t, names, "Media")
}
