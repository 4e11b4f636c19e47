package types

import (
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
)

// DefinitionNode is one kind-tagged definition of a schema document.
// Exactly one of Definition, Directive, Schema is set, depending on the
// kind. Name is empty for unnamed variants (schema blocks and schema
// extensions); only named nodes participate in import filtering and
// merging.
type DefinitionNode struct {
	Kind       NodeKind
	Name       string
	Definition *ast.Definition
	Directive  *ast.DirectiveDefinition
	Schema     *ast.SchemaDefinition
}

type DefinitionList []*DefinitionNode

// SchemaDocument is one successfully loaded and parsed schema file.
type SchemaDocument struct {
	Location    string
	Definitions DefinitionList
	RawText     string
}

func (n *DefinitionNode) Named() bool {
	return n.Name != ""
}

// FieldBearing reports whether the node carries a field list that
// projection and merging may operate on.
func (n *DefinitionNode) FieldBearing() bool {
	if n.Definition == nil {
		return false
	}
	switch n.Kind {
	case NodeKindObject, NodeKindInterface, NodeKindInputObject,
		NodeKindObjectExtension, NodeKindInterfaceExtension, NodeKindInputObjectExtension:
		return true
	default:
		return false
	}
}

func (n *DefinitionNode) Fields() ast.FieldList {
	if n.Definition == nil {
		return nil
	}
	return n.Definition.Fields
}

// Clone returns a copy with an independent field list, so projection
// and merging never alias the loaded document's definitions.
func (n *DefinitionNode) Clone() *DefinitionNode {
	clone := *n
	if n.Definition != nil {
		def := *n.Definition
		def.Fields = append(ast.FieldList(nil), n.Definition.Fields...)
		clone.Definition = &def
	}
	return &clone
}

// NewSchemaDocument flattens a parsed gqlparser document into the node
// list. The parser groups nodes by category; positions are used to
// restore source order, which traversal and merge priority depend on.
func NewSchemaDocument(location string, rawText string, doc *ast.SchemaDocument) SchemaDocument {
	var nodes DefinitionList
	for _, def := range doc.Definitions {
		nodes = append(nodes, &DefinitionNode{
			Kind:       KindOf(def.Kind, false),
			Name:       def.Name,
			Definition: def,
		})
	}
	for _, def := range doc.Extensions {
		nodes = append(nodes, &DefinitionNode{
			Kind:       KindOf(def.Kind, true),
			Name:       def.Name,
			Definition: def,
		})
	}
	for _, directive := range doc.Directives {
		nodes = append(nodes, &DefinitionNode{
			Kind:      NodeKindDirective,
			Name:      directive.Name,
			Directive: directive,
		})
	}
	for _, schema := range doc.Schema {
		nodes = append(nodes, &DefinitionNode{Kind: NodeKindSchema, Schema: schema})
	}
	for _, schema := range doc.SchemaExtension {
		nodes = append(nodes, &DefinitionNode{Kind: NodeKindSchemaExtension, Schema: schema})
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodeLine(nodes[i]) < nodeLine(nodes[j])
	})
	return SchemaDocument{
		Location:    location,
		Definitions: nodes,
		RawText:     rawText,
	}
}

func nodeLine(node *DefinitionNode) int {
	switch {
	case node.Definition != nil && node.Definition.Position != nil:
		return node.Definition.Position.Line
	case node.Directive != nil && node.Directive.Position != nil:
		return node.Directive.Position.Line
	case node.Schema != nil && node.Schema.Position != nil:
		return node.Schema.Position.Line
	default:
		return 0
	}
}
