package types

import "github.com/vektah/gqlparser/v2/ast"

type NodeKind string

const (
	NodeKindObject          NodeKind = "object"
	NodeKindInterface       NodeKind = "interface"
	NodeKindUnion           NodeKind = "union"
	NodeKindEnum            NodeKind = "enum"
	NodeKindScalar          NodeKind = "scalar"
	NodeKindInputObject     NodeKind = "input-object"
	NodeKindDirective       NodeKind = "directive"
	NodeKindSchema          NodeKind = "schema"
	NodeKindSchemaExtension NodeKind = "schema-extension"

	NodeKindObjectExtension      NodeKind = "object-extension"
	NodeKindInterfaceExtension   NodeKind = "interface-extension"
	NodeKindUnionExtension       NodeKind = "union-extension"
	NodeKindEnumExtension        NodeKind = "enum-extension"
	NodeKindScalarExtension      NodeKind = "scalar-extension"
	NodeKindInputObjectExtension NodeKind = "input-object-extension"
)

// KindOf maps a gqlparser definition kind onto the node kind space.
// Unknown parser kinds fall through untouched so new definition kinds
// behave as passthrough nodes instead of breaking the projector or the
// merger.
func KindOf(kind ast.DefinitionKind, extension bool) NodeKind {
	switch kind {
	case ast.Object:
		return pick(extension, NodeKindObjectExtension, NodeKindObject)
	case ast.Interface:
		return pick(extension, NodeKindInterfaceExtension, NodeKindInterface)
	case ast.Union:
		return pick(extension, NodeKindUnionExtension, NodeKindUnion)
	case ast.Enum:
		return pick(extension, NodeKindEnumExtension, NodeKindEnum)
	case ast.Scalar:
		return pick(extension, NodeKindScalarExtension, NodeKindScalar)
	case ast.InputObject:
		return pick(extension, NodeKindInputObjectExtension, NodeKindInputObject)
	default:
		return NodeKind(kind)
	}
}

func pick(extension bool, ext NodeKind, base NodeKind) NodeKind {
	if extension {
		return ext
	}
	return base
}
