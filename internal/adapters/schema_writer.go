package adapters

import (
	"bytes"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"

	"graphql-import/internal/ports"
	"graphql-import/internal/types"
)

// SchemaWriterAdapter renders merged definition sets back to SDL using
// the gqlparser formatter.
type SchemaWriterAdapter struct{}

func NewSchemaWriterAdapter() SchemaWriterAdapter {
	return SchemaWriterAdapter{}
}

func (a SchemaWriterAdapter) Render(defs types.DefinitionList) (string, error) {
	doc := assembleDocument(defs)
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchemaDocument(doc)
	return buf.String(), nil
}

func (a SchemaWriterAdapter) Write(path string, defs types.DefinitionList) error {
	sdl, err := a.Render(defs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(sdl), 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write merged schema: " + path).
			WithCause(err)
	}
	return nil
}

// assembleDocument regroups nodes into the category lists the
// formatter expects.
func assembleDocument(defs types.DefinitionList) *ast.SchemaDocument {
	doc := &ast.SchemaDocument{}
	for _, def := range defs {
		switch {
		case def.Directive != nil:
			doc.Directives = append(doc.Directives, def.Directive)
		case def.Schema != nil:
			if def.Kind == types.NodeKindSchemaExtension {
				doc.SchemaExtension = append(doc.SchemaExtension, def.Schema)
				continue
			}
			doc.Schema = append(doc.Schema, def.Schema)
		case def.Definition != nil:
			if isExtensionKind(def.Kind) {
				doc.Extensions = append(doc.Extensions, def.Definition)
				continue
			}
			doc.Definitions = append(doc.Definitions, def.Definition)
		}
	}
	return doc
}

func isExtensionKind(kind types.NodeKind) bool {
	switch kind {
	case types.NodeKindObjectExtension, types.NodeKindInterfaceExtension,
		types.NodeKindUnionExtension, types.NodeKindEnumExtension,
		types.NodeKindScalarExtension, types.NodeKindInputObjectExtension:
		return true
	default:
		return false
	}
}

var _ ports.SchemaWriterPort = SchemaWriterAdapter{}
