package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"graphql-import/internal/ports"
	"graphql-import/internal/types"
)

// DocumentFileAdapter implements DocumentLoaderPort against the local
// filesystem, parsing SDL with gqlparser.
type DocumentFileAdapter struct{}

func NewDocumentFileAdapter() DocumentFileAdapter {
	return DocumentFileAdapter{}
}

func (a DocumentFileAdapter) Load(path string) (types.SchemaDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SchemaDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("schema file not found: " + path).
			WithCause(err)
	}

	doc, err := parser.ParseSchema(&ast.Source{Name: path, Input: string(data)})
	if err != nil {
		return types.SchemaDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse schema file: " + path).
			WithCause(err)
	}

	document := types.NewSchemaDocument(path, string(data), doc)
	log.Debug().
		Str("path", path).
		Int("definitions", len(document.Definitions)).
		Msg("schema document loaded")
	return document, nil
}

var _ ports.DocumentLoaderPort = DocumentFileAdapter{}
