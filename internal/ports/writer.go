package ports

import "graphql-import/internal/types"

// SchemaWriterPort renders a merged definition set back to SDL.
type SchemaWriterPort interface {
	// Render returns the SDL text for the definition set.
	Render(defs types.DefinitionList) (string, error)

	// Write renders the definition set and writes it to path.
	Write(path string, defs types.DefinitionList) error
}
