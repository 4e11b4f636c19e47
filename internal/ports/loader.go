package ports

import "graphql-import/internal/types"

// DocumentLoaderPort loads and parses one schema file. The traversal
// engine relies on it being idempotent for a given path within one
// resolution pass; a path imported under two different import records
// is loaded twice, by design, because partial-import state differs per
// edge.
type DocumentLoaderPort interface {
	Load(path string) (types.SchemaDocument, error)
}
