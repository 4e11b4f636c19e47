// Package shared provides common utility functions used across multiple
// packages in the graphql-import codebase.
package shared

import (
	"path/filepath"
	"strings"
)

// SchemaFileExtensions lists the file extensions recognized as schema
// documents by the path resolver.
var SchemaFileExtensions = []string{".graphql", ".graphqls", ".gql", ".gqls"}

// IsSchemaFile reports whether the path carries a recognizable schema
// file extension.
func IsSchemaFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(path)))
	for _, known := range SchemaFileExtensions {
		if ext == known {
			return true
		}
	}
	return false
}
