package ports

import "graphql-import/internal/types"

type ProjectSpecPort interface {
	LoadProject(path string) (types.ProjectFile, error)
}
