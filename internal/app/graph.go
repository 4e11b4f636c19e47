package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"graphql-import/internal/core"
)

type GraphRequest struct {
	EntryPath   string
	ModuleRoots []string
}

type GraphResult struct {
	Edges     []core.ImportEdge
	Documents int
}

// Graph traverses the import graph without merging, returning the
// visited edges for inspection.
func (s Service) Graph(ctx context.Context, req GraphRequest) (GraphResult, error) {
	entryPath := strings.TrimSpace(req.EntryPath)
	if entryPath == "" {
		return GraphResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("entry schema path is required")
	}

	resolver := core.NewResolverCore(
		s.Loader,
		core.NewPathResolver(s.FS, s.moduleResolver(req.ModuleRoots)),
		core.NewProjector(false),
	)
	resolution, err := resolver.Resolve(ctx, entryPath)
	if err != nil {
		return GraphResult{}, err
	}
	return GraphResult{
		Edges:     resolution.Edges,
		Documents: resolution.Documents,
	}, nil
}
