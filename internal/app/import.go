package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"graphql-import/internal/adapters"
	"graphql-import/internal/core"
	"graphql-import/internal/ports"
	"graphql-import/internal/types"
)

type ImportRequest struct {
	EntryPath   string
	SortFields  bool
	ModuleRoots []string
	OutputPath  string
}

type ImportResult struct {
	SDL         string
	Merged      types.DefinitionList
	Definitions int
	Documents   int
	OutputPath  string
}

// ImportSchema runs one full resolution pass: traverse the import
// graph from the entry document, merge same-named definitions, complete
// the pool against the full accumulated set, and render the result.
func (s Service) ImportSchema(ctx context.Context, req ImportRequest) (ImportResult, error) {
	entryPath := strings.TrimSpace(req.EntryPath)
	if entryPath == "" {
		return ImportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("entry schema path is required")
	}

	resolver := core.NewResolverCore(
		s.Loader,
		core.NewPathResolver(s.FS, s.moduleResolver(req.ModuleRoots)),
		core.NewProjector(req.SortFields),
	)
	resolution, err := resolver.Resolve(ctx, entryPath)
	if err != nil {
		return ImportResult{}, err
	}

	merger := core.NewMerger(req.SortFields)
	merged := merger.Merge(resolution.TypeDefinitions)
	completed := core.NewPoolCompleter().Complete(resolution.AllDefinitions, merged)

	sdl, err := s.Writer.Render(completed)
	if err != nil {
		return ImportResult{}, err
	}
	if req.OutputPath != "" {
		if err := s.Writer.Write(req.OutputPath, completed); err != nil {
			return ImportResult{}, err
		}
	}

	log.Ctx(ctx).Debug().
		Int("documents", resolution.Documents).
		Int("definitions", len(completed)).
		Msg("schema import completed")

	return ImportResult{
		SDL:         sdl,
		Merged:      completed,
		Definitions: len(completed),
		Documents:   resolution.Documents,
		OutputPath:  req.OutputPath,
	}, nil
}

// moduleResolver honors per-request module roots without disturbing
// the service-wide default.
func (s Service) moduleResolver(roots []string) ports.ModuleResolverPort {
	if len(roots) == 0 {
		return s.Modules
	}
	return adapters.NewModuleDirAdapter(s.FS, roots...)
}
