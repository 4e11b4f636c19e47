package core

import (
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"graphql-import/internal/ports"
	"graphql-import/internal/shared"
)

// PathResolver turns a raw import target into a canonical file
// identity. When both endpoints look like schema files the target is
// resolved relative to the importing file's directory, falling back to
// the module resolver when no such sibling exists. Otherwise the target
// is an opaque reference and is returned unchanged; its interpretation
// is up to the document loader.
type PathResolver struct {
	FS      ports.FileSystemPort
	Modules ports.ModuleResolverPort
}

func NewPathResolver(fs ports.FileSystemPort, modules ports.ModuleResolverPort) PathResolver {
	return PathResolver{FS: fs, Modules: modules}
}

func (p PathResolver) Resolve(importingPath string, from string) (string, error) {
	if !shared.IsSchemaFile(importingPath) || !shared.IsSchemaFile(from) {
		return from, nil
	}
	if p.FS == nil || p.Modules == nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("path resolver requires filesystem and module resolver ports")
	}

	candidate := filepath.Join(filepath.Dir(importingPath), from)
	exists, err := p.FS.Exists(candidate)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to probe import target: " + candidate).
			WithCause(err)
	}
	if exists {
		return candidate, nil
	}

	resolved, err := p.Modules.ResolveModule(from)
	if err != nil {
		return "", err
	}
	log.Debug().
		Str("from", from).
		Str("resolved", resolved).
		Msg("import target resolved as module reference")
	return resolved, nil
}
