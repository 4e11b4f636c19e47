package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"graphql-import/internal/ports"
)

// ModuleDirAdapter resolves import targets that are not sibling schema
// files. Candidates are probed relative to the current working
// directory first, then under each configured module root, in order.
type ModuleDirAdapter struct {
	FS    ports.FileSystemPort
	Roots []string
}

func NewModuleDirAdapter(fs ports.FileSystemPort, roots ...string) ModuleDirAdapter {
	return ModuleDirAdapter{FS: fs, Roots: roots}
}

func (a ModuleDirAdapter) ResolveModule(ref string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to determine working directory").
			WithCause(err)
	}

	candidates := []string{filepath.Join(cwd, ref)}
	for _, root := range a.Roots {
		if filepath.IsAbs(root) {
			candidates = append(candidates, filepath.Join(root, ref))
			continue
		}
		candidates = append(candidates, filepath.Join(cwd, root, ref))
	}

	for _, candidate := range candidates {
		exists, err := a.FS.Exists(candidate)
		if err != nil {
			return "", err
		}
		if exists {
			return candidate, nil
		}
	}

	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("cannot resolve import target '" + ref + "': neither a sibling schema file nor a module reference")
}

var _ ports.ModuleResolverPort = ModuleDirAdapter{}
