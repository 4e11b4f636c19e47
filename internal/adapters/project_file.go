package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"graphql-import/internal/ports"
	"graphql-import/internal/types"
)

type ProjectFileAdapter struct{}

func NewProjectFileAdapter() ProjectFileAdapter {
	return ProjectFileAdapter{}
}

func (a ProjectFileAdapter) LoadProject(path string) (types.ProjectFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ProjectFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("project file not found").
			WithCause(err)
	}
	var project types.ProjectFile
	if err := yaml.Unmarshal(data, &project); err != nil {
		return types.ProjectFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse project yaml").
			WithCause(err)
	}
	if project.APIVersion == "" {
		return types.ProjectFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project file missing api_version: " + path)
	}
	return project, nil
}

var _ ports.ProjectSpecPort = ProjectFileAdapter{}
