package app

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"

	"graphql-import/internal/types"
)

// ApplyProjectDefaults fills request fields left blank by flags and
// environment from the project file. Flags keep precedence; the
// sort-fields toggle is sticky in either source.
func ApplyProjectDefaults(ctx context.Context, req ImportRequest, project types.ProjectFile) ImportRequest {
	assert.NotEmpty(ctx, project.APIVersion, "api_version must be set")

	if req.EntryPath == "" {
		req.EntryPath = project.Entry
	}
	if req.OutputPath == "" {
		req.OutputPath = project.Output
	}
	if len(req.ModuleRoots) == 0 {
		req.ModuleRoots = project.ModuleRoots
	}
	req.SortFields = req.SortFields || project.SortFields
	return req
}
