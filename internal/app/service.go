package app

import (
	"graphql-import/internal/adapters"
	"graphql-import/internal/ports"
)

type Service struct {
	Loader   ports.DocumentLoaderPort
	FS       ports.FileSystemPort
	Modules  ports.ModuleResolverPort
	Writer   ports.SchemaWriterPort
	Projects ports.ProjectSpecPort
}

func NewService() Service {
	fs := adapters.NewOSFileSystemAdapter()
	return Service{
		Loader:   adapters.NewDocumentFileAdapter(),
		FS:       fs,
		Modules:  adapters.NewModuleDirAdapter(fs),
		Writer:   adapters.NewSchemaWriterAdapter(),
		Projects: adapters.NewProjectFileAdapter(),
	}
}
