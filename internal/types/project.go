package types

// ProjectFile is the optional gqlimport.yaml project description. It
// supplies defaults for the CLI; flags and environment override it.
type ProjectFile struct {
	APIVersion  string   `yaml:"api_version"`
	Entry       string   `yaml:"entry"`
	SortFields  bool     `yaml:"sort_fields"`
	ModuleRoots []string `yaml:"module_roots"`
	Output      string   `yaml:"output"`
}
