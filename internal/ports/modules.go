package ports

// ModuleResolverPort resolves an import target that is not a sibling
// schema file into a loadable path, anchored at the current working
// directory and any configured module roots.
type ModuleResolverPort interface {
	ResolveModule(ref string) (string, error)
}
