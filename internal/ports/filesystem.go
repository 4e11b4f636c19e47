package ports

// FileSystemPort tests whether a candidate file path exists. A missing
// file is reported as (false, nil); any other I/O failure is returned
// as an error so the path resolver can tell the two apart.
type FileSystemPort interface {
	Exists(path string) (bool, error)
}
