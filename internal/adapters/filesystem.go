package adapters

import (
	"errors"
	"io/fs"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"graphql-import/internal/ports"
)

// OSFileSystemAdapter implements FileSystemPort with os.Stat. A missing
// file is (false, nil); other I/O failures surface as errors so the
// path resolver can distinguish "try the module fallback" from "abort".
type OSFileSystemAdapter struct{}

func NewOSFileSystemAdapter() OSFileSystemAdapter {
	return OSFileSystemAdapter{}
}

func (a OSFileSystemAdapter) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to stat path: " + path).
		WithCause(err)
}

var _ ports.FileSystemPort = OSFileSystemAdapter{}
