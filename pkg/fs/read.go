package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
)

// ReadFile reads the contents of a file.
func (f *realFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WalkDir walks the file tree rooted at root in lexical order, calling fn for each entry.
// Symlinked directories are not followed.
func (f *realFS) WalkDir(root string, fn iofs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}
