// Package fs provides file system operations used by jsprune.
package fs

import (
	iofs "io/fs"
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=fs.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides the file system operations needed to scan and prune a project.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// IsRegularFile checks if the path exists and is a regular file.
	IsRegularFile(path string) (bool, error)

	// Stat returns file information for the path.
	Stat(path string) (os.FileInfo, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// WalkDir walks the file tree rooted at root, calling fn for each entry.
	WalkDir(root string, fn iofs.WalkDirFunc) error

	// IsNotExist checks if an error indicates that a file or directory doesn't exist.
	IsNotExist(err error) bool

	// WriteFileAtomic writes data to a file through a temporary file and a rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// Remove deletes a single file, refusing directories.
	Remove(path string) error

	// Which finds the executable path for a command using the system's PATH.
	Which(command string) (string, error)
}

type realFS struct {
	// No fields needed for basic file system operations
}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
