package fs

import (
	"fmt"
	"os"
)

// Remove deletes a single file. Directories are refused, even empty ones.
func (f *realFS) Remove(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	return os.Remove(path)
}
