package fs

import (
	"errors"
	iofs "io/fs"
	"os"
)

// Stat returns file information for the path.
func (f *realFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Exists checks if a file or directory exists at the given path.
func (f *realFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case f.IsNotExist(err):
		return false, nil
	default:
		return false, err
	}
}

// IsDir checks if the path is a directory. A missing path is an error.
func (f *realFS) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// IsRegularFile checks if the path exists and is a regular file, following symlinks.
func (f *realFS) IsRegularFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if f.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// IsNotExist checks if an error, possibly wrapped, indicates a missing file or directory.
func (f *realFS) IsNotExist(err error) bool {
	return errors.Is(err, iofs.ErrNotExist)
}
