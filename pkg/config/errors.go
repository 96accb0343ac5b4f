package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	ErrConfigNotFound  = errors.New("config file not found")

	// Configuration validation errors.
	ErrUnknownPackageManager = errors.New("unknown package manager")
	ErrToolNameEmpty         = errors.New("tool names cannot be empty")
	ErrScanDirEmpty          = errors.New("scan_dirs entries cannot be empty")
	ErrNegativeCacheEntries  = errors.New("cache_entries cannot be negative")
	ErrInvalidMinVersion     = errors.New("invalid minimum tool version")
)
