// Package config provides configuration management functionality for jsprune.
package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DefaultFileName is the configuration file looked up in the project root.
const DefaultFileName = ".jsprune.yaml"

// Package manager kinds accepted in the configuration.
const (
	PackageManagerAuto = "auto"
	PackageManagerPNPM = "pnpm"
	PackageManagerNPM  = "npm"
	PackageManagerYarn = "yarn"
)

// Config represents the application configuration.
type Config struct {
	// PackageManager is one of auto, pnpm, npm or yarn.
	PackageManager string `yaml:"package_manager"`
	// DependencyTool reports unused dependencies as JSON.
	DependencyTool string `yaml:"dependency_tool"`
	// ModuleGraphTool reports orphan files of a directory as JSON.
	ModuleGraphTool string `yaml:"module_graph_tool"`
	// ScanDirs are the project-relative directories searched for orphans.
	ScanDirs []string `yaml:"scan_dirs"`
	// ExcludedDirs are directory names never entered by the usage search.
	ExcludedDirs []string `yaml:"excluded_dirs"`
	// RespectGitignore also prunes paths matched by the root .gitignore.
	RespectGitignore bool `yaml:"respect_gitignore"`
	// CacheEntries bounds the file content memo of the usage search, 0 disables it.
	CacheEntries int `yaml:"cache_entries"`
	// MinToolVersions maps a tool name to the oldest version accepted without warning.
	MinToolVersions map[string]string `yaml:"min_tool_versions,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PackageManager:  PackageManagerPNPM,
		DependencyTool:  "depcheck",
		ModuleGraphTool: "madge",
		ScanDirs:        []string{"pages", "components", "app/api"},
		ExcludedDirs:    []string{"node_modules", ".git", ".next", "dist", "build", "out", "coverage"},
		CacheEntries:    0,
	}
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	switch c.PackageManager {
	case PackageManagerAuto, PackageManagerPNPM, PackageManagerNPM, PackageManagerYarn:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPackageManager, c.PackageManager)
	}

	if strings.TrimSpace(c.DependencyTool) == "" || strings.TrimSpace(c.ModuleGraphTool) == "" {
		return ErrToolNameEmpty
	}

	for _, dir := range c.ScanDirs {
		if strings.TrimSpace(dir) == "" {
			return ErrScanDirEmpty
		}
	}

	if c.CacheEntries < 0 {
		return ErrNegativeCacheEntries
	}

	for tool, version := range c.MinToolVersions {
		if _, err := semver.NewVersion(version); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidMinVersion, tool, err)
		}
	}

	return nil
}
