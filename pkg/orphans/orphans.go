// Package orphans lists source files that nothing imports within a directory.
package orphans

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/jsprune/pkg/fs"
	"github.com/lerenn/jsprune/pkg/logger"
	"github.com/lerenn/jsprune/pkg/packagemanager"
	"github.com/lerenn/jsprune/pkg/report"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=orphans.go -destination=mocks/orphans.gen.go -package=mocks

// Extensions are the source file extensions handed to the module-graph tool.
var Extensions = []string{"js", "jsx", "ts", "tsx"}

// Scanner interface lists orphan files of a directory.
type Scanner interface {
	// Scan returns the orphan files of dir, relative to dir, in the tool's order.
	// A missing directory or unreadable tool output yields an empty list.
	Scan(ctx context.Context, dir string) ([]string, error)
}

// NewScannerParams contains parameters for creating a new Scanner.
type NewScannerParams struct {
	FS             fs.FS
	PackageManager packagemanager.PackageManager
	Logger         logger.Logger
	Printer        *report.Printer
	// RootDir is the project root directories are displayed relative to.
	RootDir string
	Tool    string
}

type realScanner struct {
	fs      fs.FS
	pm      packagemanager.PackageManager
	logger  logger.Logger
	printer *report.Printer
	rootDir string
	tool    string
}

// NewScanner creates a new Scanner.
func NewScanner(params NewScannerParams) Scanner {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}
	return &realScanner{
		fs:      params.FS,
		pm:      params.PackageManager,
		logger:  l,
		printer: params.Printer,
		rootDir: params.RootDir,
		tool:    params.Tool,
	}
}

// Scan runs the module-graph tool in orphans mode on dir.
func (s *realScanner) Scan(ctx context.Context, dir string) ([]string, error) {
	isDir, err := s.fs.IsDir(dir)
	if err != nil && !s.fs.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s: %w", ErrDirectoryCheck, dir, err)
	}
	if !isDir {
		s.printer.Infof("The '%s' directory does not exist in this project. Skipping orphan file check.", s.display(dir))
		return nil, nil
	}

	s.printer.Infof("Running %s to find orphan files in %s...", s.tool, s.display(dir))

	result, err := s.pm.Exec(ctx, s.tool, dir, "--orphans", "--json", "--extensions", strings.Join(Extensions, ","))
	if err != nil {
		return nil, err
	}

	files, err := ParseOrphans([]byte(result.Output()))
	if err != nil {
		s.printer.Errorf("Error: unable to parse JSON output from %s. Raw output:", s.tool)
		s.printer.Errorf("%s", result.Output())
		s.logger.Logf("%v", err)
		return nil, nil
	}

	return files, nil
}

// display returns dir relative to the project root when it lies inside it.
func (s *realScanner) display(dir string) string {
	if s.rootDir == "" {
		return dir
	}
	rel, err := filepath.Rel(s.rootDir, dir)
	if err != nil || strings.HasPrefix(rel, "..") {
		return dir
	}
	return rel
}

// ParseOrphans decodes the JSON array of relative file paths reported by the module-graph tool.
func ParseOrphans(data []byte) ([]string, error) {
	var files []string
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedOutput, err)
	}
	return files, nil
}
