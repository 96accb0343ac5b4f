// Package cleanup removes unused dependencies and orphan source files from a JavaScript project.
package cleanup

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/jsprune/pkg/config"
	"github.com/lerenn/jsprune/pkg/depcheck"
	"github.com/lerenn/jsprune/pkg/dependencies"
	"github.com/lerenn/jsprune/pkg/hooks"
	"github.com/lerenn/jsprune/pkg/orphans"
	"github.com/lerenn/jsprune/pkg/packagemanager"
	"github.com/lerenn/jsprune/pkg/report"
	"github.com/lerenn/jsprune/pkg/tools"
	"github.com/lerenn/jsprune/pkg/usage"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=cleanup.go -destination=mocks/cleanup.gen.go -package=mocks

// Cleaner interface runs the cleanup steps of one project.
type Cleaner interface {
	// Run ensures both analysis tools, removes unused dependencies and deletes the
	// orphans of every configured scan directory, then prints a summary.
	Run(ctx context.Context) (report.Summary, error)
	// EnsureTools checks that each tool runs, offering to install missing ones.
	EnsureTools(ctx context.Context, tools ...string) error
	// RemoveUnusedDependencies finds unused packages and uninstalls the confirmed ones.
	RemoveUnusedDependencies(ctx context.Context) (report.Summary, error)
	// DeleteOrphans finds orphan files of dir and deletes the confirmed ones.
	DeleteOrphans(ctx context.Context, dir string) (report.Summary, error)
	// FindReferences returns the project files that appear to import file.
	FindReferences(file string) ([]string, error)
	// Config returns the configuration in effect.
	Config() config.Config
}

// NewCleanerParams contains parameters for creating a new Cleaner.
type NewCleanerParams struct {
	Dependencies *dependencies.Dependencies
	RootDir      string

	// Optional components, built from Dependencies when nil.
	Checker  tools.Checker
	Reporter depcheck.Reporter
	Scanner  orphans.Scanner
	Verifier usage.Verifier
}

type realCleaner struct {
	deps     *dependencies.Dependencies
	rootDir  string
	config   config.Config
	checker  tools.Checker
	reporter depcheck.Reporter
	scanner  orphans.Scanner
	verifier usage.Verifier
}

// NewCleaner creates a new Cleaner for the project at params.RootDir.
// The package manager is located on the first operation that runs a tool.
func NewCleaner(params NewCleanerParams) (Cleaner, error) {
	if params.RootDir == "" {
		return nil, ErrRootDirEmpty
	}
	rootDir, err := filepath.Abs(params.RootDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRootDirEmpty, err)
	}

	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if deps.Config == nil {
		deps = deps.WithConfig(config.NewManager(filepath.Join(rootDir, config.DefaultFileName)))
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	cfg, err := deps.Config.GetConfigWithFallback()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}

	c := &realCleaner{
		deps:     deps,
		rootDir:  rootDir,
		config:   cfg,
		checker:  params.Checker,
		reporter: params.Reporter,
		scanner:  params.Scanner,
		verifier: params.Verifier,
	}

	if c.verifier == nil {
		if c.verifier, err = c.newVerifier(); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// prepareTools locates the package manager and builds the tool-driven components
// that were not injected. It fails when the package manager cannot be found.
func (c *realCleaner) prepareTools() error {
	if c.checker != nil && c.reporter != nil && c.scanner != nil {
		return nil
	}

	pm, err := c.deps.PackageManagerProvider(packagemanager.NewPackageManagerParams{
		FS:      c.deps.FS,
		Runner:  c.deps.Runner,
		Kind:    c.config.PackageManager,
		RootDir: c.rootDir,
	})
	if err != nil {
		return err
	}

	c.buildToolComponents(pm)
	return nil
}

func (c *realCleaner) buildToolComponents(pm packagemanager.PackageManager) {
	if c.checker == nil {
		c.checker = tools.NewChecker(tools.NewCheckerParams{
			PackageManager: pm,
			Prompt:         c.deps.Prompt,
			Logger:         c.deps.Logger,
			Printer:        c.deps.Printer,
			MinVersions:    c.config.MinToolVersions,
		})
	}
	if c.reporter == nil {
		c.reporter = depcheck.NewReporter(depcheck.NewReporterParams{
			PackageManager: pm,
			Prompt:         c.deps.Prompt,
			Logger:         c.deps.Logger,
			Printer:        c.deps.Printer,
			Tool:           c.config.DependencyTool,
		})
	}
	if c.scanner == nil {
		c.scanner = orphans.NewScanner(orphans.NewScannerParams{
			FS:             c.deps.FS,
			PackageManager: pm,
			Logger:         c.deps.Logger,
			Printer:        c.deps.Printer,
			RootDir:        c.rootDir,
			Tool:           c.config.ModuleGraphTool,
		})
	}
}

func (c *realCleaner) newVerifier() (usage.Verifier, error) {
	params := usage.NewVerifierParams{
		FS:           c.deps.FS,
		Logger:       c.deps.Logger,
		Printer:      c.deps.Printer,
		RootDir:      c.rootDir,
		ExcludedDirs: c.config.ExcludedDirs,
	}

	if c.config.RespectGitignore {
		rules, err := usage.LoadGitignore(c.deps.FS, c.rootDir)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrGitignoreLoad, err)
		}
		params.Gitignore = rules
	}

	if c.config.CacheEntries > 0 {
		cache, err := usage.NewContentCache(c.config.CacheEntries)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrContentCache, err)
		}
		params.Cache = cache
	}

	return usage.NewVerifier(params), nil
}

// Config returns the configuration in effect.
func (c *realCleaner) Config() config.Config {
	return c.config
}

// display returns path relative to the project root when it lies inside it.
func (c *realCleaner) display(path string) string {
	rel, err := filepath.Rel(c.rootDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// resolve anchors a project-relative path at the project root.
func (c *realCleaner) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(c.rootDir, path)
}

// executeWithHooks executes an operation with pre and post hooks.
func (c *realCleaner) executeWithHooks(
	operationName string, params map[string]interface{}, operation func(ctx *hooks.HookContext) error) error {
	ctx := hooks.NewHookContext(operationName, params)

	if err := c.deps.HookManager.ExecutePreHooks(operationName, ctx); err != nil {
		return err
	}

	var resultErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				resultErr = fmt.Errorf("panic in %s: %v", operationName, r)
			}
		}()
		resultErr = operation(ctx)
	}()

	ctx.Error = resultErr
	if resultErr != nil {
		if hookErr := c.deps.HookManager.ExecuteErrorHooks(operationName, ctx); hookErr != nil {
			return hookErr
		}
		return resultErr
	}

	ctx.Results["success"] = true
	return c.deps.HookManager.ExecutePostHooks(operationName, ctx)
}
