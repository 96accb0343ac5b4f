// Package packagemanager wraps the JavaScript package manager of a project.
package packagemanager

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/jsprune/pkg/config"
	"github.com/lerenn/jsprune/pkg/fs"
	"github.com/lerenn/jsprune/pkg/runner"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=packagemanager.go -destination=mocks/packagemanager.gen.go -package=mocks

// PackageManager interface runs tools and edits dependencies through a package manager.
type PackageManager interface {
	// Name returns the package manager executable name.
	Name() string
	// Exec runs a locally installed tool through the package manager's execution wrapper.
	Exec(ctx context.Context, tool string, args ...string) (runner.Result, error)
	// Remove uninstalls a package from the project.
	Remove(ctx context.Context, pkg string) error
	// AddDev installs a package as a development dependency.
	AddDev(ctx context.Context, pkg string) error
}

// flavor holds the command shapes of one package manager.
type flavor struct {
	exec   []string
	remove []string
	addDev []string
}

var flavors = map[string]flavor{
	config.PackageManagerPNPM: {
		exec:   []string{"exec"},
		remove: []string{"remove"},
		addDev: []string{"add", "-D"},
	},
	config.PackageManagerNPM: {
		exec:   []string{"exec", "--no", "--"},
		remove: []string{"uninstall"},
		addDev: []string{"install", "--save-dev"},
	},
	config.PackageManagerYarn: {
		exec:   []string{"run"},
		remove: []string{"remove"},
		addDev: []string{"add", "--dev"},
	},
}

// lockfiles maps lockfile names to the package manager owning them, in detection order.
var lockfiles = []struct {
	file string
	kind string
}{
	{"pnpm-lock.yaml", config.PackageManagerPNPM},
	{"yarn.lock", config.PackageManagerYarn},
	{"package-lock.json", config.PackageManagerNPM},
}

// NewPackageManagerParams contains parameters for creating a new PackageManager.
type NewPackageManagerParams struct {
	FS      fs.FS
	Runner  runner.Runner
	Kind    string
	RootDir string
}

type realPackageManager struct {
	runner  runner.Runner
	name    string
	rootDir string
	flavor  flavor
}

// NewPackageManager resolves the package manager executable and returns a PackageManager
// running every command from the project root.
func NewPackageManager(params NewPackageManagerParams) (PackageManager, error) {
	kind := params.Kind
	if kind == "" || kind == config.PackageManagerAuto {
		kind = Detect(params.FS, params.RootDir)
	}

	f, ok := flavors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPackageManager, kind)
	}

	if _, err := params.FS.Which(kind); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPackageManagerNotFound, kind, err)
	}

	return &realPackageManager{
		runner:  params.Runner,
		name:    kind,
		rootDir: params.RootDir,
		flavor:  f,
	}, nil
}

// Detect picks the package manager from the lockfile found in rootDir, defaulting to pnpm.
func Detect(fsys fs.FS, rootDir string) string {
	for _, lf := range lockfiles {
		if exists, err := fsys.Exists(filepath.Join(rootDir, lf.file)); err == nil && exists {
			return lf.kind
		}
	}
	return config.PackageManagerPNPM
}

// Name returns the package manager executable name.
func (p *realPackageManager) Name() string {
	return p.name
}

// Exec runs a locally installed tool through the package manager's execution wrapper.
func (p *realPackageManager) Exec(ctx context.Context, tool string, args ...string) (runner.Result, error) {
	return p.run(ctx, p.flavor.exec, append([]string{tool}, args...))
}

// Remove uninstalls a package from the project.
func (p *realPackageManager) Remove(ctx context.Context, pkg string) error {
	return p.mutate(ctx, p.flavor.remove, pkg)
}

// AddDev installs a package as a development dependency.
func (p *realPackageManager) AddDev(ctx context.Context, pkg string) error {
	return p.mutate(ctx, p.flavor.addDev, pkg)
}

func (p *realPackageManager) mutate(ctx context.Context, verb []string, pkg string) error {
	result, err := p.run(ctx, verb, []string{pkg})
	if err != nil {
		return err
	}
	if !result.Success() {
		detail := strings.TrimSpace(result.Stderr)
		if detail == "" {
			detail = result.Output()
		}
		return fmt.Errorf("%w: %s %s %s exited with status %d: %s",
			ErrCommandFailed, p.name, strings.Join(verb, " "), pkg, result.ExitCode, detail)
	}
	return nil
}

func (p *realPackageManager) run(ctx context.Context, verb, args []string) (runner.Result, error) {
	return p.runner.Run(ctx, runner.Command{
		Dir:  p.rootDir,
		Name: p.name,
		Args: append(append([]string{}, verb...), args...),
	})
}
