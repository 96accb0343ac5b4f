// CI functions for jsprune: lint, unit tests and integration tests.
//
// Run them with the dagger CLI, for example:
//
//	dagger call check --source-dir=.
package main

import (
	"context"
	"runtime"

	"jsprune/dagger/internal/dagger"
)

const containerPath = "/go/src/github.com/lerenn/jsprune"

type Jsprune struct{}

// Check runs the linter and both test suites, stopping at the first failure.
func (ci *Jsprune) Check(ctx context.Context, sourceDir *dagger.Directory) error {
	for _, c := range []*dagger.Container{
		ci.Lint(sourceDir),
		ci.UnitTests(sourceDir),
		ci.IntegrationTests(sourceDir),
	} {
		if _, err := c.Sync(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Lint runs golangci-lint on the main module (./...) only.
func (ci *Jsprune) Lint(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().
		From("golangci/golangci-lint:v2.4.0").
		WithMountedCache("/root/.cache/golangci-lint", dag.CacheVolume("golangci-lint"))

	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"golangci-lint", "run", "--timeout", "10m", "./..."})
}

// UnitTests returns a container that runs the unit tests.
func (ci *Jsprune) UnitTests(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().From("golang:" + goVersion() + "-alpine")
	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"sh", "-c", "go test -tags=unit ./..."})
}

// IntegrationTests returns a container that runs the integration tests.
// They use the real filesystem and spawn processes, but never a package manager.
func (ci *Jsprune) IntegrationTests(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().From("golang:" + goVersion() + "-alpine")
	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"sh", "-c", "go test -tags=integration ./..."})
}

func (ci *Jsprune) withGoCodeAndCacheAsWorkDirectory(
	c *dagger.Container,
	sourceDir *dagger.Directory,
) *dagger.Container {
	return c.
		// Add Go caches
		WithMountedCache("/root/.cache/go-build", dag.CacheVolume("gobuild")).
		WithMountedCache("/go/pkg/mod", dag.CacheVolume("gocache")).

		// Add source code
		WithMountedDirectory(containerPath, sourceDir).

		// Add workdir
		WithWorkdir(containerPath)
}

func goVersion() string {
	return runtime.Version()[2:]
}
