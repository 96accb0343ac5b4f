//go:build unit

package cleanup

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/lerenn/jsprune/pkg/config"
	configmocks "github.com/lerenn/jsprune/pkg/config/mocks"
	depcheckmocks "github.com/lerenn/jsprune/pkg/depcheck/mocks"
	"github.com/lerenn/jsprune/pkg/dependencies"
	fsmocks "github.com/lerenn/jsprune/pkg/fs/mocks"
	"github.com/lerenn/jsprune/pkg/hooks"
	"github.com/lerenn/jsprune/pkg/logger"
	orphansmocks "github.com/lerenn/jsprune/pkg/orphans/mocks"
	"github.com/lerenn/jsprune/pkg/packagemanager"
	pmmocks "github.com/lerenn/jsprune/pkg/packagemanager/mocks"
	"github.com/lerenn/jsprune/pkg/prompt"
	"github.com/lerenn/jsprune/pkg/report"
	"github.com/lerenn/jsprune/pkg/runner"
	toolsmocks "github.com/lerenn/jsprune/pkg/tools/mocks"
	usagemocks "github.com/lerenn/jsprune/pkg/usage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeFileInfo struct {
	name string
	size int64
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return f.size }
func (f fakeFileInfo) Mode() os.FileMode  { return 0644 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return false }
func (f fakeFileInfo) Sys() interface{}   { return nil }

type testCleaner struct {
	cleaner  Cleaner
	out      *bytes.Buffer
	prompt   *prompt.ScriptedPrompt
	fs       *fsmocks.MockFS
	checker  *toolsmocks.MockChecker
	reporter *depcheckmocks.MockReporter
	scanner  *orphansmocks.MockScanner
	verifier *usagemocks.MockVerifier
	hooks    hooks.HookManagerInterface
}

func newTestCleaner(t *testing.T, ctrl *gomock.Controller, answers ...bool) *testCleaner {
	t.Helper()

	tc := &testCleaner{
		out:      &bytes.Buffer{},
		prompt:   prompt.NewScriptedPrompt(answers...),
		fs:       fsmocks.NewMockFS(ctrl),
		checker:  toolsmocks.NewMockChecker(ctrl),
		reporter: depcheckmocks.NewMockReporter(ctrl),
		scanner:  orphansmocks.NewMockScanner(ctrl),
		verifier: usagemocks.NewMockVerifier(ctrl),
		hooks:    hooks.NewHookManager(),
	}

	cfgManager := configmocks.NewMockManager(ctrl)
	cfgManager.EXPECT().GetConfigWithFallback().Return(config.Default(), nil)

	deps := dependencies.New().
		WithFS(tc.fs).
		WithConfig(cfgManager).
		WithPrompt(tc.prompt).
		WithHookManager(tc.hooks).
		WithPrinter(report.NewPrinter(report.NewPrinterParams{Out: tc.out, NoColor: true}))

	cleaner, err := NewCleaner(NewCleanerParams{
		Dependencies: deps,
		RootDir:      "/project",
		Checker:      tc.checker,
		Reporter:     tc.reporter,
		Scanner:      tc.scanner,
		Verifier:     tc.verifier,
	})
	require.NoError(t, err)
	tc.cleaner = cleaner
	return tc
}

func TestNewCleaner_EmptyRoot(t *testing.T) {
	_, err := NewCleaner(NewCleanerParams{RootDir: ""})
	assert.ErrorIs(t, err, ErrRootDirEmpty)
}

func TestNewCleaner_ConfigError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfgManager := configmocks.NewMockManager(ctrl)
	cfgManager.EXPECT().GetConfigWithFallback().Return(config.Config{}, config.ErrConfigFileParse)

	_, err := NewCleaner(NewCleanerParams{
		Dependencies: dependencies.New().WithConfig(cfgManager),
		RootDir:      "/project",
	})
	assert.ErrorIs(t, err, ErrConfigLoad)
	assert.ErrorIs(t, err, config.ErrConfigFileParse)
}

func TestCleaner_PackageManagerMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfgManager := configmocks.NewMockManager(ctrl)
	cfgManager.EXPECT().GetConfigWithFallback().Return(config.Default(), nil)
	mockFS := fsmocks.NewMockFS(ctrl)
	verifier := usagemocks.NewMockVerifier(ctrl)

	var requested []packagemanager.NewPackageManagerParams
	deps := dependencies.New().
		WithFS(mockFS).
		WithConfig(cfgManager).
		WithPrinter(report.NewPrinter(report.NewPrinterParams{Out: &bytes.Buffer{}, NoColor: true})).
		WithPackageManagerProvider(func(params packagemanager.NewPackageManagerParams) (packagemanager.PackageManager, error) {
			requested = append(requested, params)
			return nil, packagemanager.ErrPackageManagerNotFound
		})

	cleaner, err := NewCleaner(NewCleanerParams{
		Dependencies: deps,
		RootDir:      "/project",
		Verifier:     verifier,
	})
	require.NoError(t, err)

	// The usage search never needs the package manager
	mockFS.EXPECT().IsRegularFile("/project/lib/helper.js").Return(true, nil)
	verifier.EXPECT().FindReferences("/project/lib/helper.js").Return(nil, nil)
	_, err = cleaner.FindReferences("lib/helper.js")
	require.NoError(t, err)
	assert.Empty(t, requested)

	ctx := context.Background()
	assert.ErrorIs(t, cleaner.EnsureTools(ctx, "depcheck"), packagemanager.ErrPackageManagerNotFound)
	_, err = cleaner.RemoveUnusedDependencies(ctx)
	assert.ErrorIs(t, err, packagemanager.ErrPackageManagerNotFound)
	_, err = cleaner.DeleteOrphans(ctx, "pages")
	assert.ErrorIs(t, err, packagemanager.ErrPackageManagerNotFound)
	_, err = cleaner.Run(ctx)
	assert.ErrorIs(t, err, packagemanager.ErrPackageManagerNotFound)

	require.Len(t, requested, 4)
	assert.Equal(t, "/project", requested[0].RootDir)
	assert.Equal(t, config.PackageManagerPNPM, requested[0].Kind)
}

func TestCleaner_PackageManagerLocatedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfgManager := configmocks.NewMockManager(ctrl)
	cfgManager.EXPECT().GetConfigWithFallback().Return(config.Default(), nil)
	mockPM := pmmocks.NewMockPackageManager(ctrl)
	mockPM.EXPECT().Name().Return("pnpm").AnyTimes()

	calls := 0
	deps := dependencies.New().
		WithConfig(cfgManager).
		WithPrinter(report.NewPrinter(report.NewPrinterParams{Out: &bytes.Buffer{}, NoColor: true})).
		WithPackageManagerProvider(func(packagemanager.NewPackageManagerParams) (packagemanager.PackageManager, error) {
			calls++
			return mockPM, nil
		})

	cleaner, err := NewCleaner(NewCleanerParams{
		Dependencies: deps,
		RootDir:      "/project",
		Verifier:     usagemocks.NewMockVerifier(ctrl),
	})
	require.NoError(t, err)
	assert.Zero(t, calls)

	ctx := context.Background()
	mockPM.EXPECT().Exec(gomock.Any(), "depcheck", "--version").Return(runner.Result{Stdout: "1.4.7"}, nil)
	mockPM.EXPECT().Exec(gomock.Any(), "depcheck", "--json").Return(runner.Result{Stdout: "{}"}, nil)

	require.NoError(t, cleaner.EnsureTools(ctx, "depcheck"))
	summary, err := cleaner.RemoveUnusedDependencies(ctx)
	require.NoError(t, err)
	assert.Empty(t, summary.Packages.Done)
	assert.Equal(t, 1, calls)
}

func TestCleaner_DeleteOrphans_NoReferencesConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tc := newTestCleaner(t, ctrl, true)

	tc.scanner.EXPECT().Scan(gomock.Any(), "/project/pages").Return([]string{"old-page.tsx"}, nil)
	tc.fs.EXPECT().IsRegularFile("/project/pages/old-page.tsx").Return(true, nil)
	tc.verifier.EXPECT().FindReferences("/project/pages/old-page.tsx").Return(nil, nil)
	tc.fs.EXPECT().Stat("/project/pages/old-page.tsx").Return(fakeFileInfo{name: "old-page.tsx", size: 1536}, nil)
	tc.fs.EXPECT().Remove("/project/pages/old-page.tsx").Return(nil)

	summary, err := tc.cleaner.DeleteOrphans(context.Background(), "pages")
	require.NoError(t, err)
	assert.Equal(t, []string{"pages/old-page.tsx"}, summary.Files.Done)
	assert.Equal(t, uint64(1536), summary.ReclaimedBytes)
	assert.Equal(t, []string{"Delete pages/old-page.tsx?"}, tc.prompt.Asked())
	assert.Contains(t, tc.out.String(), "Deleted pages/old-page.tsx (1.5 kB).")
}

func TestCleaner_DeleteOrphans_NoReferencesDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tc := newTestCleaner(t, ctrl, false)

	tc.scanner.EXPECT().Scan(gomock.Any(), "/project/pages").Return([]string{"old-page.tsx"}, nil)
	tc.fs.EXPECT().IsRegularFile("/project/pages/old-page.tsx").Return(true, nil)
	tc.verifier.EXPECT().FindReferences("/project/pages/old-page.tsx").Return(nil, nil)

	summary, err := tc.cleaner.DeleteOrphans(context.Background(), "pages")
	require.NoError(t, err)
	assert.Equal(t, []string{"pages/old-page.tsx"}, summary.Files.Skipped)
	assert.Empty(t, summary.Files.Done)
	assert.Contains(t, tc.out.String(), "Keeping pages/old-page.tsx.")
}

func TestCleaner_DeleteOrphans_PromptAndCheckFailuresAreReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tc := newTestCleaner(t, ctrl)

	tc.scanner.EXPECT().Scan(gomock.Any(), "/project/pages").Return([]string{"locked.tsx", "old-page.tsx"}, nil)
	tc.fs.EXPECT().IsRegularFile("/project/pages/locked.tsx").Return(false, os.ErrPermission)
	tc.fs.EXPECT().IsRegularFile("/project/pages/old-page.tsx").Return(true, nil)
	tc.verifier.EXPECT().FindReferences("/project/pages/old-page.tsx").Return(nil, nil)

	summary, err := tc.cleaner.DeleteOrphans(context.Background(), "pages")
	require.NoError(t, err)
	assert.Equal(t, []string{"pages/locked.tsx", "pages/old-page.tsx"}, summary.Files.Skipped)

	out := tc.out.String()
	assert.Contains(t, out, "Could not check pages/locked.tsx: permission denied")
	assert.Contains(t, out, "Could not read the answer, assuming no: no scripted answer left")
}

func TestCleaner_DeleteOrphans_ReferencedOverrideDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tc := newTestCleaner(t, ctrl, false, true)

	tc.scanner.EXPECT().Scan(gomock.Any(), "/project/components").Return([]string{"Button.tsx"}, nil)
	tc.fs.EXPECT().IsRegularFile("/project/components/Button.tsx").Return(true, nil)
	tc.verifier.EXPECT().FindReferences("/project/components/Button.tsx").
		Return([]string{"/project/pages/index.tsx"}, nil)

	summary, err := tc.cleaner.DeleteOrphans(context.Background(), "/project/components")
	require.NoError(t, err)
	assert.Equal(t, []string{"components/Button.tsx"}, summary.Files.Skipped)
	assert.Equal(t, []string{"components/Button.tsx is still referenced. Delete it anyway?"}, tc.prompt.Asked())
	assert.Contains(t, tc.out.String(), "components/Button.tsx appears to be imported by:\n - pages/index.tsx\n")
}

func TestCleaner_DeleteOrphans_ReferencedOverrideAccepted(t *testing.T) {
	tests := []struct {
		name    string
		answers []bool
		deleted bool
	}{
		{name: "delete confirmed", answers: []bool{true, true}, deleted: true},
		{name: "delete declined", answers: []bool{true, false}, deleted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			tc := newTestCleaner(t, ctrl, tt.answers...)

			tc.scanner.EXPECT().Scan(gomock.Any(), "/project/components").Return([]string{"Button.tsx"}, nil)
			tc.fs.EXPECT().IsRegularFile("/project/components/Button.tsx").Return(true, nil)
			tc.verifier.EXPECT().FindReferences("/project/components/Button.tsx").
				Return([]string{"/project/pages/index.tsx"}, nil)
			if tt.deleted {
				tc.fs.EXPECT().Stat("/project/components/Button.tsx").Return(fakeFileInfo{size: 10}, nil)
				tc.fs.EXPECT().Remove("/project/components/Button.tsx").Return(nil)
			}

			summary, err := tc.cleaner.DeleteOrphans(context.Background(), "components")
			require.NoError(t, err)
			assert.Len(t, tc.prompt.Asked(), 2)
			assert.Equal(t, "Delete components/Button.tsx?", tc.prompt.Asked()[1])
			if tt.deleted {
				assert.Equal(t, []string{"components/Button.tsx"}, summary.Files.Done)
			} else {
				assert.Equal(t, []string{"components/Button.tsx"}, summary.Files.Skipped)
			}
		})
	}
}

func TestCleaner_DeleteOrphans_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tc := newTestCleaner(t, ctrl)

	tc.scanner.EXPECT().Scan(gomock.Any(), "/project/pages").Return([]string{"gone.tsx", "api"}, nil)
	tc.fs.EXPECT().IsRegularFile("/project/pages/gone.tsx").Return(false, nil)
	tc.fs.EXPECT().IsRegularFile("/project/pages/api").Return(false, nil)

	summary, err := tc.cleaner.DeleteOrphans(context.Background(), "pages")
	require.NoError(t, err)
	assert.Equal(t, []string{"pages/gone.tsx", "pages/api"}, summary.Files.Skipped)
	assert.Empty(t, tc.prompt.Asked())
	assert.Contains(t, tc.out.String(), "pages/gone.tsx does not exist or is not a file.")
}

func TestCleaner_DeleteOrphans_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tc := newTestCleaner(t, ctrl, true)

	tc.scanner.EXPECT().Scan(gomock.Any(), "/project/pages").Return([]string{"a.tsx", "b.tsx"}, nil)
	tc.fs.EXPECT().IsRegularFile("/project/pages/a.tsx").Return(true, nil)
	tc.verifier.EXPECT().FindReferences("/project/pages/a.tsx").Return(nil, errors.New("walk failed"))
	tc.fs.EXPECT().IsRegularFile("/project/pages/b.tsx").Return(true, nil)
	tc.verifier.EXPECT().FindReferences("/project/pages/b.tsx").Return(nil, nil)
	tc.fs.EXPECT().Stat("/project/pages/b.tsx").Return(fakeFileInfo{size: 4}, nil)
	tc.fs.EXPECT().Remove("/project/pages/b.tsx").Return(os.ErrPermission)

	summary, err := tc.cleaner.DeleteOrphans(context.Background(), "pages")
	require.NoError(t, err)
	assert.Equal(t, []string{"pages/a.tsx", "pages/b.tsx"}, summary.Files.Failed)
	assert.Zero(t, summary.ReclaimedBytes)
	assert.Contains(t, tc.out.String(), "Error checking references to pages/a.tsx: walk failed")
	assert.Contains(t, tc.out.String(), "Error deleting pages/b.tsx:")
}

func TestCleaner_DeleteOrphans_NothingFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tc := newTestCleaner(t, ctrl)

	tc.scanner.EXPECT().Scan(gomock.Any(), "/project/app/api").Return(nil, nil)

	summary, err := tc.cleaner.DeleteOrphans(context.Background(), "app/api")
	require.NoError(t, err)
	assert.Equal(t, report.Summary{}, summary)
	assert.Contains(t, tc.out.String(), "No orphan files found in app/api.")
}

func TestCleaner_DeleteOrphans_ScanError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tc := newTestCleaner(t, ctrl)

	scanErr := errors.New("madge crashed")
	tc.scanner.EXPECT().Scan(gomock.Any(), "/project/pages").Return(nil, scanErr)

	_, err := tc.cleaner.DeleteOrphans(context.Background(), "pages")
	assert.ErrorIs(t, err, scanErr)
}

func TestCleaner_RemoveUnusedDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tc := newTestCleaner(t, ctrl)

	gomock.InOrder(
		tc.reporter.EXPECT().Find(gomock.Any()).Return([]string{"lodash"}, nil),
		tc.reporter.EXPECT().Remove(gomock.Any(), []string{"lodash"}).Return(report.Tally{Done: []string{"lodash"}}),
	)

	summary, err := tc.cleaner.RemoveUnusedDependencies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"lodash"}, summary.Packages.Done)
}

func TestCleaner_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tc := newTestCleaner(t, ctrl)

	gomock.InOrder(
		tc.checker.EXPECT().Ensure(gomock.Any(), "depcheck").Return(nil),
		tc.checker.EXPECT().Ensure(gomock.Any(), "madge").Return(nil),
		tc.reporter.EXPECT().Find(gomock.Any()).Return(nil, errors.New("depcheck crashed")),
		tc.scanner.EXPECT().Scan(gomock.Any(), "/project/pages").Return(nil, nil),
		tc.scanner.EXPECT().Scan(gomock.Any(), "/project/components").Return(nil, errors.New("madge crashed")),
		tc.scanner.EXPECT().Scan(gomock.Any(), "/project/app/api").Return(nil, nil),
	)

	_, err := tc.cleaner.Run(context.Background())
	require.NoError(t, err)

	out := tc.out.String()
	assert.Contains(t, out, "Error checking unused packages: depcheck crashed")
	assert.Contains(t, out, "Error checking orphan files in components: madge crashed")
	assert.Contains(t, out, "Summary:")
}

func TestCleaner_Run_ToolDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tc := newTestCleaner(t, ctrl)

	declined := errors.New("install declined")
	tc.checker.EXPECT().Ensure(gomock.Any(), "depcheck").Return(declined)

	_, err := tc.cleaner.Run(context.Background())
	assert.ErrorIs(t, err, ErrToolUnavailable)
	assert.ErrorIs(t, err, declined)
	assert.NotContains(t, tc.out.String(), "Summary:")
}

func TestCleaner_FindReferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tc := newTestCleaner(t, ctrl)

	tc.fs.EXPECT().IsRegularFile("/project/lib/helper.js").Return(true, nil)
	tc.verifier.EXPECT().FindReferences("/project/lib/helper.js").Return([]string{"/project/pages/index.tsx"}, nil)
	tc.fs.EXPECT().IsRegularFile("/project/lib/missing.js").Return(false, nil)

	refs, err := tc.cleaner.FindReferences("lib/helper.js")
	require.NoError(t, err)
	assert.Equal(t, []string{"/project/pages/index.tsx"}, refs)

	_, err = tc.cleaner.FindReferences("lib/missing.js")
	assert.ErrorIs(t, err, ErrCandidateFile)
}

func TestCleaner_Hooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tc := newTestCleaner(t, ctrl)

	var logs bytes.Buffer
	require.NoError(t, tc.hooks.Register("DeleteOrphans", hooks.NewLoggingHook(logger.NewWriterLogger(&logs, ""))))

	tc.scanner.EXPECT().Scan(gomock.Any(), "/project/pages").Return(nil, nil)
	tc.scanner.EXPECT().Scan(gomock.Any(), "/project/pages").Return(nil, errors.New("madge crashed"))

	_, err := tc.cleaner.DeleteOrphans(context.Background(), "pages")
	require.NoError(t, err)
	_, err = tc.cleaner.DeleteOrphans(context.Background(), "pages")
	require.Error(t, err)

	assert.Contains(t, logs.String(), "Starting operation: DeleteOrphans")
	assert.Contains(t, logs.String(), "Operation completed: DeleteOrphans")
	assert.Contains(t, logs.String(), "Operation failed: DeleteOrphans, error: madge crashed")
}
