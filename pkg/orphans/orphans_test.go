//go:build unit

package orphans

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	fsmocks "github.com/lerenn/jsprune/pkg/fs/mocks"
	pmmocks "github.com/lerenn/jsprune/pkg/packagemanager/mocks"
	"github.com/lerenn/jsprune/pkg/report"
	"github.com/lerenn/jsprune/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestScanner(ctrl *gomock.Controller, out *bytes.Buffer) (Scanner, *fsmocks.MockFS, *pmmocks.MockPackageManager) {
	mockFS := fsmocks.NewMockFS(ctrl)
	mockPM := pmmocks.NewMockPackageManager(ctrl)
	s := NewScanner(NewScannerParams{
		FS:             mockFS,
		PackageManager: mockPM,
		Printer:        report.NewPrinter(report.NewPrinterParams{Out: out, NoColor: true}),
		RootDir:        "/project",
		Tool:           "madge",
	})
	return s, mockFS, mockPM
}

func TestScanner_Scan_MissingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var out bytes.Buffer
	s, mockFS, _ := newTestScanner(ctrl, &out)

	mockFS.EXPECT().IsDir("/project/pages").Return(false, os.ErrNotExist)
	mockFS.EXPECT().IsNotExist(os.ErrNotExist).Return(true)

	files, err := s.Scan(context.Background(), "/project/pages")
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Equal(t, "The 'pages' directory does not exist in this project. Skipping orphan file check.\n", out.String())
}

func TestScanner_Scan_NotADirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockFS, _ := newTestScanner(ctrl, &bytes.Buffer{})
	mockFS.EXPECT().IsDir("/project/pages").Return(false, nil)

	files, err := s.Scan(context.Background(), "/project/pages")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScanner_Scan_StatError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockFS, _ := newTestScanner(ctrl, &bytes.Buffer{})
	statErr := errors.New("permission denied")
	mockFS.EXPECT().IsDir("/project/pages").Return(false, statErr)
	mockFS.EXPECT().IsNotExist(statErr).Return(false)

	_, err := s.Scan(context.Background(), "/project/pages")
	assert.ErrorIs(t, err, ErrDirectoryCheck)
}

func TestScanner_Scan_ParsesOrphans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var out bytes.Buffer
	s, mockFS, mockPM := newTestScanner(ctrl, &out)
	mockFS.EXPECT().IsDir("/project/pages").Return(true, nil)
	mockPM.EXPECT().
		Exec(gomock.Any(), "madge", "/project/pages", "--orphans", "--json", "--extensions", "js,jsx,ts,tsx").
		Return(runner.Result{Stdout: "[\n  \"old-page.tsx\",\n  \"api/legacy.ts\",\n  \"_app.tsx\"\n]\n"}, nil)

	files, err := s.Scan(context.Background(), "/project/pages")
	require.NoError(t, err)
	assert.Equal(t, []string{"old-page.tsx", "api/legacy.ts", "_app.tsx"}, files)
	assert.Equal(t, "Running madge to find orphan files in pages...\n", out.String())
}

func TestScanner_Scan_MalformedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var out bytes.Buffer
	s, mockFS, mockPM := newTestScanner(ctrl, &out)
	mockFS.EXPECT().IsDir("/project/components").Return(true, nil)
	mockPM.EXPECT().Exec(gomock.Any(), "madge", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ ...string) (runner.Result, error) {
			return runner.Result{Stdout: "✖ Skipped 3 files", ExitCode: 1}, nil
		})

	files, err := s.Scan(context.Background(), "/project/components")
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Contains(t, out.String(), "Raw output:")
	assert.Contains(t, out.String(), "✖ Skipped 3 files")
}

func TestParseOrphans(t *testing.T) {
	files, err := ParseOrphans([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, files)

	_, err = ParseOrphans([]byte(`{"a.tsx": []}`))
	assert.ErrorIs(t, err, ErrMalformedOutput)
}
