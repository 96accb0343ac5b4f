//go:build unit

package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lerenn/jsprune/pkg/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		Quiet, Verbose, Yes, DryRun, NoColor = false, false, false, false, false
		ConfigPath, RootDir = "", ""
	})
}

func TestProjectRoot(t *testing.T) {
	resetFlags(t)

	RootDir = "/srv/shop/../shop"
	root, err := ProjectRoot()
	require.NoError(t, err)
	assert.Equal(t, "/srv/shop", root)

	RootDir = ""
	root, err = ProjectRoot()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(root))
}

func TestGetConfigPath(t *testing.T) {
	resetFlags(t)

	assert.Equal(t, "/srv/shop/.jsprune.yaml", GetConfigPath("/srv/shop"))

	ConfigPath = "/etc/jsprune.yaml"
	assert.Equal(t, "/etc/jsprune.yaml", GetConfigPath("/srv/shop"))
}

func TestNewPrompter(t *testing.T) {
	resetFlags(t)
	var out bytes.Buffer

	Yes, DryRun = true, true
	_, err := NewPrompter(strings.NewReader(""), &out)
	assert.ErrorIs(t, err, ErrConflictingFlags)

	Yes, DryRun = true, false
	p, err := NewPrompter(strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.IsType(t, &prompt.AutoPrompt{}, p)
	ok, err := p.PromptForConfirmation("Uninstall lodash?")
	require.NoError(t, err)
	assert.True(t, ok)

	Yes, DryRun = false, true
	p, err = NewPrompter(strings.NewReader(""), &out)
	require.NoError(t, err)
	ok, err = p.PromptForConfirmation("Delete pages/old.tsx?")
	require.NoError(t, err)
	assert.False(t, ok)

	Yes, DryRun = false, false
	p, err = NewPrompter(strings.NewReader("yes\n"), &out)
	require.NoError(t, err)
	ok, err = p.PromptForConfirmation("Delete pages/old.tsx?")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewDependencies(t *testing.T) {
	resetFlags(t)
	Verbose = true

	deps, err := NewDependencies("/srv/shop", strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, err)
	require.NoError(t, deps.Validate())
	assert.Equal(t, "/srv/shop/.jsprune.yaml", deps.Config.GetConfigPath())

	DryRun, Yes = true, true
	_, err = NewDependencies("/srv/shop", strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrConflictingFlags)
}
