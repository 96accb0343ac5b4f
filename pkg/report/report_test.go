//go:build unit

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(NewPrinterParams{Out: &buf, Quiet: true, NoColor: true})

	p.Infof("Running %s", "depcheck")
	p.Successf("Deleted %s", "a.tsx")
	p.Items([]string{"lodash"})
	p.Summary(Summary{})
	assert.Empty(t, buf.String())

	p.Warnf("warning %d", 1)
	p.Errorf("error %d", 2)
	assert.Equal(t, "warning 1\nerror 2\n", buf.String())
}

func TestPrinter_Lines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(NewPrinterParams{Out: &buf, NoColor: true})

	p.Infof("Unused packages detected:")
	p.Items([]string{"lodash", "moment"})
	p.Successf("lodash uninstalled successfully.")

	assert.Equal(t, "Unused packages detected:\n - lodash\n - moment\nlodash uninstalled successfully.\n", buf.String())
}

func TestSummary_AddAndRender(t *testing.T) {
	var s Summary
	s.Add(Summary{Packages: Tally{Done: []string{"lodash"}, Skipped: []string{"react"}}})
	s.Add(Summary{Files: Tally{Done: []string{"pages/old.tsx"}, Failed: []string{"pages/locked.tsx"}}, ReclaimedBytes: 2048})

	assert.Equal(t, []string{"lodash"}, s.Packages.Done)
	assert.Equal(t, []string{"react"}, s.Packages.Skipped)
	assert.Equal(t, []string{"pages/old.tsx"}, s.Files.Done)
	assert.Equal(t, []string{"pages/locked.tsx"}, s.Files.Failed)
	assert.Equal(t, uint64(2048), s.ReclaimedBytes)

	out := s.Render()
	assert.Contains(t, out, "Packages")
	assert.Contains(t, out, "Files")
	assert.Contains(t, strings.ToLower(out), "reclaimed: 2.0 kb")
}
