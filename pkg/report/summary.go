package report

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Tally counts the outcome of one kind of action.
type Tally struct {
	Done    []string
	Skipped []string
	Failed  []string
}

// Summary aggregates the outcome of a whole run.
type Summary struct {
	Packages       Tally
	Files          Tally
	ReclaimedBytes uint64
}

// Add merges other into s.
func (s *Summary) Add(other Summary) {
	s.Packages.merge(other.Packages)
	s.Files.merge(other.Files)
	s.ReclaimedBytes += other.ReclaimedBytes
}

func (t *Tally) merge(other Tally) {
	t.Done = append(t.Done, other.Done...)
	t.Skipped = append(t.Skipped, other.Skipped...)
	t.Failed = append(t.Failed, other.Failed...)
}

// Render formats the summary as a table.
func (s Summary) Render() string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false

	tbl.AppendHeader(table.Row{"", "Removed", "Skipped", "Failed"})
	tbl.AppendRow(table.Row{"Packages", len(s.Packages.Done), len(s.Packages.Skipped), len(s.Packages.Failed)})
	tbl.AppendRow(table.Row{"Files", len(s.Files.Done), len(s.Files.Skipped), len(s.Files.Failed)})
	tbl.AppendFooter(table.Row{fmt.Sprintf("Reclaimed: %s", humanize.Bytes(s.ReclaimedBytes))})

	return tbl.Render()
}

// Summary prints the summary table.
func (p *Printer) Summary(s Summary) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "\nSummary:\n%s\n", s.Render())
}
