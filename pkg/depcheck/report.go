// Package depcheck finds and removes dependencies that a project never imports.
package depcheck

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Report is the JSON report of the dependency-analysis tool.
// Keys other than dependencies and devDependencies are ignored.
type Report struct {
	Dependencies    []string `json:"dependencies"`
	DevDependencies []string `json:"devDependencies"`
}

// ParseReport decodes a report. Missing keys default to empty lists.
func ParseReport(data []byte) (Report, error) {
	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrMalformedReport, err)
	}
	return report, nil
}

// Unused returns the union of unused dependencies and devDependencies, without duplicates,
// sorted by name.
func (r Report) Unused() []string {
	seen := make(map[string]struct{}, len(r.Dependencies)+len(r.DevDependencies))
	var names []string
	for _, list := range [][]string{r.Dependencies, r.DevDependencies} {
		for _, name := range list {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
