// Package consts provides operation name constants for the hook system.
package consts

// Operation names for the hook system.
const (
	Run                      = "Run"
	EnsureTools              = "EnsureTools"
	RemoveUnusedDependencies = "RemoveUnusedDependencies"
	DeleteOrphans            = "DeleteOrphans"
	FindReferences           = "FindReferences"
)

// All lists every operation, in pipeline order.
var All = []string{Run, EnsureTools, RemoveUnusedDependencies, DeleteOrphans, FindReferences}
