// Package usage searches a project for import statements referencing a file.
//
// The search is textual: it reports files whose content looks like it imports
// the candidate by name, without resolving paths. It may report unrelated files
// and miss aliased or computed imports.
package usage

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// SourceExtensions are the file extensions searched for references.
var SourceExtensions = []string{".js", ".jsx", ".ts", ".tsx"}

// BaseName returns the file name of path without its extension.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// IsSourceFile reports whether path has one of the searched extensions.
func IsSourceFile(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range SourceExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Pattern builds the expression matching an import, require or dynamic import
// whose module string refers to baseName.
func Pattern(baseName string) *regexp.Regexp {
	name := regexp.QuoteMeta(baseName)
	str := `[^'"\n]*`

	static := fmt.Sprintf(`import\s+(?:[^;'"()]*?\s*from\s*)?['"]%s%s(?:\.(?:js|jsx|ts|tsx))?['"]`, str, name)
	require := fmt.Sprintf(`require\(\s*['"]%s%s%s['"]`, str, name, str)
	dynamic := fmt.Sprintf(`import\(\s*['"]%s%s%s['"]`, str, name, str)

	return regexp.MustCompile(static + "|" + require + "|" + dynamic)
}

// Matches reports whether text contains an import statement referring to baseName.
func Matches(text, baseName string) bool {
	if baseName == "" {
		return false
	}
	return Pattern(baseName).MatchString(text)
}
