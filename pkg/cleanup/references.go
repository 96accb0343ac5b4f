package cleanup

import (
	"fmt"

	"github.com/lerenn/jsprune/pkg/cleanup/consts"
	"github.com/lerenn/jsprune/pkg/hooks"
)

// FindReferences runs the usage search for one file. A relative file is taken from
// the project root.
func (c *realCleaner) FindReferences(file string) ([]string, error) {
	path := c.resolve(file)

	var refs []string
	params := map[string]interface{}{"file": path}
	err := c.executeWithHooks(consts.FindReferences, params, func(hctx *hooks.HookContext) error {
		isFile, err := c.deps.FS.IsRegularFile(path)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrCandidateFile, path, err)
		}
		if !isFile {
			return fmt.Errorf("%w: %s", ErrCandidateFile, path)
		}

		refs, err = c.verifier.FindReferences(path)
		hctx.Results["references"] = len(refs)
		return err
	})

	return refs, err
}
