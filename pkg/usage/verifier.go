package usage

import (
	"fmt"
	"io"
	iofs "io/fs"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/lerenn/jsprune/pkg/fs"
	"github.com/lerenn/jsprune/pkg/logger"
	"github.com/lerenn/jsprune/pkg/report"
	ignore "github.com/sabhiram/go-gitignore"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=verifier.go -destination=mocks/verifier.gen.go -package=mocks

// Verifier interface finds the files of a project that appear to import a candidate file.
type Verifier interface {
	// FindReferences returns the source files, in lexical walk order, whose content
	// matches an import of candidate. The candidate itself is never returned.
	FindReferences(candidate string) ([]string, error)
}

// NewVerifierParams contains parameters for creating a new Verifier.
type NewVerifierParams struct {
	FS      fs.FS
	Logger  logger.Logger
	Printer *report.Printer
	RootDir string
	// ExcludedDirs are directory names pruned wherever they appear in the tree.
	ExcludedDirs []string
	// Gitignore, when set, also prunes the paths it matches (relative to RootDir).
	Gitignore *ignore.GitIgnore
	// Cache, when set, keeps file contents between candidates.
	Cache *ContentCache
}

type realVerifier struct {
	fs        fs.FS
	logger    logger.Logger
	printer   *report.Printer
	rootDir   string
	excluded  map[string]struct{}
	gitignore *ignore.GitIgnore
	cache     *ContentCache
}

// NewVerifier creates a new Verifier.
func NewVerifier(params NewVerifierParams) Verifier {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}
	p := params.Printer
	if p == nil {
		p = report.NewPrinter(report.NewPrinterParams{Out: io.Discard})
	}

	excluded := make(map[string]struct{}, len(params.ExcludedDirs))
	for _, dir := range params.ExcludedDirs {
		excluded[dir] = struct{}{}
	}

	return &realVerifier{
		fs:        params.FS,
		logger:    l,
		printer:   p,
		rootDir:   filepath.Clean(params.RootDir),
		excluded:  excluded,
		gitignore: params.Gitignore,
		cache:     params.Cache,
	}
}

// LoadGitignore compiles the .gitignore of rootDir, returning nil when there is none.
func LoadGitignore(fsys fs.FS, rootDir string) (*ignore.GitIgnore, error) {
	path := filepath.Join(rootDir, ".gitignore")
	exists, err := fsys.Exists(path)
	if err != nil || !exists {
		return nil, err
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGitignore, err)
	}

	return ignore.CompileIgnoreLines(splitLines(string(data))...), nil
}

// FindReferences walks the project and returns the files importing candidate.
func (v *realVerifier) FindReferences(candidate string) ([]string, error) {
	candidate = filepath.Clean(candidate)
	pattern := Pattern(BaseName(candidate))

	var refs []string
	err := v.fs.WalkDir(v.rootDir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			v.printer.Warnf("Could not read %s: %v", path, err)
			if d != nil && d.IsDir() && path != v.rootDir {
				return iofs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != v.rootDir && v.skipDir(path, d.Name()) {
				return iofs.SkipDir
			}
			return nil
		}

		if path == candidate || !IsSourceFile(path) || v.ignored(path, false) {
			return nil
		}

		if v.references(path, pattern) {
			refs = append(refs, path)
		}
		return nil
	})
	if err != nil {
		return refs, fmt.Errorf("%w: %w", ErrWalk, err)
	}

	return refs, nil
}

func (v *realVerifier) skipDir(path, name string) bool {
	if _, ok := v.excluded[name]; ok {
		return true
	}
	return v.ignored(path, true)
}

func (v *realVerifier) ignored(path string, isDir bool) bool {
	if v.gitignore == nil {
		return false
	}
	rel, err := filepath.Rel(v.rootDir, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if isDir {
		rel += "/"
	}
	return v.gitignore.MatchesPath(rel)
}

// references reads one file and matches it. Unreadable files count as non-matching.
func (v *realVerifier) references(path string, pattern *regexp.Regexp) bool {
	content, err := v.read(path)
	if err != nil {
		v.printer.Warnf("Could not read %s, skipping it: %v", path, err)
		return false
	}
	return pattern.Match(content)
}

func (v *realVerifier) read(path string) ([]byte, error) {
	if v.cache == nil {
		return v.fs.ReadFile(path)
	}

	info, err := v.fs.Stat(path)
	if err != nil {
		return nil, err
	}
	key := cacheKey{path: path, size: info.Size(), modTime: info.ModTime().UnixNano()}
	if content, ok := v.cache.get(key); ok {
		v.logger.Logf("Using cached content of %s", path)
		return content, nil
	}

	content, err := v.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	v.cache.add(key, content, time.Now())
	return content, nil
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
