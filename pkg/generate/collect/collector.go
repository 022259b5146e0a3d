package collect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/safe-waters/docker-project/pkg/kind"
)

// SkippedDirs are directory names that are never entered while collecting
// recursively.
var SkippedDirs = map[string]struct{}{ // nolint: gochecknoglobals
	".git":         {},
	"node_modules": {},
	"vendor":       {},
}

type pathCollector struct {
	kind            kind.Kind
	baseDir         string
	defaultPathVals []string
	manualPathVals  []string
	globVals        []string
	recursive       bool
}

type collectFunc func(paths chan<- *Path, done <-chan struct{}) error

// NewPathCollector returns an IPathCollector after validating its fields. If
// recursive is true, defaultPathVals must be defined so the collector knows
// which file names to look for as it walks baseDir.
func NewPathCollector(
	kind kind.Kind,
	baseDir string,
	defaultPathVals []string,
	manualPathVals []string,
	globVals []string,
	recursive bool,
) (IPathCollector, error) {
	if recursive && len(defaultPathVals) == 0 {
		return nil, errors.New(
			"if 'recursive' is true, 'defaultPathVals' must also be set",
		)
	}

	baseDir = filepath.Join(".", baseDir)
	if err := isSubPath(baseDir); err != nil {
		return nil, err
	}

	return &pathCollector{
		kind:            kind,
		baseDir:         baseDir,
		defaultPathVals: defaultPathVals,
		manualPathVals:  manualPathVals,
		globVals:        globVals,
		recursive:       recursive,
	}, nil
}

// Kind is a getter for the kind.
func (p *pathCollector) Kind() kind.Kind {
	return p.kind
}

// CollectPaths gathers manual paths, glob matches and, if recursive, every
// file under the base directory named like a default path. Default paths are
// only used if nothing else was requested. Paths are deduplicated and the
// first error ends collection.
func (p *pathCollector) CollectPaths(done <-chan struct{}) <-chan *Path {
	paths := make(chan *Path)

	go func() {
		defer close(paths)

		var (
			waitGroup sync.WaitGroup
			collected = make(chan *Path)
		)

		for _, collect := range p.collectFuncs() {
			collect := collect

			waitGroup.Add(1)

			go func() {
				defer waitGroup.Done()

				if err := collect(collected, done); err != nil {
					select {
					case <-done:
					case collected <- &Path{Kind: p.kind, Err: err}:
					}
				}
			}()
		}

		go func() {
			waitGroup.Wait()
			close(collected)
		}()

		seen := map[string]struct{}{}

		for path := range collected {
			if path.Err == nil {
				if _, ok := seen[path.Val]; ok {
					continue
				}

				seen[path.Val] = struct{}{}
			}

			select {
			case <-done:
				return
			case paths <- path:
			}

			if path.Err != nil {
				return
			}
		}
	}()

	return paths
}

func (p *pathCollector) collectFuncs() []collectFunc {
	var funcs []collectFunc

	if len(p.manualPathVals) != 0 {
		funcs = append(funcs, p.collectManualPaths)
	}

	if len(p.globVals) != 0 {
		funcs = append(funcs, p.collectGlobs)
	}

	if p.recursive {
		funcs = append(funcs, p.collectRecursive)
	}

	if len(funcs) == 0 && len(p.defaultPathVals) != 0 {
		funcs = append(funcs, p.collectDefaultPaths)
	}

	return funcs
}

func (p *pathCollector) collectManualPaths(
	paths chan<- *Path,
	done <-chan struct{},
) error {
	for _, val := range p.manualPathVals {
		val = filepath.Join(p.baseDir, val)

		if err := validatePath(val); err != nil {
			return err
		}

		if !p.send(paths, done, val) {
			return nil
		}
	}

	return nil
}

func (p *pathCollector) collectDefaultPaths(
	paths chan<- *Path,
	done <-chan struct{},
) error {
	for _, val := range p.defaultPathVals {
		val = filepath.Join(p.baseDir, val)

		if err := isSubPath(val); err != nil {
			return err
		}

		if validatePath(val) != nil {
			continue
		}

		if !p.send(paths, done, val) {
			return nil
		}
	}

	return nil
}

func (p *pathCollector) collectGlobs(
	paths chan<- *Path,
	done <-chan struct{},
) error {
	for _, glob := range p.globVals {
		vals, err := filepath.Glob(filepath.Join(p.baseDir, glob))
		if err != nil {
			return fmt.Errorf("'%s' is a malformed glob: %w", glob, err)
		}

		for _, val := range vals {
			if err := validatePath(val); err != nil {
				return err
			}

			if !p.send(paths, done, val) {
				return nil
			}
		}
	}

	return nil
}

func (p *pathCollector) collectRecursive(
	paths chan<- *Path,
	done <-chan struct{},
) error {
	names := map[string]struct{}{}

	for _, val := range p.defaultPathVals {
		names[filepath.Base(val)] = struct{}{}
	}

	errCancelled := errors.New("cancelled")

	err := filepath.WalkDir(
		p.baseDir,
		func(val string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if entry.IsDir() {
				if _, ok := SkippedDirs[entry.Name()]; ok && val != p.baseDir {
					return filepath.SkipDir
				}

				return nil
			}

			if _, ok := names[entry.Name()]; !ok {
				return nil
			}

			if !p.send(paths, done, val) {
				return errCancelled
			}

			return nil
		},
	)
	if errors.Is(err, errCancelled) {
		return nil
	}

	return err
}

func (p *pathCollector) send(
	paths chan<- *Path,
	done <-chan struct{},
	val string,
) bool {
	select {
	case <-done:
		return false
	case paths <- &Path{Kind: p.kind, Val: val}:
		return true
	}
}

func validatePath(val string) error {
	if err := isSubPath(val); err != nil {
		return err
	}

	fileInfo, err := os.Stat(val)
	if err != nil {
		return fmt.Errorf("'%s' encountered an error: %w", val, err)
	}

	if fileInfo.IsDir() {
		return fmt.Errorf(
			"'%s' was collected but is a directory rather than a file", val,
		)
	}

	return nil
}

func isSubPath(val string) error {
	if strings.HasPrefix(filepath.Clean(val), "..") {
		return fmt.Errorf("'%s' is outside the current working directory", val)
	}

	return nil
}
