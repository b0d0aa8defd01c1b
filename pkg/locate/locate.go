// Package locate finds the starting point of a resolution: a name is
// looked up in the current directory when it carries a path separator,
// otherwise against every entry of PATH.
package locate

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/symseek/pkg/errors"
	"github.com/arthur-debert/symseek/pkg/logging"
	"github.com/arthur-debert/symseek/pkg/types"
)

var log = logging.GetLogger("locate")

// FindFile locates name. A name containing a path separator is treated
// as a path: absolute ones as-is, relative ones against the working
// directory. A bare name is searched across PATH, collecting every
// existing match in order.
func FindFile(name string) (*types.FileLocation, error) {
	log.Debug().Str("name", name).Msg("findFile called")

	if strings.ContainsRune(name, os.PathSeparator) {
		path, err := searchInCwd(name)
		if err != nil {
			return nil, err
		}
		if path != "" {
			log.Debug().Str("path", path).Msg("found in current directory")
			return &types.FileLocation{
				Source: types.SourceCurrentDirectory,
				Paths:  []string{path},
			}, nil
		}
		return nil, errors.Newf(errors.ErrNotFound, "file %q not found in current directory", name)
	}

	paths, err := searchInPath(name)
	if err != nil {
		return nil, err
	}
	if len(paths) > 0 {
		log.Debug().Int("matches", len(paths)).Msg("found in PATH")
		return &types.FileLocation{
			Source: types.SourcePathEnvironment,
			Paths:  paths,
		}, nil
	}

	return nil, errors.Newf(errors.ErrNotFound, "file %q not found in PATH", name)
}

// searchInCwd resolves name against the working directory; absolute
// names are taken as-is. "" means the file does not exist there.
func searchInCwd(name string) (string, error) {
	target := name
	if !filepath.IsAbs(name) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrIO, "failed to get current directory")
		}
		target = filepath.Join(cwd, name)
	}

	if _, err := os.Stat(target); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", errors.Wrapf(err, errors.ErrIO, "failed to check if %s exists", target)
	}
	return target, nil
}

// searchInPath collects every PATH entry that contains name, in PATH
// order. Entries whose lookups fail with anything other than
// "not found" abort the search.
func searchInPath(name string) ([]string, error) {
	pathEnv, ok := os.LookupEnv("PATH")
	if !ok {
		return nil, errors.New(errors.ErrInvalidInput, "PATH environment variable not found")
	}

	var found []string
	for _, dir := range filepath.SplitList(pathEnv) {
		if dir == "" {
			continue
		}

		full := filepath.Join(dir, name)
		if _, err := os.Stat(full); err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, errors.Wrapf(err, errors.ErrIO, "failed to check if %s exists", full)
		}
		found = append(found, full)
	}

	return found, nil
}
