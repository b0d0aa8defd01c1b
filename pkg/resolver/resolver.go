// Package resolver follows a filesystem entry point through every
// layer of indirection: symlinks, generated wrapper scripts and binary
// wrappers, until a terminal file is reached.
package resolver

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/symseek/pkg/detect"
	"github.com/arthur-debert/symseek/pkg/errors"
	"github.com/arthur-debert/symseek/pkg/logging"
	"github.com/arthur-debert/symseek/pkg/types"
)

var log = logging.GetLogger("resolver")

// Resolver drives the traversal loop. The zero value is not usable;
// construct with New. Independent Resolve calls share no mutable state
// and may run concurrently.
type Resolver struct {
	detectors []detect.WrapperDetector
}

// New creates a resolver with the given wrapper detectors, probed in
// the order given. With no arguments the default detector set for
// DefaultStoreRoot is used.
func New(detectors ...detect.WrapperDetector) *Resolver {
	if len(detectors) == 0 {
		detectors = detect.Detectors(detect.DefaultStoreRoot)
	}
	return &Resolver{detectors: detectors}
}

// Resolve follows path with the default detector set.
func Resolve(path string) (*types.SymlinkChain, error) {
	return New().Resolve(path)
}

// Resolve follows symlinks and wrappers starting from path, building a
// chain of every hop found. The input must be absolute. Exactly one
// hop is final on success; no path repeats within one chain. On error
// the in-progress chain is discarded, never partially returned.
func (r *Resolver) Resolve(path string) (*types.SymlinkChain, error) {
	log.Debug().Str("path", path).Msg("resolve called")

	if !filepath.IsAbs(path) {
		return nil, errors.New(errors.ErrInvalidInput, "path must be absolute").
			WithDetail("path", path)
	}

	chain := types.NewSymlinkChain(path)
	current := path
	visited := make(map[string]struct{})

	for iteration := 1; ; iteration++ {
		log.Trace().Int("iteration", iteration).Str("current", current).Msg("processing")

		if _, seen := visited[current]; seen {
			log.Debug().Str("path", current).Msg("cycle detected")
			return nil, errors.Newf(errors.ErrCycleDetected, "cycle detected in chain at %s", current).
				WithDetail("path", current)
		}
		visited[current] = struct{}{}

		next, wasSymlink, err := readSymlink(current)
		if err != nil {
			return nil, err
		}
		if wasSymlink {
			current = next
		}

		fileType, err := detect.Classify(current)
		if err != nil {
			return nil, err
		}
		log.Debug().Stringer("fileType", fileType).Str("current", current).Msg("file type detected")

		target, linkType, found, err := r.detectWrapper(current, fileType)
		if err != nil {
			return nil, err
		}
		if found {
			log.Debug().Str("target", target).Msg("found wrapper, following")
			chain.AddLink(current, false, linkType)
			current = target
			continue
		}

		if wasSymlink && fileType == detect.FileTypeSymlink {
			chain.AddLink(current, false, types.SymlinkLink())
			continue
		}

		log.Trace().Str("path", current).Msg("reached terminal node")
		chain.AddLink(current, true, types.TerminalLink(terminalKind(fileType)))
		break
	}

	log.Debug().Int("links", len(chain.Links)).Msg("resolution complete")
	return chain, nil
}

// readSymlink reads current as a link. If it is one, the target is
// resolved against current's parent and lexically cleaned; no syscall
// canonicalization happens, so the result can diverge from the OS's
// canonical path when intermediate components are themselves symlinks.
// The loop re-validates link-ness every iteration regardless.
func readSymlink(current string) (string, bool, error) {
	info, err := os.Lstat(current)
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrSymlinkResolution,
			"failed to resolve symlink at %s", current)
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return current, false, nil
	}

	target, err := os.Readlink(current)
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrSymlinkResolution,
			"failed to resolve symlink at %s", current)
	}

	resolved := resolveTarget(current, target)
	log.Debug().Str("link", current).Str("target", resolved).Msg("found symlink")
	return resolved, true, nil
}

// resolveTarget makes a symlink target absolute: absolute targets pass
// through, relative targets join against the link's parent directory
// and are cleaned lexically.
func resolveTarget(current, target string) string {
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}

	parent := filepath.Dir(current)
	return filepath.Join(parent, target)
}

// detectWrapper runs the detector set, in order, for file types that
// can be wrappers. The first detector to report a match wins.
func (r *Resolver) detectWrapper(current string, fileType detect.FileType) (string, types.LinkType, bool, error) {
	var linkType types.LinkType
	switch fileType {
	case detect.FileTypeShellScript:
		linkType = types.ScriptWrapperLink(types.ScriptShell)
	case detect.FileTypeElfBinary:
		linkType = types.BinaryWrapperLink()
	default:
		return "", types.LinkType{}, false, nil
	}

	for _, d := range r.detectors {
		target, ok, err := d.Detect(current)
		if err != nil {
			return "", types.LinkType{}, false, err
		}
		if ok {
			log.Debug().Str("detector", d.Name()).Str("target", target).Msg("detector matched")
			return target, linkType, true, nil
		}
	}

	return "", types.LinkType{}, false, nil
}

// terminalKind maps a classifier verdict to the terminal file kind.
func terminalKind(fileType detect.FileType) types.FileKind {
	switch fileType {
	case detect.FileTypeElfBinary, detect.FileTypeOtherBinary:
		return types.FileBinary
	default:
		return types.FileText
	}
}
