package detect

import (
	"bytes"
	"os"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/arthur-debert/symseek/pkg/errors"
)

// DefaultStoreRoot is the content-addressed store prefix detectors look
// for when no other root is configured.
const DefaultStoreRoot = "/nix/store"

// makeWrapperMarker is the generator marker left behind by Nix's
// makeBinaryWrapper; its argument names the wrapped executable.
const makeWrapperMarker = "makeCWrapper"

var markerPattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(makeWrapperMarker + `\s+'([^']+)'`)
})

var defaultStorePattern = sync.OnceValue(func() *regexp.Regexp {
	return storePattern(DefaultStoreRoot)
})

// storePattern matches store paths under root: /<root>/<hash>-<name>
// plus any further segments. The hash is lowercase alphanumeric.
func storePattern(root string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(root) + `/[a-z0-9]+-[^/\s]+(?:/[^/\s]+)*`)
}

// WrapperDetector looks for evidence that a classified file redirects
// to another path. Detectors are side-effect-free; absence of a pattern
// is "no match", never an error.
type WrapperDetector interface {
	Name() string

	// Detect returns the redirect target if the file at path is a
	// wrapper. The returned target is unresolved and unsanitized; the
	// resolver re-validates it on the next traversal step.
	Detect(path string) (target string, ok bool, err error)
}

// Detectors returns the detector set for the given store root in fixed
// precedence order: marker-based first, name-matching second. The first
// detector to return a match wins; this ordering is a semantic
// contract, not an implementation detail.
func Detectors(storeRoot string) []WrapperDetector {
	return []WrapperDetector{
		NewMakeWrapperDetector(storeRoot),
		NewProgramNameDetector(storeRoot),
	}
}

// readDetectable returns a textual view of the file content, honoring
// the detection size ceiling. Files above the ceiling yield ok=false
// without being read. Non-UTF-8 content is run through ExtractStrings.
func readDetectable(path string) (string, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrIO, "failed to read metadata for %s", path)
	}

	if info.Size() > maxDetectSize {
		log.Debug().Str("path", path).Int64("size", info.Size()).Msg("file too large for wrapper detection")
		return "", false, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrIO, "failed to read %s", path)
	}

	// NUL-bearing content is binary even when it happens to be valid
	// UTF-8; such files get the extracted-strings view instead
	if utf8.Valid(raw) && !bytes.ContainsRune(raw, 0) {
		return string(raw), true, nil
	}
	return ExtractStrings(raw), true, nil
}

// MakeWrapperDetector finds the makeCWrapper invocation that generated
// wrapper scripts and binaries carry, and extracts its quoted target.
type MakeWrapperDetector struct {
	storeRoot string
}

// NewMakeWrapperDetector creates a marker-based detector for the given
// store root; an empty root selects DefaultStoreRoot.
func NewMakeWrapperDetector(storeRoot string) *MakeWrapperDetector {
	if storeRoot == "" {
		storeRoot = DefaultStoreRoot
	}
	return &MakeWrapperDetector{storeRoot: storeRoot}
}

// Name identifies the detector in logs
func (d *MakeWrapperDetector) Name() string { return "make-wrapper" }

// Detect looks for `makeCWrapper '<path>'` in the file content. The
// quoted path is accepted only if it lies under the store root and is
// not the probed file itself. Generators may split the invocation
// across lines, so backslash-newline joins are removed before matching.
func (d *MakeWrapperDetector) Detect(path string) (string, bool, error) {
	content, ok, err := readDetectable(path)
	if err != nil || !ok {
		return "", false, err
	}

	if !strings.Contains(content, makeWrapperMarker) {
		return "", false, nil
	}

	normalized := strings.ReplaceAll(content, "\\\n", "")

	m := markerPattern().FindStringSubmatch(normalized)
	if m == nil {
		return "", false, nil
	}

	candidate := m[1]
	if !strings.Contains(candidate, d.storeRoot+"/") {
		log.Debug().Str("detector", d.Name()).Str("candidate", candidate).Msg("target is not a store path")
		return "", false, nil
	}
	if candidate == path {
		return "", false, nil
	}

	log.Debug().Str("detector", d.Name()).Str("target", candidate).Msg("found wrapper target")
	return candidate, true, nil
}

// ProgramNameDetector scans content for store paths whose base name
// matches the probed file's name. This is a heuristic, not a proof: the
// first acceptable candidate wins, and it may mis-pick when several
// same-named store paths precede the true target.
type ProgramNameDetector struct {
	storeRoot string
	guard     string
	pattern   *regexp.Regexp
}

// NewProgramNameDetector creates a name-matching detector for the given
// store root; an empty root selects DefaultStoreRoot.
func NewProgramNameDetector(storeRoot string) *ProgramNameDetector {
	if storeRoot == "" {
		return &ProgramNameDetector{
			storeRoot: DefaultStoreRoot,
			guard:     rootGuard(DefaultStoreRoot),
			pattern:   defaultStorePattern(),
		}
	}
	return &ProgramNameDetector{
		storeRoot: storeRoot,
		guard:     rootGuard(storeRoot),
		pattern:   storePattern(storeRoot),
	}
}

// rootGuard returns the first path component of the store root, used as
// a cheap substring guard before reading any content.
func rootGuard(root string) string {
	trimmed := strings.Trim(root, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}

// Name identifies the detector in logs
func (d *ProgramNameDetector) Name() string { return "program-name" }

// Detect scans the file content for store paths and accepts the first
// one whose normalized base name equals the probed file's, exists as a
// regular file, and is not the probed path itself.
func (d *ProgramNameDetector) Detect(path string) (string, bool, error) {
	if !strings.Contains(path, d.guard) {
		return "", false, nil
	}

	content, ok, err := readDetectable(path)
	if err != nil || !ok {
		return "", false, err
	}

	for _, match := range d.pattern.FindAllString(content, -1) {
		// Strings extracted from binaries may drag along stray quoting
		candidate := strings.TrimRight(match, `"'$`)

		if !ProgramsMatch(path, candidate) {
			continue
		}
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if candidate == path {
			continue
		}

		log.Debug().Str("detector", d.Name()).Str("target", candidate).Msg("found wrapper target")
		return candidate, true, nil
	}

	return "", false, nil
}
