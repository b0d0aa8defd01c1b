package detect

import (
	"path/filepath"
	"strings"
)

const (
	wrappedSuffix   = "-wrapped"
	unwrappedSuffix = "-unwrapped"
)

// NormalizeProgramName strips the decorations Nix wrappers add to a
// program name: one leading dot, then a "-unwrapped" suffix if present,
// otherwise a "-wrapped" suffix. The two suffixes cannot both apply to
// one name, so only the first match is stripped.
func NormalizeProgramName(name string) string {
	name = strings.TrimPrefix(name, ".")

	if strings.HasSuffix(name, unwrappedSuffix) {
		return name[:len(name)-len(unwrappedSuffix)]
	}
	if strings.HasSuffix(name, wrappedSuffix) {
		return name[:len(name)-len(wrappedSuffix)]
	}
	return name
}

// ProgramsMatch reports whether two paths refer to the same program
// after normalizing their base names.
func ProgramsMatch(current, candidate string) bool {
	currentName := NormalizeProgramName(filepath.Base(current))
	candidateName := NormalizeProgramName(filepath.Base(candidate))

	return currentName != "" && currentName == candidateName
}
