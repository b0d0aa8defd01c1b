// Package detect implements the file classifier and the wrapper
// detector set used by the resolver. Classification looks at symlink
// metadata and a small content prefix; wrapper detection scans file
// content for Nix-style redirection patterns.
package detect

import (
	"bytes"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/symseek/pkg/errors"
	"github.com/arthur-debert/symseek/pkg/logging"
)

const (
	// classifyBufferSize is the fixed content prefix read per classification
	classifyBufferSize = 512

	// maxDetectSize is the content-read ceiling for wrapper detection;
	// larger files are reported as "no match" without being read
	maxDetectSize = 1 << 20
)

var (
	elfMagic      = []byte{0x7f, 'E', 'L', 'F'}
	shebangPrefix = []byte("#!")
)

var log = logging.GetLogger("detect")

// FileType is the classifier's verdict on a path.
type FileType int

const (
	FileTypeSymlink FileType = iota
	FileTypeShellScript
	FileTypePythonScript
	FileTypePerlScript
	FileTypeOtherScript
	FileTypeElfBinary
	FileTypeOtherBinary
	FileTypeOtherText
)

// String returns a human-readable name for the file type
func (t FileType) String() string {
	switch t {
	case FileTypeSymlink:
		return "symlink"
	case FileTypeShellScript:
		return "shell script"
	case FileTypePythonScript:
		return "python script"
	case FileTypePerlScript:
		return "perl script"
	case FileTypeOtherScript:
		return "script"
	case FileTypeElfBinary:
		return "ELF binary"
	case FileTypeOtherBinary:
		return "binary"
	case FileTypeOtherText:
		return "text"
	default:
		return "unknown"
	}
}

// Classify determines the type of a file from its metadata and a
// 512-byte content prefix. Symlinks are reported from metadata alone,
// without following or reading the target. Invalid UTF-8 is never an
// error here, only a classification outcome.
func Classify(path string) (FileType, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrIO, "failed to read metadata for %s", path)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		log.Trace().Str("path", path).Msg("classified as symlink")
		return FileTypeSymlink, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrIO, "failed to read %s", path)
	}
	defer f.Close()

	buf := make([]byte, classifyBufferSize)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return 0, errors.Wrapf(err, errors.ErrIO, "failed to read %s", path)
	}
	buf = buf[:n]

	if bytes.HasPrefix(buf, elfMagic) {
		return FileTypeElfBinary, nil
	}

	if bytes.HasPrefix(buf, shebangPrefix) {
		if t, ok := classifyShebang(buf); ok {
			log.Trace().Str("path", path).Stringer("type", t).Msg("classified by shebang")
			return t, nil
		}
	}

	if utf8.Valid(buf) {
		return FileTypeOtherText, nil
	}
	return FileTypeOtherBinary, nil
}

// classifyShebang inspects the first line of a buffer known to start
// with "#!". A shebang that is not valid UTF-8 falls through to the
// plain text/binary check.
func classifyShebang(buf []byte) (FileType, bool) {
	end := bytes.IndexByte(buf, '\n')
	if end < 0 {
		end = len(buf)
	}
	line := buf[len(shebangPrefix):end]

	if !utf8.Valid(line) {
		return 0, false
	}

	shebang := strings.ToLower(string(line))
	switch {
	case strings.Contains(shebang, "bash") || strings.Contains(shebang, "sh"):
		return FileTypeShellScript, true
	case strings.Contains(shebang, "python"):
		return FileTypePythonScript, true
	case strings.Contains(shebang, "perl"):
		return FileTypePerlScript, true
	default:
		return FileTypeOtherScript, true
	}
}
