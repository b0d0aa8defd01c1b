package detect

import "strings"

const (
	printableASCIIMin = 32
	printableASCIIMax = 126
)

// ExtractStrings pulls printable-ASCII runs out of raw bytes, giving
// the detectors a textual view of binary content. A NUL flushes the
// current run followed by a newline; any other non-printable byte
// discards the run without emitting it.
func ExtractStrings(data []byte) string {
	var out strings.Builder
	var run []byte

	for _, b := range data {
		switch {
		case b == 0:
			if len(run) > 0 {
				out.Write(run)
				out.WriteByte('\n')
				run = run[:0]
			}
		case b >= printableASCIIMin && b <= printableASCIIMax:
			run = append(run, b)
		default:
			run = run[:0]
		}
	}

	return out.String()
}
