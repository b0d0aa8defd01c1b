package output

import (
	"fmt"
	"io"
	"path/filepath"
	"unicode/utf8"

	"github.com/arthur-debert/symseek/pkg/logging"
	"github.com/arthur-debert/symseek/pkg/style"
	"github.com/arthur-debert/symseek/pkg/types"
)

var log = logging.GetLogger("output")

// invalidPathPlaceholder substitutes for paths that are not valid
// UTF-8 instead of raising an encoding error
const invalidPathPlaceholder = "<invalid UTF-8>"

// TreeChars holds the characters used to draw the chain tree
type TreeChars struct {
	Branch    string
	Last      string
	Connector string
}

// DefaultTreeChars returns the box-drawing set used by the tree renderer
func DefaultTreeChars() TreeChars {
	return TreeChars{Branch: "├", Last: "└", Connector: "─"}
}

// Renderer writes resolution chains in a fixed format.
type Renderer struct {
	writer io.Writer
	format Format
	chars  TreeChars
}

// NewRenderer creates a renderer for the given concrete format.
// FormatAuto must be resolved by the caller first.
func NewRenderer(w io.Writer, format Format) *Renderer {
	return &Renderer{
		writer: w,
		format: format,
		chars:  DefaultTreeChars(),
	}
}

// Render writes all chains. PATH-sourced results get a match-count
// header and blank-line separators; JSON output is a single object for
// one chain and an array otherwise.
func (r *Renderer) Render(chains []*types.SymlinkChain, source types.LocationSource) error {
	log.Debug().Int("chains", len(chains)).Stringer("format", r.format).Msg("rendering")

	if r.format == FormatJSON {
		return r.renderJSON(chains)
	}

	if source == types.SourcePathEnvironment {
		header := fmt.Sprintf("Found %d matches in PATH", len(chains))
		if r.format == FormatTerminal {
			header = style.Header(header)
		}
		fmt.Fprintln(r.writer, header)
		fmt.Fprintln(r.writer)
	}

	for i, chain := range chains {
		r.renderTree(chain)
		if i < len(chains)-1 {
			fmt.Fprintln(r.writer)
		}
	}
	return nil
}

// renderTree writes one chain: the origin line, then one branch per hop
func (r *Renderer) renderTree(chain *types.SymlinkChain) {
	styled := r.format == FormatTerminal

	origin := formatPath(chain.Origin)
	if styled {
		origin = Style("origin").Render(origin)
	}
	fmt.Fprintln(r.writer, origin)

	for i, node := range chain.Links {
		prefix := r.chars.Branch
		if i == len(chain.Links)-1 {
			prefix = r.chars.Last
		}

		line := formatPath(node.Target)
		annotation := nodeAnnotation(node)
		if styled {
			line = Style(styleFor(node)).Render(line)
			annotation = Style("muted").Render(annotation)
		}
		fmt.Fprintf(r.writer, "%s%s %s  %s\n", prefix, r.chars.Connector, line, annotation)
	}
}

// styleFor picks the semantic style name for a hop
func styleFor(node types.SymlinkNode) string {
	switch node.Type.Class {
	case types.ClassSymlink:
		return "symlink"
	case types.ClassWrapper:
		return "wrapper"
	default:
		return "terminal"
	}
}

// nodeAnnotation describes a hop's kind in parentheses
func nodeAnnotation(node types.SymlinkNode) string {
	switch node.Type.Class {
	case types.ClassSymlink:
		return "(symlink)"
	case types.ClassWrapper:
		if node.Type.Wrapper == types.WrapperBinary {
			return "(binary wrapper)"
		}
		return "(" + scriptKindName(node.Type.Script) + " wrapper)"
	case types.ClassTerminal:
		if node.Type.File == types.FileBinary {
			return "(binary)"
		}
		return "(text)"
	default:
		return ""
	}
}

func scriptKindName(kind types.ScriptKind) string {
	switch kind {
	case types.ScriptShell:
		return "shell"
	case types.ScriptPython:
		return "python"
	case types.ScriptPerl:
		return "perl"
	default:
		return "script"
	}
}

// formatPath cleans a path lexically and substitutes a placeholder for
// non-UTF-8 paths rather than erroring
func formatPath(path string) string {
	if !utf8.ValidString(path) {
		return invalidPathPlaceholder
	}
	return filepath.Clean(path)
}
