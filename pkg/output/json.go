package output

import (
	"encoding/json"
	"fmt"

	"github.com/arthur-debert/symseek/pkg/errors"
	"github.com/arthur-debert/symseek/pkg/types"
)

// JSONChain is the documented machine-readable shape of a chain
type JSONChain struct {
	Origin string     `json:"origin"`
	Links  []JSONLink `json:"links"`
}

// JSONLink is one hop in the JSON shape
type JSONLink struct {
	Path        string `json:"path"`
	Type        string `json:"type"`
	WrapperKind string `json:"wrapper_kind,omitempty"`
	FileKind    string `json:"file_kind,omitempty"`
	IsFinal     bool   `json:"is_final,omitempty"`
}

// FromChain converts a chain to its JSON shape
func FromChain(chain *types.SymlinkChain) JSONChain {
	links := make([]JSONLink, 0, len(chain.Links))
	for _, node := range chain.Links {
		links = append(links, fromNode(node))
	}
	return JSONChain{
		Origin: formatPath(chain.Origin),
		Links:  links,
	}
}

// fromNode converts one hop to its JSON shape
func fromNode(node types.SymlinkNode) JSONLink {
	link := JSONLink{
		Path:    formatPath(node.Target),
		Type:    node.Type.Class.String(),
		IsFinal: node.IsFinal,
	}

	switch node.Type.Class {
	case types.ClassWrapper:
		link.WrapperKind = wrapperKindName(node.Type)
	case types.ClassTerminal:
		if node.Type.File == types.FileBinary {
			link.FileKind = "binary"
		} else {
			link.FileKind = "text"
		}
	}
	return link
}

// wrapperKindName serializes the wrapper kind
func wrapperKindName(t types.LinkType) string {
	if t.Wrapper == types.WrapperBinary {
		return "binary"
	}
	switch t.Script {
	case types.ScriptShell:
		return "shell_script"
	case types.ScriptPython:
		return "python_script"
	case types.ScriptPerl:
		return "perl_script"
	default:
		return "unknown_script"
	}
}

// ParseChain parses a single JSON chain object
func ParseChain(data []byte) (*JSONChain, error) {
	var chain JSONChain
	if err := json.Unmarshal(data, &chain); err != nil {
		return nil, errors.Wrap(err, errors.ErrJSONEncode, "failed to parse chain JSON")
	}
	return &chain, nil
}

// ParseChains parses a JSON array of chains
func ParseChains(data []byte) ([]JSONChain, error) {
	var chains []JSONChain
	if err := json.Unmarshal(data, &chains); err != nil {
		return nil, errors.Wrap(err, errors.ErrJSONEncode, "failed to parse chains JSON")
	}
	return chains, nil
}

// renderJSON writes one chain as an object, several as an array
func (r *Renderer) renderJSON(chains []*types.SymlinkChain) error {
	var payload interface{}
	if len(chains) == 1 {
		payload = FromChain(chains[0])
	} else {
		all := make([]JSONChain, 0, len(chains))
		for _, c := range chains {
			all = append(all, FromChain(c))
		}
		payload = all
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrJSONEncode, "JSON serialization failed")
	}

	_, err = fmt.Fprintln(r.writer, string(data))
	return err
}
