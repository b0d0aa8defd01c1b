// Package types defines the chain data model shared by the resolver,
// the locator and the output renderers.
package types

// LinkClass is the coarse classification of a single hop in a chain.
type LinkClass int

const (
	// ClassSymlink marks a hop that was reached by following a symlink
	ClassSymlink LinkClass = iota
	// ClassWrapper marks a hop that redirects via a generated wrapper
	ClassWrapper
	// ClassTerminal marks the final, non-redirecting hop
	ClassTerminal
)

// String returns the serialized name of the class
func (c LinkClass) String() string {
	switch c {
	case ClassSymlink:
		return "symlink"
	case ClassWrapper:
		return "wrapper"
	case ClassTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// WrapperKind distinguishes binary wrappers from generated scripts.
type WrapperKind int

const (
	WrapperBinary WrapperKind = iota
	WrapperText
)

// ScriptKind identifies the interpreter family of a text wrapper.
// Python and Perl are reserved for interpreter-specific wrapper
// conventions (virtualenv shims and the like) and are never produced
// by the current detectors.
type ScriptKind int

const (
	ScriptShell ScriptKind = iota
	ScriptPython
	ScriptPerl
	ScriptUnknown
)

// FileKind classifies a terminal artifact as seen from outside.
type FileKind int

const (
	FileBinary FileKind = iota
	FileText
)

// LinkType is the tagged variant attached to each hop. Exactly one of
// the secondary fields is meaningful, selected by Class: Wrapper and
// Script for ClassWrapper, File for ClassTerminal.
type LinkType struct {
	Class   LinkClass
	Wrapper WrapperKind
	Script  ScriptKind
	File    FileKind
}

// SymlinkLink returns the LinkType for a plain symlink hop
func SymlinkLink() LinkType {
	return LinkType{Class: ClassSymlink}
}

// BinaryWrapperLink returns the LinkType for a binary wrapper hop
func BinaryWrapperLink() LinkType {
	return LinkType{Class: ClassWrapper, Wrapper: WrapperBinary}
}

// ScriptWrapperLink returns the LinkType for a text wrapper hop
func ScriptWrapperLink(kind ScriptKind) LinkType {
	return LinkType{Class: ClassWrapper, Wrapper: WrapperText, Script: kind}
}

// TerminalLink returns the LinkType for the final hop
func TerminalLink(kind FileKind) LinkType {
	return LinkType{Class: ClassTerminal, File: kind}
}

// SymlinkNode is one hop in a resolution chain. Nodes are appended once
// per traversal step and never modified after insertion.
type SymlinkNode struct {
	// Target is the absolute path this hop points at
	Target string
	// IsFinal is true only on the last hop of a successful chain
	IsFinal bool
	// Type classifies the hop
	Type LinkType
	// Metadata is reserved; nothing populates it today
	Metadata map[string]string
}

// SymlinkChain is the ordered result of one resolve call. Origin is
// fixed at creation; Links are in traversal order. A chain is owned by
// the call that built it and is never mutated after being returned.
type SymlinkChain struct {
	Origin string
	Links  []SymlinkNode
}

// NewSymlinkChain creates an empty chain anchored at origin
func NewSymlinkChain(origin string) *SymlinkChain {
	return &SymlinkChain{Origin: origin}
}

// AddLink appends a hop to the chain
func (c *SymlinkChain) AddLink(target string, isFinal bool, linkType LinkType) {
	c.Links = append(c.Links, SymlinkNode{
		Target:  target,
		IsFinal: isFinal,
		Type:    linkType,
	})
}

// IsEmpty reports whether the chain has no hops
func (c *SymlinkChain) IsEmpty() bool {
	return len(c.Links) == 0
}

// LocationSource says where the locator found a target.
type LocationSource int

const (
	// SourceCurrentDirectory means the name resolved against the working directory
	SourceCurrentDirectory LocationSource = iota
	// SourcePathEnvironment means the name matched one or more PATH entries
	SourcePathEnvironment
)

// FileLocation is the locator's answer: where a name was found and
// every absolute path it matched, in search order.
type FileLocation struct {
	Source LocationSource
	Paths  []string
}
