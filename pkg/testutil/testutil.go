// Package testutil provides filesystem fixtures for symseek tests:
// executables, fake ELF blobs, generated-wrapper lookalikes and symlink
// chains, all rooted in a test-owned temp directory.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ELFMagic is a minimal ELF header prefix (magic plus class/data/version)
var ELFMagic = []byte{0x7f, 'E', 'L', 'F', 0x02, 0x01, 0x01, 0x00}

// Common shebang lines
const (
	BashShebang   = "#!/bin/bash\n"
	PythonShebang = "#!/usr/bin/python3\n"
	PerlShebang   = "#!/usr/bin/perl\n"
)

// CreateExecutable writes an executable file and returns its path
func CreateExecutable(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, content, 0755))
	return path
}

// CreateShellWrapper writes a shell script that execs another program
func CreateShellWrapper(t *testing.T, dir, name, targetPath string) string {
	t.Helper()

	script := "#!/bin/bash\nexec " + targetPath + " \"$@\"\n"
	return CreateExecutable(t, dir, name, []byte(script))
}

// CreateELFBinary writes a file with a bare ELF header
func CreateELFBinary(t *testing.T, dir, name string) string {
	t.Helper()

	return CreateExecutable(t, dir, name, ELFMagic)
}

// CreateBinaryWrapper writes an ELF-headed file with a NUL-delimited
// target path embedded in its body, the shape a compiled wrapper has
func CreateBinaryWrapper(t *testing.T, dir, name, targetPath string) string {
	t.Helper()

	content := append([]byte{}, ELFMagic...)
	content = append(content, 0, 0, 0, 0)
	content = append(content, []byte(targetPath)...)
	content = append(content, 0)
	return CreateExecutable(t, dir, name, content)
}

// CreateSymlinkChain creates links names[0] -> names[1] -> ... -> finalTarget
// and returns the path of the first link
func CreateSymlinkChain(t *testing.T, dir string, names []string, finalTarget string) string {
	t.Helper()

	previous := finalTarget
	for i := len(names) - 1; i >= 0; i-- {
		link := filepath.Join(dir, names[i])
		require.NoError(t, os.Symlink(previous, link))
		previous = link
	}
	return previous
}

// Symlink creates a single symlink and returns its path
func Symlink(t *testing.T, target, linkPath string) string {
	t.Helper()

	require.NoError(t, os.Symlink(target, linkPath))
	return linkPath
}
