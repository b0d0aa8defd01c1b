// pkg/detect/classify_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (t.TempDir)
// PURPOSE: Test file classification from metadata and content prefix

package detect_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/symseek/pkg/detect"
	"github.com/arthur-debert/symseek/pkg/errors"
	"github.com/arthur-debert/symseek/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyElfBinary(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateELFBinary(t, dir, "binary")

	fileType, err := detect.Classify(path)
	require.NoError(t, err)
	assert.Equal(t, detect.FileTypeElfBinary, fileType)
}

func TestClassifyElfMagicWinsOverContent(t *testing.T) {
	// Anything after the magic is irrelevant, even a shebang
	dir := t.TempDir()
	content := append(append([]byte{}, testutil.ELFMagic[:4]...), []byte("#!/bin/bash\n")...)
	path := testutil.CreateExecutable(t, dir, "odd", content)

	fileType, err := detect.Classify(path)
	require.NoError(t, err)
	assert.Equal(t, detect.FileTypeElfBinary, fileType)
}

func TestClassifyShellScriptVariants(t *testing.T) {
	shebangs := []string{
		"#!/bin/sh",
		"#!/bin/bash",
		"#!/usr/bin/bash",
		"#!/usr/bin/env bash",
		"#!/bin/zsh",
	}

	dir := t.TempDir()
	for _, shebang := range shebangs {
		t.Run(shebang, func(t *testing.T) {
			path := testutil.CreateExecutable(t, dir, "script", []byte(shebang+"\necho test\n"))

			fileType, err := detect.Classify(path)
			require.NoError(t, err)
			assert.Equal(t, detect.FileTypeShellScript, fileType)
		})
	}
}

func TestClassifyScripts(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    detect.FileType
	}{
		{"python", "#!/usr/bin/env python3\nprint('hello')\n", detect.FileTypePythonScript},
		{"perl", "#!/usr/bin/perl\nprint \"hello\\n\";\n", detect.FileTypePerlScript},
		{"ruby is other script", "#!/usr/bin/ruby\nputs 'hello'\n", detect.FileTypeOtherScript},
		{"shebang without newline", "#!/usr/bin/python", detect.FileTypePythonScript},
		{"case insensitive match", "#!/USR/BIN/PYTHON3\n", detect.FileTypePythonScript},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.CreateExecutable(t, dir, "script", []byte(tt.content))

			fileType, err := detect.Classify(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fileType)
		})
	}
}

func TestClassifyPlainText(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateExecutable(t, dir, "readme.txt", []byte("plain text\nwith lines\n"))

	fileType, err := detect.Classify(path)
	require.NoError(t, err)
	assert.Equal(t, detect.FileTypeOtherText, fileType)
}

func TestClassifyOtherBinary(t *testing.T) {
	dir := t.TempDir()
	// PNG magic: not ELF, not a shebang, not valid UTF-8
	path := testutil.CreateExecutable(t, dir, "image.png", []byte{0x89, 0x50, 0x4e, 0x47})

	fileType, err := detect.Classify(path)
	require.NoError(t, err)
	assert.Equal(t, detect.FileTypeOtherBinary, fileType)
}

func TestClassifyEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateExecutable(t, dir, "empty", nil)

	fileType, err := detect.Classify(path)
	require.NoError(t, err)
	assert.Equal(t, detect.FileTypeOtherText, fileType)
}

func TestClassifySymlink(t *testing.T) {
	dir := t.TempDir()
	target := testutil.CreateExecutable(t, dir, "target", []byte("content"))
	link := testutil.Symlink(t, target, filepath.Join(dir, "link"))

	fileType, err := detect.Classify(link)
	require.NoError(t, err)
	assert.Equal(t, detect.FileTypeSymlink, fileType)
}

func TestClassifyLargePrefixOnly(t *testing.T) {
	// Only the first 512 bytes matter; a shebang past that is invisible
	dir := t.TempDir()
	content := append(bytes.Repeat([]byte{'a'}, 600), []byte("#!/bin/bash\n")...)
	path := testutil.CreateExecutable(t, dir, "big", content)

	fileType, err := detect.Classify(path)
	require.NoError(t, err)
	assert.Equal(t, detect.FileTypeOtherText, fileType)
}

func TestClassifyNonexistentFile(t *testing.T) {
	_, err := detect.Classify(filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
}
