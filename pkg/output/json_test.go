// pkg/output/json_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test the documented JSON shape and its round trip

package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/symseek/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromChain(t *testing.T) {
	jc := FromChain(sampleChain())

	assert.Equal(t, "/usr/bin/nvim", jc.Origin)
	require.Len(t, jc.Links, 3)

	assert.Equal(t, "symlink", jc.Links[0].Type)
	assert.Empty(t, jc.Links[0].WrapperKind)
	assert.Empty(t, jc.Links[0].FileKind)
	assert.False(t, jc.Links[0].IsFinal)

	assert.Equal(t, "wrapper", jc.Links[1].Type)
	assert.Equal(t, "shell_script", jc.Links[1].WrapperKind)

	assert.Equal(t, "terminal", jc.Links[2].Type)
	assert.Equal(t, "binary", jc.Links[2].FileKind)
	assert.True(t, jc.Links[2].IsFinal)
}

func TestFromChainBinaryWrapper(t *testing.T) {
	chain := types.NewSymlinkChain("/usr/bin/qs")
	chain.AddLink("/usr/bin/qs", false, types.BinaryWrapperLink())
	chain.AddLink("/nix/store/abc-quickshell/bin/qs", true, types.TerminalLink(types.FileBinary))

	jc := FromChain(chain)
	assert.Equal(t, "binary", jc.Links[0].WrapperKind)
	assert.Empty(t, jc.Links[0].FileKind)
}

func TestJSONRoundTrip(t *testing.T) {
	original := FromChain(sampleChain())

	data, err := json.Marshal(original)
	require.NoError(t, err)

	parsed, err := ParseChain(data)
	require.NoError(t, err)

	require.Len(t, parsed.Links, len(original.Links))
	assert.Equal(t, original.Origin, parsed.Origin)
	for i := range original.Links {
		assert.Equal(t, original.Links[i].Path, parsed.Links[i].Path)
		assert.Equal(t, original.Links[i].Type, parsed.Links[i].Type)
		assert.Equal(t, original.Links[i].IsFinal, parsed.Links[i].IsFinal)
	}
}

func TestRenderJSONSingleChainIsObject(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatJSON)

	err := r.Render([]*types.SymlinkChain{sampleChain()}, types.SourceCurrentDirectory)
	require.NoError(t, err)

	parsed, err := ParseChain(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/nvim", parsed.Origin)
	assert.Len(t, parsed.Links, 3)
}

func TestRenderJSONMultipleChainsIsArray(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatJSON)

	err := r.Render([]*types.SymlinkChain{sampleChain(), sampleChain()}, types.SourcePathEnvironment)
	require.NoError(t, err)

	parsed, err := ParseChains(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, parsed, 2)
	// JSON output carries no PATH header
	assert.False(t, bytes.Contains(buf.Bytes(), []byte("matches in PATH")))
}

func TestJSONOmitsEmptyKinds(t *testing.T) {
	chain := types.NewSymlinkChain("/usr/bin/x")
	chain.AddLink("/usr/bin/y", false, types.SymlinkLink())

	data, err := json.Marshal(FromChain(chain))
	require.NoError(t, err)

	assert.NotContains(t, string(data), "wrapper_kind")
	assert.NotContains(t, string(data), "file_kind")
	assert.NotContains(t, string(data), "is_final")
}
