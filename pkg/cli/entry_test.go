package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radixlang/radix/internal/source"
)

func TestKindLabelCap(t *testing.T) {
	assert.Equal(t, "Integer", kindLabel("Integer"))
	long := strings.Repeat("x", 80)
	capped := kindLabel(long)
	assert.Len(t, capped, 60)
	assert.True(t, strings.HasSuffix(capped, "..."))
}

func TestJSONSpanIsTwoElementArray(t *testing.T) {
	data, err := json.Marshal(jsonSpan(source.Span{File: 1, Start: 4, End: 9}))
	require.NoError(t, err)
	assert.Equal(t, "[4,9]", string(data))
}

func TestNewContextWiresSession(t *testing.T) {
	ctx := newContext("main.rdx", "fixum x = 1")
	require.NotNil(t, ctx.Session)
	assert.Equal(t, "main.rdx", ctx.File.Path)
	assert.Equal(t, "fixum x = 1", ctx.File.Text)
}

func TestBareInvocationExitsNonzero(t *testing.T) {
	// usage has already been written to stderr by the time runRoot
	// returns; the sentinel maps to exit code 1 without a second message
	err := runRoot(cmdRoot, nil)
	assert.ErrorIs(t, err, errExit)
}
