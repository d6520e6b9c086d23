package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/radixlang/radix/internal/source"
)

func TestPosition(t *testing.T) {
	f := source.NewFile(1, "test.rdx", "una\nduo\ntres\n")
	cases := []struct {
		offset, line, col int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{4, 2, 1},
		{8, 3, 1},
		{11, 3, 4},
	}
	for _, tc := range cases {
		pos := f.Position(tc.offset)
		assert.Equal(t, tc.line, pos.Line, "offset %d line", tc.offset)
		assert.Equal(t, tc.col, pos.Column, "offset %d column", tc.offset)
	}
}

func TestLineExtraction(t *testing.T) {
	f := source.NewFile(1, "test.rdx", "una\nduo\ntres")
	assert.Equal(t, "una", f.Line(1))
	assert.Equal(t, "duo", f.Line(2))
	assert.Equal(t, "tres", f.Line(3))
}

func TestSlice(t *testing.T) {
	f := source.NewFile(1, "test.rdx", "abcdef")
	assert.Equal(t, "cde", f.Slice(source.Span{File: 1, Start: 2, End: 5}))
}

func TestMerge(t *testing.T) {
	a := source.Span{File: 1, Start: 4, End: 9}
	b := source.Span{File: 1, Start: 2, End: 6}
	m := source.Merge(a, b)
	assert.Equal(t, 2, m.Start)
	assert.Equal(t, 9, m.End)
}

func TestContains(t *testing.T) {
	outer := source.Span{File: 1, Start: 0, End: 10}
	assert.True(t, outer.Contains(source.Span{File: 1, Start: 3, End: 7}))
	assert.False(t, outer.Contains(source.Span{File: 1, Start: 3, End: 12}))
}

func TestMapAssignsDistinctIDs(t *testing.T) {
	m := source.NewMap()
	a := m.AddFile("a.rdx", "unus")
	b := m.AddFile("b.rdx", "duo")
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a, m.File(a.ID))
}
