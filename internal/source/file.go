package source

import (
	"sort"
	"sync"
)

// File wraps a single source file's bytes together with a lazily built
// line index, grounded on the original compiler's driver/source.rs
// SourceFile abstraction (see SPEC_FULL.md, supplemented feature #3).
type File struct {
	ID   FileID
	Path string
	Text string

	once      sync.Once
	lineStart []int // byte offset of the first byte of each line
}

// NewFile constructs a File. Path may be "-" or "" for stdin/anonymous input.
func NewFile(id FileID, path, text string) *File {
	return &File{ID: id, Path: path, Text: text}
}

func (f *File) buildIndex() {
	f.lineStart = []int{0}
	for i := 0; i < len(f.Text); i++ {
		if f.Text[i] == '\n' {
			f.lineStart = append(f.lineStart, i+1)
		}
	}
}

// Position converts a byte offset into a 1-based (line, column) pair.
func (f *File) Position(offset int) Pos {
	f.once.Do(f.buildIndex)
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.Text) {
		offset = len(f.Text)
	}
	line := sort.Search(len(f.lineStart), func(i int) bool { return f.lineStart[i] > offset }) - 1
	if line < 0 {
		line = 0
	}
	col := offset - f.lineStart[line] + 1
	return Pos{Line: line + 1, Column: col}
}

// Line returns the raw text of the given 1-based line number, without its
// trailing newline. Used by diagnostics rendering callers (external to the
// core, per spec.md §1) to show source context.
func (f *File) Line(n int) string {
	f.once.Do(f.buildIndex)
	if n < 1 || n > len(f.lineStart) {
		return ""
	}
	start := f.lineStart[n-1]
	end := len(f.Text)
	if n < len(f.lineStart) {
		end = f.lineStart[n] - 1
	}
	if end > 0 && end <= len(f.Text) && f.Text[end-1] == '\r' {
		end--
	}
	if start > end {
		return ""
	}
	return f.Text[start:end]
}

// Slice returns the substring covered by span.
func (f *File) Slice(span Span) string {
	if span.Start < 0 || span.End > len(f.Text) || span.Start > span.End {
		return ""
	}
	return f.Text[span.Start:span.End]
}

// Map owns every File referenced within a single compile; it hands out
// stable FileIDs so Span values remain meaningful across phases.
type Map struct {
	files []*File
}

// NewMap creates an empty source map.
func NewMap() *Map {
	return &Map{}
}

// AddFile registers text under path and returns the resulting File.
func (m *Map) AddFile(path, text string) *File {
	f := NewFile(FileID(len(m.files)), path, text)
	m.files = append(m.files, f)
	return f
}

// File looks up a previously added file by ID.
func (m *Map) File(id FileID) *File {
	if int(id) < 0 || int(id) >= len(m.files) {
		return nil
	}
	return m.files[id]
}
