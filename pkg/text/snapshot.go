// Package text provides the immutable text snapshot and position index
// shared by every analyzer in textcore. A Snapshot is a point-in-time view
// of editor content: analyzers read it, none of them mutate it, and any
// edit produces a new Snapshot.
package text

import "sort"

// Snapshot is an immutable view of document content at a point in time.
// It carries a prebuilt line-start index so that repeated offset/position
// conversions during one analysis pass never rescan the content.
type Snapshot struct {
	// Path is the originating file path (may be empty for buffer content).
	Path string

	// Content is the full document text.
	Content []byte

	// Lines contains metadata for each line, built once at construction.
	Lines []LineInfo
}

// LineInfo holds the byte extents of a single line.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of content).
	EndOffset int
}

// NewSnapshot builds a Snapshot from content, constructing the line index.
func NewSnapshot(path string, content []byte) *Snapshot {
	return &Snapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}

// BuildLines constructs line metadata from content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			// Check for CRLF.
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Last line may not have a trailing newline.
	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// Len returns the content length in bytes.
func (s *Snapshot) Len() int {
	return len(s.Content)
}

// LineCount returns the number of lines in the snapshot.
func (s *Snapshot) LineCount() int {
	return len(s.Lines)
}

// LineContent returns the content of a 1-based line number, excluding the
// newline. Returns nil if the line number is out of range.
func (s *Snapshot) LineContent(line int) []byte {
	if line < 1 || line > len(s.Lines) {
		return nil
	}

	info := s.Lines[line-1]
	return s.Content[info.StartOffset:info.NewlineStart]
}

// PositionAt converts a byte offset to a Position.
// Valid offsets run from 0 to Len() inclusive; Len() maps to the position
// just past the last character. Returns ok=false when the offset is out of
// range; callers skip the affected tag or match rather than fail.
func (s *Snapshot) PositionAt(offset int) (Position, bool) {
	if offset < 0 || offset > len(s.Content) || len(s.Lines) == 0 {
		return Position{}, false
	}

	if offset == len(s.Content) {
		last := s.Lines[len(s.Lines)-1]
		return Position{Line: len(s.Lines), Column: offset - last.StartOffset}, true
	}

	// Binary search the line table for the line containing the offset.
	lineIdx := sort.Search(len(s.Lines), func(i int) bool {
		return s.Lines[i].EndOffset > offset
	})
	if lineIdx >= len(s.Lines) {
		lineIdx = len(s.Lines) - 1
	}

	info := s.Lines[lineIdx]
	if offset < info.StartOffset {
		return Position{}, false
	}

	return Position{Line: lineIdx + 1, Column: offset - info.StartOffset}, true
}

// OffsetAt converts a Position back to a byte offset.
// The column is clamped to the line's extent (newline included, so cursor
// positions on the line terminator survive the round trip). Returns ok=false
// when the line is out of range or the column is negative.
func (s *Snapshot) OffsetAt(pos Position) (int, bool) {
	if pos.Line < 1 || pos.Line > len(s.Lines) || pos.Column < 0 {
		return 0, false
	}

	info := s.Lines[pos.Line-1]

	col := pos.Column
	if extent := info.EndOffset - info.StartOffset; col > extent {
		col = extent
	}

	return info.StartOffset + col, true
}
