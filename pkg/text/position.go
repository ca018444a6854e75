package text

// Position is a line/column coordinate derived from a byte offset.
// Line is 1-based; Column is a 0-based byte count from the line start.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if the position has a positive line and a
// non-negative column.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column >= 0
}

// Span is a half-open byte range [Start, End) over a snapshot.
type Span struct {
	// Start is the byte index where the span begins (inclusive).
	Start int

	// End is the byte index where the span ends (exclusive).
	End int
}

// Len returns the length of the span in bytes.
func (sp Span) Len() int {
	return sp.End - sp.Start
}

// IsEmpty returns true if the span has zero length.
func (sp Span) IsEmpty() bool {
	return sp.Start == sp.End
}

// Contains returns true if the given offset falls within the span.
func (sp Span) Contains(offset int) bool {
	return offset >= sp.Start && offset < sp.End
}

// Text returns the snapshot content covered by the span.
// Returns nil if the span does not fit inside the snapshot.
func (s *Snapshot) Text(sp Span) []byte {
	if sp.Start < 0 || sp.End > len(s.Content) || sp.Start > sp.End {
		return nil
	}
	return s.Content[sp.Start:sp.End]
}
