// Package bracket finds the matching partner of a bracket at the editor
// cursor via depth counting. It operates on raw characters: brackets inside
// string or comment regions are counted like any other. That is a known
// limitation of the scan, shared with the editor it serves: excluding them
// would require the highlighter's view of the text, which this component
// deliberately does not take.
package bracket

import "github.com/craftide/textcore/pkg/text"

// Kind identifies a bracket family.
type Kind byte

// Bracket kinds.
const (
	KindParen  Kind = '('
	KindSquare Kind = '['
	KindBrace  Kind = '{'
)

// Pair relates an opening bracket to its closing partner.
type Pair struct {
	// Opener is the byte offset of the opening bracket.
	Opener int

	// Closer is the byte offset of the closing bracket.
	Closer int

	// Kind is the bracket family, named by its opening character.
	Kind Kind
}

var opensToCloses = map[byte]byte{'(': ')', '[': ']', '{': '}'}
var closesToOpens = map[byte]byte{')': '(', ']': '[', '}': '{'}

// Match finds the bracket pair at cursor, if any.
//
// If the character at cursor is an opening bracket the scan runs forward;
// if the character immediately before cursor is a closing bracket the scan
// runs backward from that character. Otherwise there is nothing to match.
// An unbalanced scan that runs off either end of the snapshot yields
// ok=false, which is a normal outcome, not an error.
func Match(snapshot *text.Snapshot, cursor int) (Pair, bool) {
	if snapshot == nil {
		return Pair{}, false
	}
	content := snapshot.Content

	if cursor >= 0 && cursor < len(content) {
		if closer, ok := opensToCloses[content[cursor]]; ok {
			return scanForward(content, cursor, content[cursor], closer)
		}
	}

	if cursor-1 >= 0 && cursor-1 < len(content) {
		if opener, ok := closesToOpens[content[cursor-1]]; ok {
			return scanBackward(content, cursor-1, content[cursor-1], opener)
		}
	}

	return Pair{}, false
}

// Balanced reports whether every bracket in the snapshot closes in order:
// no closer without a matching opener, nothing left open at end of text.
// The same raw-character caveat as Match applies.
func Balanced(snapshot *text.Snapshot) bool {
	if snapshot == nil {
		return true
	}

	var stack []byte
	for _, b := range snapshot.Content {
		if _, ok := opensToCloses[b]; ok {
			stack = append(stack, b)
			continue
		}
		if opener, ok := closesToOpens[b]; ok {
			if len(stack) == 0 || stack[len(stack)-1] != opener {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) == 0
}

// scanForward walks right from an opening bracket, depth starting at 1.
func scanForward(content []byte, start int, opener, closer byte) (Pair, bool) {
	depth := 1
	for idx := start + 1; idx < len(content); idx++ {
		switch content[idx] {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return Pair{Opener: start, Closer: idx, Kind: Kind(opener)}, true
			}
		}
	}
	return Pair{}, false
}

// scanBackward walks left from a closing bracket, depth starting at 1.
func scanBackward(content []byte, start int, closer, opener byte) (Pair, bool) {
	depth := 1
	for idx := start - 1; idx >= 0; idx-- {
		switch content[idx] {
		case closer:
			depth++
		case opener:
			depth--
			if depth == 0 {
				return Pair{Opener: idx, Closer: start, Kind: Kind(opener)}, true
			}
		}
	}
	return Pair{}, false
}
