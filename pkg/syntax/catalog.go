package syntax

import "regexp"

// JavaKeywords is the closed set of Java reserved words recognized by the
// keyword rule. The literals true, false, and null are included because the
// editor styles them as keywords.
var JavaKeywords = []string{
	"abstract", "assert", "boolean", "break", "byte", "case", "catch", "char",
	"class", "const", "continue", "default", "do", "double", "else", "enum",
	"extends", "final", "finally", "float", "for", "goto", "if", "implements",
	"import", "instanceof", "int", "interface", "long", "native", "new",
	"package", "private", "protected", "public", "return", "short", "static",
	"strictfp", "super", "switch", "synchronized", "this", "throw", "throws",
	"transient", "try", "void", "volatile", "while", "true", "false", "null",
}

// OperatorChars is the fixed set of single-character operators.
const OperatorChars = `+-*/%=!<>&|^~`

// Number tokens: digits, an optional decimal part, and an optional
// numeric-literal suffix letter.
var numberPattern = regexp.MustCompile(`\b\d+\.?\d*[fFdDlL]?\b`)

// Annotations: @ followed by identifier characters.
var annotationPattern = regexp.MustCompile(`@\w+`)

// Class names: identifier tokens beginning with an uppercase letter.
var classNamePattern = regexp.MustCompile(`\b[A-Z][a-zA-Z0-9_]*\b`)

// Entry pairs a category with its recognition rule.
type Entry struct {
	Category Category
	Matcher  Matcher
}

// Catalog is an ordered set of category rules. Order is the application
// order used by the highlighter.
type Catalog []Entry

// DefaultCatalog returns the Java catalog in its fixed application order:
// keyword, string, comment, number, annotation, classname, operator.
func DefaultCatalog() Catalog {
	return Catalog{
		{CategoryKeyword, NewWordSetMatcher(JavaKeywords)},
		{CategoryString, NewStringMatcher()},
		{CategoryComment, NewCommentMatcher()},
		{CategoryNumber, NewRegexpMatcher(numberPattern)},
		{CategoryAnnotation, NewRegexpMatcher(annotationPattern)},
		{CategoryClassName, NewRegexpMatcher(classNamePattern)},
		{CategoryOperator, NewCharSetMatcher(OperatorChars)},
	}
}

// Filter returns a catalog containing only the enabled categories, in the
// original application order. A nil or empty enabled set keeps everything.
func (c Catalog) Filter(enabled []Category) Catalog {
	if len(enabled) == 0 {
		return c
	}

	keep := make(map[Category]struct{}, len(enabled))
	for _, cat := range enabled {
		keep[cat] = struct{}{}
	}

	out := make(Catalog, 0, len(c))
	for _, entry := range c {
		if _, ok := keep[entry.Category]; ok {
			out = append(out, entry)
		}
	}
	return out
}
