// Package syntax provides the pattern catalog and full-text highlighter
// for Java source. Each category owns one recognition rule; the highlighter
// runs every rule over the raw snapshot in a fixed order and reports all
// matches. Overlap between categories is expected; resolving visual
// precedence is the rendering collaborator's job, not the engine's.
package syntax

import "github.com/craftide/textcore/pkg/text"

// Category identifies a class of lexical token recognized by the highlighter.
type Category int

// Categories in application order. The order is part of the contract:
// later categories may tag characters already tagged by earlier ones, and
// the rendering layer lets the later application win visually.
const (
	CategoryKeyword Category = iota
	CategoryString
	CategoryComment
	CategoryNumber
	CategoryAnnotation
	CategoryClassName
	CategoryOperator
)

// categoryNames maps categories to their stable names.
var categoryNames = map[Category]string{
	CategoryKeyword:    "keyword",
	CategoryString:     "string",
	CategoryComment:    "comment",
	CategoryNumber:     "number",
	CategoryAnnotation: "annotation",
	CategoryClassName:  "classname",
	CategoryOperator:   "operator",
}

// String returns the stable lowercase name of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Categories returns all categories in application order.
func Categories() []Category {
	return []Category{
		CategoryKeyword,
		CategoryString,
		CategoryComment,
		CategoryNumber,
		CategoryAnnotation,
		CategoryClassName,
		CategoryOperator,
	}
}

// ParseCategory resolves a category name to its Category.
func ParseCategory(name string) (Category, bool) {
	for cat, catName := range categoryNames {
		if catName == name {
			return cat, true
		}
	}
	return 0, false
}

// Tag is one highlighted region: a category applied to a span of the
// snapshot, with the span's endpoints resolved to line/column positions.
type Tag struct {
	Category Category
	Span     text.Span
	Start    text.Position
	End      text.Position
}
