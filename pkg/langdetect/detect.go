// Package langdetect decides whether file content is Java source.
// It uses structural checks plus go-enry, so the CLI can skip files that
// only look like Java by extension.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const langJava = "Java"

// IsJava reports whether content looks like Java source.
//
// Files named *.java are judged by their content alone; trusting the
// extension would make the check a no-op exactly where it matters. Other
// filenames fall through to enry's classifier.
func IsJava(filename string, content []byte) bool {
	if len(bytes.TrimSpace(content)) == 0 {
		return false
	}

	if hasJavaStructure(content) {
		return true
	}

	if strings.EqualFold(filepath.Ext(filename), ".java") {
		return hasJavaTokens(content)
	}

	candidates := []string{"Java", "C", "C++", "C#", "JavaScript", "Kotlin", "Scala", "Groovy"}
	lang, safe := enry.GetLanguageByClassifier(content, candidates)
	return safe && lang == langJava
}

// hasJavaStructure checks for declarations that only Java spells this way.
func hasJavaStructure(content []byte) bool {
	if bytes.Contains(content, []byte("package ")) && bytes.Contains(content, []byte(";")) {
		if bytes.Contains(content, []byte("class ")) ||
			bytes.Contains(content, []byte("interface ")) ||
			bytes.Contains(content, []byte("enum ")) {
			return true
		}
	}

	if bytes.Contains(content, []byte("public static void main(String")) {
		return true
	}

	return bytes.Contains(content, []byte("import java.")) ||
		bytes.Contains(content, []byte("import javax."))
}

// hasJavaTokens is the weaker content check applied to *.java files:
// a statement terminator plus at least one declaration-ish token.
func hasJavaTokens(content []byte) bool {
	if !bytes.Contains(content, []byte(";")) {
		return false
	}

	for _, token := range []string{"class ", "interface ", "enum ", "void ", "import ", "{"} {
		if bytes.Contains(content, []byte(token)) {
			return true
		}
	}
	return false
}
