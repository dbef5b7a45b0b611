// Package parser extracts a structured ParsedResume from raw resume text
// using a fixed, deterministic heuristic pipeline. Extraction is best-effort:
// a heuristic that finds nothing yields a nil field or empty collection,
// never an error.
package parser

import "strings"

// notFound is the sentinel returned by the section locator when no keyword
// occurs. Callers treat it as "section runs to end of text".
const notFound = -1

// lowerASCII lowercases only the ASCII letters of text, byte for byte.
// Unicode-aware lowercasing can change byte length (U+023A lowers to a
// longer code point), which would make locator offsets invalid as slice
// indexes into the original text. Section keywords are all ASCII, so this
// matches them identically while keeping offsets safe.
func lowerASCII(text string) string {
	var b []byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= 'A' && c <= 'Z' {
			if b == nil {
				b = []byte(text)
			}
			b[i] = c + ('a' - 'A')
		}
	}
	if b == nil {
		return text
	}
	return string(b)
}

// findAnySectionStart returns the offset of the earliest occurrence of any of
// the given keywords in lowered, or notFound. Ties break to the leftmost
// match. lowered must already be lowercased; keywords are matched as plain
// substrings, so a keyword inside unrelated prose still counts.
func findAnySectionStart(lowered string, keys []string) int {
	pos := notFound
	for _, k := range keys {
		i := strings.Index(lowered, k)
		if i != -1 && (pos == notFound || i < pos) {
			pos = i
		}
	}
	return pos
}

// nextSectionIndex returns the offset of the nearest occurrence of any of the
// given section keywords at or after from, or notFound. Every section-scoped
// extractor uses this to bound its scan window, so the policy (nearest match
// wins, absence means end of text) must hold exactly.
func nextSectionIndex(lowered string, from int, sectionKeys []string) int {
	rest := lowered[from:]
	nearest := notFound
	for _, key := range sectionKeys {
		i := strings.Index(rest, key)
		if i != -1 {
			absolute := from + i
			if nearest == notFound || absolute < nearest {
				nearest = absolute
			}
		}
	}
	return nearest
}

// sectionWindow slices text from start to the next blank line, or start+500
// characters when no blank line follows, clamped to the end of text. The
// skills and certifications extractors share this bounding rule.
func sectionWindow(text string, start int) string {
	end := strings.Index(text[start:], "\n\n")
	if end != -1 {
		return text[start : start+end]
	}
	if start+500 > len(text) {
		return text[start:]
	}
	return text[start : start+500]
}

// isSectionHeading reports whether line is nothing but a bare section heading
// (one of keys, optionally followed by a colon). Lines carrying any other
// content are not headings.
func isSectionHeading(line string, keys []string) bool {
	heading := strings.TrimSuffix(strings.TrimSpace(strings.ToLower(line)), ":")
	for _, k := range keys {
		if heading == k {
			return true
		}
	}
	return false
}

// nonEmptyLines splits text into trimmed lines, dropping empty ones.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
