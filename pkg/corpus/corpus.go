// Package corpus provides a normalized, searchable view over the text
// extracted from a paystub document.
package corpus

import "strings"

// Document holds the non-empty, trimmed lines of an extracted paystub in
// document order, plus pass-through extras from the extraction layer. It is
// immutable after construction.
type Document struct {
	lines  []string
	tables [][][]string
	pages  int
}

// New splits raw text on line boundaries, trims whitespace and drops empty
// lines, preserving the relative order of what remains. Tables are carried
// through untouched for collaborators that can use them.
func New(text string, tables [][][]string, pages int) *Document {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return &Document{lines: lines, tables: tables, pages: pages}
}

// Lines returns the normalized lines in document order.
func (d *Document) Lines() []string { return d.lines }

// Tables returns the extracted tables, if the extraction layer produced any.
func (d *Document) Tables() [][][]string { return d.tables }

// Pages returns the page count reported by the extraction layer.
func (d *Document) Pages() int { return d.pages }

// Text returns all lines joined with single spaces, for whole-document
// searches that span line boundaries.
func (d *Document) Text() string { return strings.Join(d.lines, " ") }

// FindLines returns every line containing pattern as a substring, in
// document order. Matching is case-insensitive unless caseSensitive is set.
func (d *Document) FindLines(pattern string, caseSensitive bool) []string {
	if !caseSensitive {
		pattern = strings.ToLower(pattern)
	}
	var matches []string
	for _, line := range d.lines {
		candidate := line
		if !caseSensitive {
			candidate = strings.ToLower(line)
		}
		if strings.Contains(candidate, pattern) {
			matches = append(matches, line)
		}
	}
	return matches
}

// LineAfter returns the line offset positions away from a match of pattern
// (case-insensitive). Matches too close to the document edge for the offset
// are skipped in favor of later ones.
func (d *Document) LineAfter(pattern string, offset int) (string, bool) {
	pattern = strings.ToLower(pattern)
	for i, line := range d.lines {
		if !strings.Contains(strings.ToLower(line), pattern) {
			continue
		}
		if i+offset >= 0 && i+offset < len(d.lines) {
			return d.lines[i+offset], true
		}
	}
	return "", false
}

// Between returns the lines strictly after the first line containing start,
// up to but excluding the next line containing end. It returns nothing when
// start never matches, and runs to the end of the document when end never
// matches.
func (d *Document) Between(start, end string) []string {
	start = strings.ToLower(start)
	end = strings.ToLower(end)

	startIdx := -1
	for i, line := range d.lines {
		if strings.Contains(strings.ToLower(line), start) {
			startIdx = i + 1
			break
		}
	}
	if startIdx == -1 {
		return nil
	}

	endIdx := len(d.lines)
	for i := startIdx; i < len(d.lines); i++ {
		if strings.Contains(strings.ToLower(d.lines[i]), end) {
			endIdx = i
			break
		}
	}
	return d.lines[startIdx:endIdx]
}

// Preview returns up to n leading lines joined by newlines, for audit and
// debug output.
func (d *Document) Preview(n int) string {
	if n > len(d.lines) {
		n = len(d.lines)
	}
	return strings.Join(d.lines[:n], "\n")
}
