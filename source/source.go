// Package source splits assembly text into cleaned, numbered lines.
package source

import (
	"bufio"
	"io"
	"strings"

	"github.com/abonite/mcasm/translate"
)

var f = translate.From

// COMMENT starts a comment that runs to the end of the line.
const COMMENT = ";"

// Line is a comment stripped, whitespace trimmed line of source.
type Line struct {
	LineNo int    // 0-based line number in the source file.
	Text   string // Line contents.
}

// String formats the line for diagnostics, with a 1-based line number.
func (line Line) String() string {
	return f("%d: %v", line.LineNo+1, line.Text)
}

// Split reads source text, and returns the non-blank lines with
// comments removed. Line numbers are preserved.
func Split(input io.Reader) (lines []Line, err error) {
	scanner := bufio.NewScanner(input)

	lineno := -1
	for scanner.Scan() {
		lineno += 1

		text, _, _ := strings.Cut(scanner.Text(), COMMENT)
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}

		lines = append(lines, Line{LineNo: lineno, Text: text})
	}

	err = scanner.Err()

	return
}
