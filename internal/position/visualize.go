package position

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Highlight renders the source lines covered by span with a caret marker
// under the spanned columns. Columns are counted in bytes, so the marker is
// placed by rune width of the preceding text.
func Highlight(file *SourceFile, span Span) string {
	if file == nil || !span.Start.IsValid() {
		return ""
	}

	var result strings.Builder

	endLine := span.End.Line
	if endLine < span.Start.Line {
		endLine = span.Start.Line
	}

	for lineNum := span.Start.Line; lineNum <= endLine; lineNum++ {
		line := file.GetLine(lineNum)
		result.WriteString(fmt.Sprintf("%4d | %s\n", lineNum, line))

		startCol, endCol := 1, len(line)+1
		if lineNum == span.Start.Line {
			startCol = span.Start.Column
		}
		if lineNum == span.End.Line {
			endCol = span.End.Column
		}

		result.WriteString("     | ")
		addSingleLineHighlight(&result, line, startCol, endCol)
		result.WriteString("\n")
	}

	return result.String()
}

// addSingleLineHighlight writes padding up to startCol and one caret per rune
// up to endCol. An empty range still gets a single caret.
func addSingleLineHighlight(result *strings.Builder, line string, startCol, endCol int) {
	if startCol < 1 {
		startCol = 1
	}
	if startCol > len(line)+1 {
		startCol = len(line) + 1
	}
	if endCol > len(line)+1 {
		endCol = len(line) + 1
	}

	for _, r := range line[:startCol-1] {
		if r == '\t' {
			result.WriteString("\t")
		} else {
			result.WriteString(" ")
		}
	}

	width := 0
	if endCol > startCol {
		width = utf8.RuneCountInString(line[startCol-1 : endCol-1])
	}
	result.WriteString(strings.Repeat("^", max(width, 1)))
}
