package tui

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/term"
)

// DefaultTerminalWidth is used when terminal width cannot be determined.
const DefaultTerminalWidth = 80

// TableColumn defines a column in a table.
type TableColumn struct {
	Name  string
	Width int
	Align Alignment
}

// Alignment defines text alignment in a column.
type Alignment int

// Alignment constants.
const (
	AlignLeft Alignment = iota
	AlignRight
)

// Table provides styled table rendering with fixed column widths.
type Table struct {
	w       io.Writer
	styles  *TableStyles
	columns []TableColumn
}

// NewTable creates a new table with the given columns.
func NewTable(w io.Writer, columns []TableColumn) *Table {
	return &Table{
		w:       w,
		styles:  NewTableStyles(),
		columns: columns,
	}
}

// WriteHeader writes the table header row.
func (t *Table) WriteHeader() {
	header := ""
	for i, col := range t.columns {
		if i > 0 {
			header += "  "
		}
		header += t.formatCell(col, col.Name)
	}
	_, _ = fmt.Fprintln(t.w, t.styles.Header.Render(header))
}

// WriteRow writes a data row to the table. Overlong cells are truncated
// with an ellipsis; missing values render as empty cells.
func (t *Table) WriteRow(values ...string) {
	row := ""
	for i, col := range t.columns {
		if i > 0 {
			row += "  "
		}
		value := ""
		if i < len(values) {
			value = values[i]
		}
		row += t.formatCell(col, truncateCell(value, col.Width))
	}
	_, _ = fmt.Fprintln(t.w, row)
}

// WriteStyledRow writes a data row, rendering the cell at styledIndex
// through the given style. Padding is computed from the plain value so
// ANSI escape codes do not skew alignment.
func (t *Table) WriteStyledRow(values []string, styledIndex int, styled string) {
	row := ""
	for i, col := range t.columns {
		if i > 0 {
			row += "  "
		}
		value := ""
		if i < len(values) {
			value = values[i]
		}
		if i == styledIndex {
			row += padRight(styled, col.Width)
			continue
		}
		row += t.formatCell(col, truncateCell(value, col.Width))
	}
	_, _ = fmt.Fprintln(t.w, row)
}

// formatCell pads the value to the column width honoring alignment.
func (t *Table) formatCell(col TableColumn, value string) string {
	if col.Align == AlignRight {
		count := utf8.RuneCountInString(value)
		if count >= col.Width {
			return value
		}
		return fmt.Sprintf("%*s", col.Width, value)
	}
	return padRight(value, col.Width)
}

// truncateCell shortens a value to the column width, rune-aware because
// titles and evidence contain accented French text.
func truncateCell(value string, width int) string {
	if width <= 1 {
		return value
	}
	if utf8.RuneCountInString(value) <= width {
		return value
	}
	runes := []rune(value)
	return string(runes[:width-1]) + "…"
}

// AutoSize computes column widths from headers and row content, then
// shrinks the widest column until the table fits the terminal.
func AutoSize(columns []TableColumn, rows [][]string, terminalWidth int) []TableColumn {
	sized := make([]TableColumn, len(columns))
	copy(sized, columns)

	for i := range sized {
		if w := utf8.RuneCountInString(sized[i].Name); w > sized[i].Width {
			sized[i].Width = w
		}
	}
	for _, row := range rows {
		for i := range sized {
			if i >= len(row) {
				break
			}
			if w := utf8.RuneCountInString(row[i]); w > sized[i].Width {
				sized[i].Width = w
			}
		}
	}

	if terminalWidth <= 0 {
		return sized
	}

	// 2-space separators between columns.
	total := 2 * (len(sized) - 1)
	for _, col := range sized {
		total += col.Width
	}

	for total > terminalWidth {
		widest := 0
		for i := range sized {
			if sized[i].Width > sized[widest].Width {
				widest = i
			}
		}
		const minWidth = 8
		if sized[widest].Width <= minWidth {
			break
		}
		sized[widest].Width--
		total--
	}

	return sized
}

// TerminalWidth returns the current terminal width, or DefaultTerminalWidth
// when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return width
}
