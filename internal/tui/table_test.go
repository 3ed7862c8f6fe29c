package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testColumns() []TableColumn {
	return []TableColumn{
		{Name: "ID", Width: 18},
		{Name: "CATÉGORIE", Width: 16},
		{Name: "TITRE", Width: 24},
	}
}

func TestTableWriteHeader(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	CheckNoColor()

	var buf bytes.Buffer
	table := NewTable(&buf, testColumns())
	table.WriteHeader()

	out := stripANSI(buf.String())
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "CATÉGORIE")
	assert.Contains(t, out, "TITRE")
}

func TestTableWriteRow(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, testColumns())
	table.WriteRow("pipeline_exists", "Pipeline CI", "Pipeline CI existe")

	out := buf.String()
	assert.Contains(t, out, "pipeline_exists")
	assert.Contains(t, out, "Pipeline CI existe")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestTableWriteRowTruncatesLongCells(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []TableColumn{{Name: "TITRE", Width: 10}})
	table.WriteRow("Déploiement automatisé vers la production")

	out := buf.String()
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, "production")
}

func TestTableWriteRowMissingValues(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, testColumns())
	table.WriteRow("only_id")

	assert.Contains(t, buf.String(), "only_id")
}

func TestTableWriteStyledRowAlignment(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []TableColumn{
		{Name: "STATUS", Width: 10},
		{Name: "ID", Width: 10},
	})

	styled := "\x1b[32m✓ pass\x1b[0m"
	table.WriteStyledRow([]string{"✓ pass", "tests"}, 0, styled)

	plain := stripANSI(buf.String())
	// The styled cell pads to the same visible width as a plain cell would.
	assert.Equal(t, "✓ pass      tests     \n", plain)
}

func TestTableRightAlignment(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []TableColumn{{Name: "PCT", Width: 5, Align: AlignRight}})
	table.WriteRow("83%")

	assert.Equal(t, "  83%\n", buf.String())
}

func TestAutoSize(t *testing.T) {
	columns := []TableColumn{
		{Name: "ID"},
		{Name: "TITRE"},
	}
	rows := [][]string{
		{"pipeline_exists", "Pipeline CI existe"},
		{"docker_publish", "Image publiée sur un registre"},
	}

	sized := AutoSize(columns, rows, 200)
	require.Len(t, sized, 2)
	assert.Equal(t, len("pipeline_exists"), sized[0].Width)
	assert.Equal(t, len([]rune("Image publiée sur un registre")), sized[1].Width)
}

func TestAutoSizeShrinksToTerminal(t *testing.T) {
	columns := []TableColumn{
		{Name: "ID"},
		{Name: "DESCRIPTION"},
	}
	rows := [][]string{
		{"docker_publish", strings.Repeat("x", 120)},
	}

	sized := AutoSize(columns, rows, 60)

	total := sized[0].Width + sized[1].Width + 2
	assert.LessOrEqual(t, total, 60)
	// The narrow column is left alone; only the widest shrinks.
	assert.Equal(t, len("docker_publish"), sized[0].Width)
}

func TestAutoSizeRespectsMinimumWidth(t *testing.T) {
	columns := []TableColumn{{Name: "A"}, {Name: "B"}}
	rows := [][]string{{strings.Repeat("a", 50), strings.Repeat("b", 50)}}

	sized := AutoSize(columns, rows, 10)
	for _, col := range sized {
		assert.GreaterOrEqual(t, col.Width, 8)
	}
}
