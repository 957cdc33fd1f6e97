package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/paneshell/internal/domain/entity"
)

// NewStyledTable creates a themed, unfocused table model. Its View is
// printed once; no program drives it.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	// Nothing is selected in a printed table.
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// DownloadTableColumns returns columns for the downloads list.
func DownloadTableColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Finished", Width: 19},
		{Title: "File", Width: 30},
		{Title: "Path", Width: 50},
	}
}

// ArchiveTableColumns returns columns for the archive list.
func ArchiveTableColumns() []table.Column {
	return []table.Column{
		{Title: "Time", Width: 19},
		{Title: "Slot", Width: 4},
		{Title: "File", Width: 28},
		{Title: "Group", Width: 8},
		{Title: "Source", Width: 44},
	}
}

// PlacementTableColumns returns columns for a layout pass.
func PlacementTableColumns() []table.Column {
	return []table.Column{
		{Title: "Pane", Width: 10},
		{Title: "X", Width: 7},
		{Title: "Y", Width: 7},
		{Title: "Width", Width: 7},
		{Title: "Height", Width: 7},
	}
}

// DownloadRows converts download records into table rows, numbered from 1.
func DownloadRows(records []entity.DownloadRecord) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for i, rec := range records {
		rows = append(rows, table.Row{strconv.Itoa(i + 1), rec.Timestamp, rec.Filename, rec.AbsolutePath})
	}
	return rows
}

// ArchiveRows converts archive records into table rows.
func ArchiveRows(records []entity.ArchiveRecord) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, rec := range records {
		group := rec.DerivedGroupName
		if group == "" {
			group = "-"
		}
		rows = append(rows, table.Row{rec.Timestamp, strconv.Itoa(int(rec.Slot)), rec.Filename, group, rec.SourceURL})
	}
	return rows
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
