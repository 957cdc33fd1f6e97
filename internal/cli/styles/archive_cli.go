package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/paneshell/internal/domain/entity"
)

// ArchiveCLIRenderer renders output for the archive subcommands.
type ArchiveCLIRenderer struct {
	theme *Theme
}

func NewArchiveCLIRenderer(theme *Theme) *ArchiveCLIRenderer {
	return &ArchiveCLIRenderer{theme: theme}
}

func (r *ArchiveCLIRenderer) RenderList(records []entity.ArchiveRecord) string {
	if len(records) == 0 {
		return r.theme.Subtle.Render("Archive is empty.")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %s\n\n",
		r.theme.Highlight.Render(IconArchive),
		r.theme.Title.Render("Archive"),
		r.theme.BadgeMuted.Render(fmt.Sprintf("%d", len(records))),
	))
	b.WriteString(NewStyledTable(r.theme, ArchiveTableColumns(), ArchiveRows(records)).View())
	return b.String()
}

func (r *ArchiveCLIRenderer) RenderAdded(rec entity.ArchiveRecord) string {
	out := fmt.Sprintf("%s Archived %s from slot %d",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(rec.Filename),
		rec.Slot,
	)
	if rec.DerivedGroupName != "" {
		out += " " + r.theme.Badge.Render(rec.DerivedGroupName)
	}
	return out
}

func (r *ArchiveCLIRenderer) RenderCleared() string {
	return fmt.Sprintf("%s Archive cleared", r.theme.SuccessStyle.Render(IconCheck))
}
