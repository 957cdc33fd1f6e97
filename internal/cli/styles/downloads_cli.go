package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/paneshell/internal/domain/entity"
)

// DownloadsCLIRenderer renders output for the downloads, settings and
// reset-data subcommands.
type DownloadsCLIRenderer struct {
	theme *Theme
}

func NewDownloadsCLIRenderer(theme *Theme) *DownloadsCLIRenderer {
	return &DownloadsCLIRenderer{theme: theme}
}

func (r *DownloadsCLIRenderer) RenderList(records []entity.DownloadRecord) string {
	if len(records) == 0 {
		return r.theme.Subtle.Render("No downloads recorded.")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %s\n\n",
		r.theme.Highlight.Render(IconDownload),
		r.theme.Title.Render("Downloads"),
		r.theme.BadgeMuted.Render(fmt.Sprintf("%d", len(records))),
	))
	b.WriteString(NewStyledTable(r.theme, DownloadTableColumns(), DownloadRows(records)).View())
	return b.String()
}

func (r *DownloadsCLIRenderer) RenderDeleted(path string, removed bool) string {
	if !removed {
		return fmt.Sprintf("%s Nothing to delete for %s", r.theme.WarningStyle.Render(IconWarning), path)
	}
	return fmt.Sprintf("%s Deleted %s", r.theme.SuccessStyle.Render(IconTrash), r.theme.Highlight.Render(path))
}

func (r *DownloadsCLIRenderer) RenderCleared(count int) string {
	return fmt.Sprintf("%s Removed %d file(s) and cleared the downloads log", r.theme.SuccessStyle.Render(IconCheck), count)
}

func (r *DownloadsCLIRenderer) RenderDownloadDir(custom, fallback string) string {
	if custom == "" {
		return fmt.Sprintf("%s %s %s",
			r.theme.Highlight.Render(IconFolder),
			fallback,
			r.theme.Subtle.Render("(default)"),
		)
	}
	return fmt.Sprintf("%s %s %s",
		r.theme.Highlight.Render(IconFolder),
		custom,
		r.theme.Badge.Render("custom"),
	)
}

func (r *DownloadsCLIRenderer) RenderDownloadDirSet(path string) string {
	if path == "" {
		return fmt.Sprintf("%s Download directory reset to the default", r.theme.SuccessStyle.Render(IconCheck))
	}
	return fmt.Sprintf("%s Download directory set to %s", r.theme.SuccessStyle.Render(IconCheck), r.theme.Highlight.Render(path))
}

func (r *DownloadsCLIRenderer) RenderReset(dataDir string, preserved []string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s Reset %s", r.theme.SuccessStyle.Render(IconCheck), r.theme.Highlight.Render(dataDir)))
	for _, name := range preserved {
		b.WriteString(fmt.Sprintf("\n  %s kept %s", r.theme.Subtle.Render(IconInfo), name))
	}
	return b.String()
}

func (r *DownloadsCLIRenderer) RenderCanceled() string {
	return r.theme.Subtle.Render("Canceled.")
}

func (r *DownloadsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}
