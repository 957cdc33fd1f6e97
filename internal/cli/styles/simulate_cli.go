package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/bnema/paneshell/internal/domain/entity"
)

// PaneRow is one pane of a simulated window.
type PaneRow struct {
	Label entity.PaneLabel
	Rect  entity.Rect
}

// SimulateRenderer renders the steps of `paneshell simulate`.
type SimulateRenderer struct {
	theme *Theme
}

func NewSimulateRenderer(theme *Theme) *SimulateRenderer {
	return &SimulateRenderer{theme: theme}
}

// RenderStep prints the command that ran, the session it left and the
// geometry of every pane.
func (r *SimulateRenderer) RenderStep(n int, command string, visible bool, active, ratio int, panes []PaneRow) string {
	var b strings.Builder

	visibility := r.theme.BadgeMuted.Render("hidden")
	if visible {
		visibility = r.theme.Badge.Render("visible")
	}
	b.WriteString(fmt.Sprintf("%s %s %s  slot %d  ratio %d\n",
		r.theme.Subtle.Render(fmt.Sprintf("%02d", n)),
		r.theme.Title.Render(command),
		visibility,
		active,
		ratio,
	))

	rows := make([]table.Row, 0, len(panes))
	for _, p := range panes {
		rows = append(rows, table.Row{
			string(p.Label),
			formatCoord(p.Rect.X),
			formatCoord(p.Rect.Y),
			formatCoord(p.Rect.Width),
			formatCoord(p.Rect.Height),
		})
	}
	b.WriteString(NewStyledTable(r.theme, PlacementTableColumns(), rows).View())
	return b.String()
}

// RenderEvent prints one broadcast event.
func (r *SimulateRenderer) RenderEvent(name string, payload any) string {
	if payload == nil {
		return fmt.Sprintf("   %s %s", r.theme.Highlight.Render(IconInfo), name)
	}
	return fmt.Sprintf("   %s %s %s", r.theme.Highlight.Render(IconInfo), name, r.theme.Subtle.Render(fmt.Sprintf("%+v", payload)))
}

func (r *SimulateRenderer) RenderError(command string, err error) string {
	return fmt.Sprintf("%s %s: %v", r.theme.ErrorStyle.Render(IconX), command, err)
}
