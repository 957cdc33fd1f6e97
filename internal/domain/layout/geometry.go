// Package layout derives pane rectangles from the session state.
// Everything here is pure: the same inputs always produce the same placements,
// so layout can be recomputed from any trigger point without drift.
package layout

import (
	"fmt"
	"slices"

	"github.com/bnema/paneshell/internal/domain/entity"
)

// Options carries the fixed sizes of the floating panes.
type Options struct {
	ToolbarWidth        float64
	ToolbarHeight       float64
	ToolbarBottomOffset float64
	PopupWidth          float64
	PopupHeight         float64
	PopupMargin         float64
}

// DefaultOptions returns the stock floating pane dimensions.
func DefaultOptions() Options {
	return Options{
		ToolbarWidth:        152,
		ToolbarHeight:       44,
		ToolbarBottomOffset: 10,
		PopupWidth:          320,
		PopupHeight:         360,
		PopupMargin:         8,
	}
}

// ParkedX is where floating panes wait before their first layout pass.
const ParkedX = -500

// Input is everything a layout pass depends on.
type Input struct {
	Width, Height float64
	State         entity.SessionSnapshot
	// PopupShown is true while the downloads popup is open.
	PopupShown bool
	// Existing lists the labels of the panes that currently exist in the host.
	Existing []entity.PaneLabel
}

// Placement is the geometry to apply to one pane.
type Placement struct {
	Label entity.PaneLabel
	Rect  entity.Rect
	// PositionOnly placements move the pane without resizing it, so an
	// off-screen pane keeps its size and its page state.
	PositionOnly bool
}

// Layout is the ordered result of a layout pass.
type Layout struct {
	Placements []Placement
}

// Find returns the placement computed for label.
func (l Layout) Find(label entity.PaneLabel) (Placement, bool) {
	for _, p := range l.Placements {
		if p.Label == label {
			return p, true
		}
	}
	return Placement{}, false
}

// OffscreenX returns the x coordinate used to hide panes for a window of width w.
func OffscreenX(w float64) float64 {
	return 2 * w
}

// ContentRegion returns the x origin and width of the content side of the split.
func ContentRegion(w float64, ratio int) (x, width float64) {
	uiWidth := w * float64(ratio) / 100
	return uiWidth, w - uiWidth
}

// ToolbarRect returns the toolbar rectangle: centered in the content region,
// anchored to the bottom edge.
func ToolbarRect(w, h float64, ratio int, opts Options) entity.Rect {
	contentX, contentWidth := ContentRegion(w, ratio)
	return entity.Rect{
		X:      contentX + (contentWidth-opts.ToolbarWidth)/2,
		Y:      h - opts.ToolbarHeight - opts.ToolbarBottomOffset,
		Width:  opts.ToolbarWidth,
		Height: opts.ToolbarHeight,
	}
}

// PopupRect returns the downloads popup rectangle, stacked above the toolbar.
func PopupRect(w, h float64, ratio int, opts Options) entity.Rect {
	contentX, contentWidth := ContentRegion(w, ratio)
	return entity.Rect{
		X:      contentX + (contentWidth-opts.PopupWidth)/2,
		Y:      h - opts.ToolbarHeight - opts.ToolbarBottomOffset - opts.PopupMargin - opts.PopupHeight,
		Width:  opts.PopupWidth,
		Height: opts.PopupHeight,
	}
}

// TranslateToolbarPoint converts a point relative to the toolbar into a point
// relative to the active content pane.
func TranslateToolbarPoint(w, h float64, ratio int, opts Options, x, y float64) (float64, float64) {
	contentX, _ := ContentRegion(w, ratio)
	tb := ToolbarRect(w, h, ratio, opts)
	return tb.X - contentX + x, tb.Y + y
}

// Compute derives the placement of every existing pane.
//
// Placements follow a fixed order (base UI, content slots ascending, toolbar,
// popup) so two passes over the same input are identical. Panes that do not
// exist are skipped. A missing base UI pane is an error: there is no layout
// without it.
func Compute(in Input, opts Options) (Layout, error) {
	if !slices.Contains(in.Existing, entity.LabelBaseUI) {
		return Layout{}, fmt.Errorf("compute layout: %w", entity.ErrBaseUIMissing)
	}

	exists := func(label entity.PaneLabel) bool {
		return slices.Contains(in.Existing, label)
	}
	offscreen := func(label entity.PaneLabel) Placement {
		return Placement{
			Label:        label,
			Rect:         entity.Rect{X: OffscreenX(in.Width), Y: 0},
			PositionOnly: true,
		}
	}

	placements := make([]Placement, 0, len(in.Existing))
	visible := in.State.ContentVisible

	if !visible {
		placements = append(placements, Placement{
			Label: entity.LabelBaseUI,
			Rect:  entity.Rect{Width: in.Width, Height: in.Height},
		})
		for _, slot := range entity.AllSlots() {
			if label := entity.ContentLabel(slot); exists(label) {
				placements = append(placements, offscreen(label))
			}
		}
		for _, label := range entity.FloatingLabels() {
			if exists(label) {
				placements = append(placements, offscreen(label))
			}
		}
		return Layout{Placements: placements}, nil
	}

	contentX, contentWidth := ContentRegion(in.Width, in.State.SplitRatio)
	placements = append(placements, Placement{
		Label: entity.LabelBaseUI,
		Rect:  entity.Rect{Width: contentX, Height: in.Height},
	})

	for _, slot := range entity.AllSlots() {
		label := entity.ContentLabel(slot)
		if !exists(label) {
			continue
		}
		if slot != in.State.ActiveSlot {
			placements = append(placements, offscreen(label))
			continue
		}
		placements = append(placements, Placement{
			Label: label,
			Rect:  entity.Rect{X: contentX, Width: contentWidth, Height: in.Height},
		})
	}

	if exists(entity.LabelToolbar) {
		placements = append(placements, Placement{
			Label: entity.LabelToolbar,
			Rect:  ToolbarRect(in.Width, in.Height, in.State.SplitRatio, opts),
		})
	}

	if exists(entity.LabelPopup) {
		if in.PopupShown {
			placements = append(placements, Placement{
				Label: entity.LabelPopup,
				Rect:  PopupRect(in.Width, in.Height, in.State.SplitRatio, opts),
			})
		} else {
			placements = append(placements, offscreen(entity.LabelPopup))
		}
	}

	return Layout{Placements: placements}, nil
}
