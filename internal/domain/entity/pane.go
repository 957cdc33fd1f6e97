// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// Slot identifies one of the addressable content panes.
type Slot int

const (
	// MinSlot is the first content slot. It is permanent once created.
	MinSlot Slot = 1
	// MaxSlot is the last content slot.
	MaxSlot Slot = 3
	// PermanentSlot cannot be closed by the user.
	PermanentSlot = MinSlot
)

// Valid reports whether the slot is inside [MinSlot, MaxSlot].
func (s Slot) Valid() bool {
	return s >= MinSlot && s <= MaxSlot
}

// ParseSlot validates a raw slot number coming from the UI layer.
func ParseSlot(n int) (Slot, error) {
	s := Slot(n)
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSlot, n)
	}
	return s, nil
}

// AllSlots returns every slot in ascending order.
func AllSlots() []Slot {
	slots := make([]Slot, 0, int(MaxSlot-MinSlot)+1)
	for s := MinSlot; s <= MaxSlot; s++ {
		slots = append(slots, s)
	}
	return slots
}

// PaneLabel is the stable lookup key of a native pane inside the host.
// The orchestration layer never keeps host handles across calls, only labels.
type PaneLabel string

const (
	LabelBaseUI  PaneLabel = "ui"
	LabelToolbar PaneLabel = "toolbar"
	LabelPopup   PaneLabel = "downloads"

	contentLabelPrefix = "content_"
)

// ContentLabel returns the label of the content pane living in slot.
func ContentLabel(s Slot) PaneLabel {
	return PaneLabel(contentLabelPrefix + strconv.Itoa(int(s)))
}

// SlotFromLabel extracts the slot of a content label.
func SlotFromLabel(label PaneLabel) (Slot, bool) {
	raw, ok := strings.CutPrefix(string(label), contentLabelPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	s := Slot(n)
	return s, s.Valid()
}

// FloatingLabels lists the panes stacked above content panes, bottom first.
func FloatingLabels() []PaneLabel {
	return []PaneLabel{LabelToolbar, LabelPopup}
}

// PaneKind classifies panes for layout purposes.
type PaneKind int

const (
	PaneKindBaseUI PaneKind = iota // Control UI, always present
	PaneKindContent                // One per slot
	PaneKindToolbar                // Floating navigation toolbar
	PaneKindPopup                  // Floating downloads popup
)

// String returns a human-readable representation of the pane kind.
func (k PaneKind) String() string {
	switch k {
	case PaneKindBaseUI:
		return "base_ui"
	case PaneKindContent:
		return "content"
	case PaneKindToolbar:
		return "toolbar"
	case PaneKindPopup:
		return "popup"
	default:
		return "unknown"
	}
}

// KindOf returns the pane kind implied by a label.
func KindOf(label PaneLabel) PaneKind {
	switch label {
	case LabelBaseUI:
		return PaneKindBaseUI
	case LabelToolbar:
		return PaneKindToolbar
	case LabelPopup:
		return PaneKindPopup
	default:
		return PaneKindContent
	}
}

// Pane describes a live native pane as seen by the orchestration layer.
type Pane struct {
	Label PaneLabel
	Kind  PaneKind
	Rect  Rect // Last applied rectangle
}
