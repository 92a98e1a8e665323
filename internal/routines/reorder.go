package routines

import "time"

// Drag-reorder support. The gesture logic lives here as a pure state
// machine so clients and tests share one contract: a long press arms a
// drag, movement beyond a small threshold before the delay cancels it,
// and on release the full new order is persisted via ReorderExercises
// or ReorderDays, never as a diff.

type DragPhase int

const (
	// DragIdle - no gesture in progress.
	DragIdle DragPhase = iota
	// DragPending - pointer is down, waiting out the long-press delay.
	DragPending
	// DragActive - the item follows the pointer until release.
	DragActive
)

const (
	// DefaultHoldDelay is how long the pointer must stay pressed before
	// a drag starts.
	DefaultHoldDelay = 600 * time.Millisecond
	// DefaultMoveThreshold is the movement allowed while pending before
	// the gesture cancels, in client units (pixels).
	DefaultMoveThreshold = 8.0
)

// DragGesture tracks one reorder gesture from press to release.
// The zero value is not usable, construct it with NewDragGesture.
type DragGesture struct {
	phase         DragPhase
	holdDelay     time.Duration
	moveThreshold float64

	startIndex int
	startPos   float64
	pressedAt  time.Time
	currentPos float64
}

func NewDragGesture(holdDelay time.Duration, moveThreshold float64) *DragGesture {
	return &DragGesture{
		phase:         DragIdle,
		holdDelay:     holdDelay,
		moveThreshold: moveThreshold,
	}
}

func (g *DragGesture) Phase() DragPhase { return g.phase }

// StartIndex is the position of the dragged item at press time.
func (g *DragGesture) StartIndex() int { return g.startIndex }

// Press arms the gesture on item index at vertical position pos.
func (g *DragGesture) Press(index int, pos float64, at time.Time) {
	g.phase = DragPending
	g.startIndex = index
	g.startPos = pos
	g.currentPos = pos
	g.pressedAt = at
}

// Move feeds a pointer movement. While pending, movement beyond the
// threshold cancels the gesture; staying put past the hold delay
// activates the drag. Returns the phase after the event.
func (g *DragGesture) Move(pos float64, at time.Time) DragPhase {
	switch g.phase {
	case DragPending:
		if abs(pos-g.startPos) > g.moveThreshold {
			g.phase = DragIdle
			return g.phase
		}
		if at.Sub(g.pressedAt) >= g.holdDelay {
			g.phase = DragActive
		}
	case DragActive:
		g.currentPos = pos
	}
	return g.phase
}

// HoldElapsed activates a pending gesture whose long-press timer fired
// without any movement.
func (g *DragGesture) HoldElapsed(at time.Time) DragPhase {
	if g.phase == DragPending && at.Sub(g.pressedAt) >= g.holdDelay {
		g.phase = DragActive
	}
	return g.phase
}

// Release ends the gesture. It reports whether a drag was active; a
// pending gesture released before the delay is a plain tap and has no
// reorder side effect.
func (g *DragGesture) Release() (dragged bool) {
	dragged = g.phase == DragActive
	g.phase = DragIdle
	return dragged
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// ItemRect is the vertical extent of one list item in the current
// visual order.
type ItemRect struct {
	Top    float64
	Height float64
}

func (r ItemRect) mid() float64 {
	return r.Top + r.Height/2
}

// PlacementIndex resolves where the dragged item belongs given the
// pointer position: the slot equals the number of items whose vertical
// midpoint lies above the pointer (before/after by midpoint test),
// clamped to the list bounds.
func PlacementIndex(pointer float64, rects []ItemRect) int {
	if len(rects) == 0 {
		return 0
	}
	slot := 0
	for _, rect := range rects {
		if pointer > rect.mid() {
			slot++
		}
	}
	if slot >= len(rects) {
		slot = len(rects) - 1
	}
	return slot
}

// Relocate returns a copy of ids with the item at from moved to to.
// Out-of-range positions are clamped.
func Relocate(ids []int, from, to int) []int {
	out := make([]int, len(ids))
	copy(out, ids)
	if len(out) < 2 {
		return out
	}

	from = clamp(from, 0, len(out)-1)
	to = clamp(to, 0, len(out)-1)
	if from == to {
		return out
	}

	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]int{moved}, out[to:]...)...)
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
