package ngram

import (
	"cmp"

	"github.com/forestrie/go-ngramcps/tm"
)

// NGram is an r-bit tape pattern seen at one edge of a window. Bit 0 is the
// leftmost cell of the pattern.
type NGram uint32

// LocalContext is a window of 2r+1 cells centered on the head, tagged with
// the control state. See the package documentation for the layout.
type LocalContext struct {
	State  tm.State
	Window uint64
}

// BlankContext is the context of a machine started on the blank tape.
func BlankContext() LocalContext {
	return LocalContext{State: tm.StateA}
}

// Push shifts the window one cell towards d and inserts b as the newly
// exposed cell on that side. The cell at the opposite edge is dropped.
func (c LocalContext) Push(d tm.Dir, b tm.Bit, r Radius) LocalContext {
	if d == tm.Left {
		return c.pushLeft(b, r)
	}
	return c.pushRight(b, r)
}

func (c LocalContext) pushLeft(b tm.Bit, r Radius) LocalContext {
	c.Window = (c.Window<<1 | uint64(b&1)) & windowMask(r)
	return c
}

func (c LocalContext) pushRight(b tm.Bit, r Radius) LocalContext {
	c.Window >>= 1
	if b != tm.Zero {
		c.Window |= rightmostCell(r)
	}
	return c
}

// WriteCenter overwrites the cell under the head and sets the state.
func (c LocalContext) WriteCenter(b tm.Bit, state tm.State, r Radius) LocalContext {
	c.State = state
	c.Window &^= centerMask(r)
	if b != tm.Zero {
		c.Window |= centerMask(r)
	}
	return c
}

// Center returns the cell under the head.
func (c LocalContext) Center(r Radius) tm.Bit {
	if c.Window&centerMask(r) != 0 {
		return tm.One
	}
	return tm.Zero
}

// Edge returns the r cells on side d of the head.
func (c LocalContext) Edge(d tm.Dir, r Radius) NGram {
	if d == tm.Left {
		return NGram(c.Window & edgeMask(r))
	}
	return NGram((c.Window >> rightEdgeShift(r)) & edgeMask(r))
}

// Compare orders contexts by state, then by window.
func Compare(a, b LocalContext) int {
	if c := cmp.Compare(a.State, b.State); c != 0 {
		return c
	}
	return cmp.Compare(a.Window, b.Window)
}
