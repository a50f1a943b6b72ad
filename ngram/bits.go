package ngram

// Window bit arithmetic. The caller is responsible for providing a radius in
// [MinRadius, MaxRadius].

// WindowWidth returns the number of cells in a window, 2r+1.
func WindowWidth(r Radius) uint { return 2*uint(r) + 1 }

// windowMask selects every cell of the window.
func windowMask(r Radius) uint64 { return 1<<WindowWidth(r) - 1 }

// centerMask selects the cell under the head.
func centerMask(r Radius) uint64 { return 1 << r }

// edgeMask selects r cells starting at bit 0.
func edgeMask(r Radius) uint64 { return 1<<r - 1 }

// rightEdgeShift is the offset of the first right edge cell.
func rightEdgeShift(r Radius) uint { return uint(r) + 1 }

// rightmostCell selects the last cell of the window, which is where a right
// push inserts the newly exposed bit.
func rightmostCell(r Radius) uint64 { return 1 << (2 * uint(r)) }
