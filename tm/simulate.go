package tm

// tape is a two-sided blank tape that grows on demand. origin is the slice
// index of tape position 0.
type tape struct {
	cells  []Bit
	origin int
}

func (t *tape) index(pos int) int {
	i := pos + t.origin
	if i < 0 {
		grow := len(t.cells) + 1
		if grow < -i {
			grow = -i
		}
		t.cells = append(make([]Bit, grow, grow+len(t.cells)), t.cells...)
		t.origin += grow
		i += grow
	}
	for i >= len(t.cells) {
		t.cells = append(t.cells, make([]Bit, len(t.cells)+1)...)
	}
	return i
}

func (t *tape) read(pos int) Bit     { return t.cells[t.index(pos)] }
func (t *tape) write(pos int, b Bit) { t.cells[t.index(pos)] = b }

// Simulate runs p from the blank tape in state A for at most maxSteps
// steps. It returns the number of steps executed and whether an undefined
// rule was reached. When halted is true, steps counts the executed
// transitions before the undefined lookup.
func Simulate(p Program, maxSteps int) (steps int, halted bool) {
	t := &tape{}
	state := StateA
	pos := 0
	for steps = 0; steps < maxSteps; steps++ {
		a, ok := p.Action(t.read(pos), state)
		if !ok {
			return steps, true
		}
		t.write(pos, a.Write)
		state = a.Next
		if a.Move == Left {
			pos--
		} else {
			pos++
		}
	}
	return steps, false
}
