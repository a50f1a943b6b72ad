package tm

import "fmt"

const (
	// EncodedStates is the number of states carried by the text and seed
	// encodings.
	EncodedStates = 5

	PackedLength    = 30
	SeparatedLength = 34

	packedBlock    = 6
	separatedBlock = 7
	ruleWidth      = 3
)

// Parse builds a 5-state table from its 30 or 34 character encoding.
func Parse(s string) (*Table, error) {
	return ParseBytes([]byte(s))
}

// ParseBytes builds a 5-state table from a 30 or 34 byte encoding. Text
// characters and the raw byte values of the seed database may be mixed.
func ParseBytes(b []byte) (*Table, error) {
	var block int
	switch len(b) {
	case PackedLength:
		block = packedBlock
	case SeparatedLength:
		block = separatedBlock
	default:
		return nil, fmt.Errorf("%w: got %d", ErrBadEncodingLength, len(b))
	}

	t, err := NewTable(EncodedStates)
	if err != nil {
		return nil, err
	}

	for s := 0; s < EncodedStates; s++ {
		for _, read := range Bits {
			i := s*block + int(read)*ruleWidth

			if isHaltChar(b[i+2]) {
				continue
			}
			next, err := stateFromChar(b[i+2])
			if err != nil {
				return nil, err
			}
			write, err := bitFromChar(b[i])
			if err != nil {
				return nil, err
			}
			move, err := dirFromChar(b[i+1])
			if err != nil {
				return nil, err
			}
			if err := t.Set(State(s+1), read, Action{Next: next, Write: write, Move: move}); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

func isHaltChar(c byte) bool {
	return c == '-' || c == 0 || c == 'Z' || c == 'H'
}

func stateFromChar(c byte) (State, error) {
	switch {
	case c >= 'A' && c < 'A'+EncodedStates:
		return State(c-'A') + StateA, nil
	case c >= 1 && c <= EncodedStates:
		return State(c), nil
	}
	return Halt, fmt.Errorf("%w: %q", ErrBadState, c)
}

func bitFromChar(c byte) (Bit, error) {
	switch c {
	case '0', 0:
		return Zero, nil
	case '1', 1:
		return One, nil
	}
	return Zero, fmt.Errorf("%w: %q", ErrBadSymbol, c)
}

func dirFromChar(c byte) (Dir, error) {
	switch c {
	case 'R', 0:
		return Right, nil
	case 'L', 1:
		return Left, nil
	}
	return Right, fmt.Errorf("%w: %q", ErrBadDirection, c)
}
