package tm

import (
	"errors"
	"fmt"
)

// State identifies a control state. Live states count from 1 (A). Halt is
// the reserved value produced by an undefined lookup, it is never the state
// of a running machine.
type State uint8

const (
	Halt   State = 0
	StateA State = 1

	// MaxStates is the largest number of states a Table can hold.
	MaxStates = 255
)

func (s State) String() string {
	if s == Halt {
		return "H"
	}
	if s <= 26 {
		return string(rune('A' + s - 1))
	}
	return fmt.Sprintf("S%d", s)
}

// Bit is a single tape symbol, 0 or 1.
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

// Bits lists both symbols in ascending order.
var Bits = [2]Bit{Zero, One}

func (b Bit) String() string {
	if b != Zero {
		return "1"
	}
	return "0"
}

// Dir is a head move direction.
type Dir uint8

const (
	Left Dir = iota
	Right
)

// Opposite returns the other direction.
func (d Dir) Opposite() Dir {
	if d == Left {
		return Right
	}
	return Left
}

func (d Dir) String() string {
	if d == Left {
		return "L"
	}
	return "R"
}

// Action is the effect of a defined rule: write Write under the head, switch
// to Next, then move the head one cell towards Move.
type Action struct {
	Next  State
	Write Bit
	Move  Dir
}

// Program is a pure, immutable lookup over a finite (state, symbol) domain.
// ok is false when the rule is undefined, meaning the machine halts.
type Program interface {
	Action(read Bit, state State) (action Action, ok bool)
}

var (
	ErrBadEncodingLength = errors.New("tm: expected a 34-character string like '1RB0LC_0LA1RD_1LA0RB_1LE---_0RA1RE' or a 30-character string like '1RB0LC0LA1RD1LA0RB1LE---0RA1RE'")
	ErrBadState          = errors.New("tm: unknown state")
	ErrBadSymbol         = errors.New("tm: unknown symbol")
	ErrBadDirection      = errors.New("tm: unknown direction")
	ErrStateCount        = errors.New("tm: state count must lie in [1, 255]")
	ErrRuleRange         = errors.New("tm: rule outside the table")
)
