package ngram

import "errors"

// Radius is the number of cells tracked on each side of the head.
type Radius uint8

const (
	MinRadius Radius = 1
	MaxRadius Radius = 31
)

var ErrRadiusRange = errors.New("ngram: radius must lie in [1, 31]")

// CheckRadius returns ErrRadiusRange if radius cannot be packed.
func CheckRadius(radius uint8) error {
	if Radius(radius) < MinRadius || Radius(radius) > MaxRadius {
		return ErrRadiusRange
	}
	return nil
}

// Result is the answer of a classification. The zero value is MayHalt.
type Result uint8

const (
	MayHalt Result = iota
	LoopsForever
)

func (r Result) String() string {
	if r == LoopsForever {
		return "loops forever"
	}
	return "may halt"
}

// Outcome records why a saturation pass stopped.
type Outcome uint8

const (
	// OutcomeExhausted means the work list emptied.
	OutcomeExhausted Outcome = iota
	// OutcomeHalted means a known context has an undefined rule.
	OutcomeHalted
	// OutcomeBudgetExceeded means more contexts were known than the budget allows.
	OutcomeBudgetExceeded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeHalted:
		return "halted"
	case OutcomeBudgetExceeded:
		return "budget exceeded"
	}
	return "unknown"
}
