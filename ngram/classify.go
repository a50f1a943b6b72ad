package ngram

import "github.com/forestrie/go-ngramcps/tm"

// Classification is the detailed answer of Decide.
type Classification struct {
	Result     Result
	Outcome    Outcome
	Expansions int
	Contexts   int
	NGrams     [2]int // indexed by tm.Dir
}

// Classify reports LoopsForever if a closure proof for p can be built at
// the given radius within maxContextCount contexts, and MayHalt otherwise.
// An error is returned only for a radius outside [MinRadius, MaxRadius].
func Classify(p tm.Program, radius uint8, maxContextCount int) (Result, error) {
	c, err := Decide(p, radius, maxContextCount)
	if err != nil {
		return MayHalt, err
	}
	return c.Result, nil
}

// Decide runs one saturation pass followed by one verification pass and
// reports how saturation ended along with the size of the reachable sets.
func Decide(p tm.Program, radius uint8, maxContextCount int) (Classification, error) {
	pr, err := New(radius)
	if err != nil {
		return Classification{}, err
	}
	outcome := pr.Saturate(p, maxContextCount)

	c := Classification{
		Result:     MayHalt,
		Outcome:    outcome,
		Expansions: pr.Expansions(),
		Contexts:   pr.ContextCount(),
		NGrams:     [2]int{tm.Left: pr.NGramCount(tm.Left), tm.Right: pr.NGramCount(tm.Right)},
	}
	if pr.ClosedUnderProgramStep(p) {
		c.Result = LoopsForever
	}
	return c, nil
}
