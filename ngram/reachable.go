package ngram

import (
	"slices"

	"github.com/forestrie/go-ngramcps/tm"
)

// PartialReachable is the closure state for one classification: the local
// contexts known to be reachable from the blank tape and, per side, the
// n-grams known to occur at that edge of a reachable context.
//
// Both sets only ever grow. A PartialReachable is not safe for concurrent
// use.
type PartialReachable struct {
	radius     Radius
	contexts   map[LocalContext]struct{}
	ngrams     perDir[map[NGram]struct{}]
	expansions int
}

// New returns the closure state of the blank tape: the blank context and the
// all zero n-gram on each side.
func New(radius uint8) (*PartialReachable, error) {
	if err := CheckRadius(radius); err != nil {
		return nil, err
	}
	pr := &PartialReachable{
		radius:   Radius(radius),
		contexts: map[LocalContext]struct{}{BlankContext(): {}},
		ngrams: newPerDir(func() map[NGram]struct{} {
			return map[NGram]struct{}{0: {}}
		}),
	}
	return pr, nil
}

// Radius returns the window radius.
func (pr *PartialReachable) Radius() Radius { return pr.radius }

// ContextCount returns the number of known reachable contexts.
func (pr *PartialReachable) ContextCount() int { return len(pr.contexts) }

// NGramCount returns the number of known n-grams on side d.
func (pr *PartialReachable) NGramCount(d tm.Dir) int { return len(*pr.ngrams.at(d)) }

// Expansions returns the number of contexts expanded by saturation so far.
func (pr *PartialReachable) Expansions() int { return pr.expansions }

// HasContext reports whether c is known reachable.
func (pr *PartialReachable) HasContext(c LocalContext) bool {
	_, ok := pr.contexts[c]
	return ok
}

// HasNGram reports whether g is known to occur on side d.
func (pr *PartialReachable) HasNGram(d tm.Dir, g NGram) bool {
	_, ok := (*pr.ngrams.at(d))[g]
	return ok
}

// Contexts returns the known contexts in Compare order.
func (pr *PartialReachable) Contexts() []LocalContext {
	out := make([]LocalContext, 0, len(pr.contexts))
	for c := range pr.contexts {
		out = append(out, c)
	}
	slices.SortFunc(out, Compare)
	return out
}

// NGrams returns the known n-grams on side d in ascending order.
func (pr *PartialReachable) NGrams(d tm.Dir) []NGram {
	set := *pr.ngrams.at(d)
	out := make([]NGram, 0, len(set))
	for g := range set {
		out = append(out, g)
	}
	slices.Sort(out)
	return out
}

// addContext records c and reports whether it was new.
func (pr *PartialReachable) addContext(c LocalContext) bool {
	if pr.HasContext(c) {
		return false
	}
	pr.contexts[c] = struct{}{}
	return true
}

// addNGram records g on side d and reports whether it was new.
func (pr *PartialReachable) addNGram(d tm.Dir, g NGram) bool {
	if pr.HasNGram(d, g) {
		return false
	}
	(*pr.ngrams.at(d))[g] = struct{}{}
	return true
}
