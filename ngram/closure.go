package ngram

import "github.com/forestrie/go-ngramcps/tm"

// ClosedUnderProgramStep reports whether the known sets are closed under
// one step of p. For every known context the rule under the head must be
// defined, the trailing edge must be a known n-gram, and each successor
// whose leading edge is a known n-gram must itself be a known context.
//
// A true result is a proof that p never halts from the blank tape. The
// check does not modify pr.
func (pr *PartialReachable) ClosedUnderProgramStep(p tm.Program) bool {
	r := pr.radius
	for c := range pr.contexts {
		action, ok := p.Action(c.Center(r), c.State)
		if !ok {
			return false
		}
		lead := action.Move
		trail := lead.Opposite()

		if !pr.HasNGram(trail, c.Edge(trail, r)) {
			return false
		}

		written := c.WriteCenter(action.Write, action.Next, r)
		for _, b := range tm.Bits {
			next := written.Push(lead, b, r)
			if pr.HasNGram(lead, next.Edge(lead, r)) && !pr.HasContext(next) {
				return false
			}
		}
	}
	return true
}
