package ngram

import "github.com/forestrie/go-ngramcps/tm"

// Saturate explores forward from every known context, recording newly
// reachable contexts and n-grams, until the work list empties or one of the
// stop conditions holds:
//
//   - a known context has an undefined rule (OutcomeHalted)
//   - more than maxContextCount contexts are known (OutcomeBudgetExceeded)
//
// The budget is checked before each expansion and an expansion adds at most
// two contexts, so at most maxContextCount+2 contexts are known on return.
//
// Saturate does not check the result is closed, use ClosedUnderProgramStep
// for that. Calling it again resumes from the whole known set.
func (pr *PartialReachable) Saturate(p tm.Program, maxContextCount int) Outcome {
	r := pr.radius
	queue := pr.Contexts()

	// waiting maps, per side, an n-gram not yet known on that side to the
	// contexts whose successor needs it.
	waiting := newPerDir(func() map[NGram][]LocalContext {
		return make(map[NGram][]LocalContext)
	})

	for len(queue) > 0 {
		c := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		if len(pr.contexts) > maxContextCount {
			return OutcomeBudgetExceeded
		}
		pr.expansions++

		action, ok := p.Action(c.Center(r), c.State)
		if !ok {
			return OutcomeHalted
		}
		lead := action.Move
		trail := lead.Opposite()

		// The trailing edge falls off the window, so it occurs on that side.
		falling := c.Edge(trail, r)
		if pr.addNGram(trail, falling) {
			blocked := *waiting.at(trail)
			if revisit, ok := blocked[falling]; ok {
				queue = append(queue, revisit...)
				delete(blocked, falling)
			}
		}

		written := c.WriteCenter(action.Write, action.Next, r)
		for _, b := range tm.Bits {
			next := written.Push(lead, b, r)
			exposed := next.Edge(lead, r)

			if !pr.HasNGram(lead, exposed) {
				blocked := *waiting.at(lead)
				blocked[exposed] = append(blocked[exposed], c)
				continue
			}
			if pr.addContext(next) {
				queue = append(queue, next)
			}
		}
	}
	return OutcomeExhausted
}
