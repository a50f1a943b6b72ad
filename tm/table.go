package tm

import (
	"fmt"
	"strings"
)

type rule struct {
	action  Action
	defined bool
}

// Table is a dense transition table. Rules are stored at
//
//	(state-1)*2 + read
//
// and a newly created table has every rule undefined.
type Table struct {
	states int
	rules  []rule
}

// NewTable returns a table for states A.. with every rule undefined.
func NewTable(states int) (*Table, error) {
	if states < 1 || states > MaxStates {
		return nil, fmt.Errorf("%w: %d", ErrStateCount, states)
	}
	return &Table{
		states: states,
		rules:  make([]rule, states*2),
	}, nil
}

// States returns the number of live states in the table.
func (t *Table) States() int { return t.states }

func (t *Table) ruleIndex(read Bit, state State) (int, bool) {
	if state == Halt || int(state) > t.states || read > One {
		return 0, false
	}
	return (int(state)-1)*2 + int(read), true
}

// Set defines the rule for (state, read). The action's next state must be a
// live state of the table.
func (t *Table) Set(state State, read Bit, action Action) error {
	i, ok := t.ruleIndex(read, state)
	if !ok {
		return fmt.Errorf("%w: state %v read %v", ErrRuleRange, state, read)
	}
	if action.Next == Halt || int(action.Next) > t.states {
		return fmt.Errorf("%w: next state %v", ErrRuleRange, action.Next)
	}
	if action.Write > One {
		return fmt.Errorf("%w: %d", ErrBadSymbol, action.Write)
	}
	if action.Move > Right {
		return fmt.Errorf("%w: %d", ErrBadDirection, action.Move)
	}
	t.rules[i] = rule{action: action, defined: true}
	return nil
}

// Clear makes the rule for (state, read) undefined.
func (t *Table) Clear(state State, read Bit) error {
	i, ok := t.ruleIndex(read, state)
	if !ok {
		return fmt.Errorf("%w: state %v read %v", ErrRuleRange, state, read)
	}
	t.rules[i] = rule{}
	return nil
}

// Action implements Program. Lookups outside the table are undefined.
func (t *Table) Action(read Bit, state State) (Action, bool) {
	i, ok := t.ruleIndex(read, state)
	if !ok {
		return Action{}, false
	}
	r := t.rules[i]
	return r.action, r.defined
}

// String renders the table in the separated text form, one block per state,
// with "---" for undefined rules.
func (t *Table) String() string {
	var b strings.Builder
	for s := 1; s <= t.states; s++ {
		if s > 1 {
			b.WriteByte('_')
		}
		for _, read := range Bits {
			a, ok := t.Action(read, State(s))
			if !ok {
				b.WriteString("---")
				continue
			}
			b.WriteString(a.Write.String())
			b.WriteString(a.Move.String())
			b.WriteString(a.Next.String())
		}
	}
	return b.String()
}
