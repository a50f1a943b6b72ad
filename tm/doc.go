package tm

/*

# Transition tables for two-symbol machines

This package provides the "program" side of the n-gram closure decider: a
finite lookup from (control state, symbol under the head) to either an
action or the halting indicator.

The decider only needs the Program interface. Table is the concrete
implementation, sized for any number of states so that small synthetic
machines can be built directly in tests.

## Encodings

Parse accepts the two text forms in common use for 5-state machines:

	1RB0LC_0LA1RD_1LA0RB_1LE---_0RA1RE   (34 characters, 7 per state)
	1RB0LC0LA1RD1LA0RB1LE---0RA1RE       (30 characters, 6 per state)

Each state block holds the rule for read 0 followed by the rule for read 1,
each rule being `write move next`. A next state of '-', 'Z' or 'H' marks the
rule as undefined (halting), in which case the write and move characters are
not inspected.

ParseBytes additionally accepts the raw byte values used by the packed seed
database: write 0/1, move 0 (right) / 1 (left), next 1..5 with 0 for halt.

## Simulation

Simulate runs a Program from the blank tape for a bounded number of steps.
It is not used by the decider; it exists to cross check its answers.

*/
