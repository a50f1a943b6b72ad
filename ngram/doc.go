package ngram

/*

# N-gram closure proofs of non-halting

This package decides, for a two-symbol machine, whether it can be proven to
run forever from the blank tape. It never simulates the unbounded tape.
Instead it tracks a bounded window of the tape around the head (a local
context) and abstracts everything beyond the window into "which radius-wide
bit patterns are known to appear at an edge" (n-grams).

## Window layout

For a radius r the window holds 2r+1 cells packed into a uint64:

	bit     0 ...  r-1 |  r   | r+1 ... 2r
	        left edge  | head | right edge

Bit 0 is the leftmost cell. The left edge n-gram is bits [0, r) taken as is,
the right edge n-gram is bits [r+1, 2r+1) shifted down by r+1. With r at most
31 the window uses at most 63 bits, and bit 2r+1 is always zero between
operations so a left push can drop the cell that falls off the right edge by
masking.

## Algorithm

PartialReachable starts with the single blank context (state A, all zero
window) and the all zero n-gram on each side. Saturate runs a work list
forward from the known contexts. For each context it looks up the rule for
the head cell:

 1. an undefined rule stops saturation, the context may halt
 2. the n-gram on the trailing edge falls off the window and is recorded as
    reachable on that side, which releases any contexts waiting on it
 3. for both values of the newly exposed cell the successor context is
    recorded as reachable if its leading edge n-gram is already known,
    otherwise the context waits on that n-gram

Saturation also stops once more than the caller's budget of contexts is
known. ClosedUnderProgramStep then checks, read only, that every known
context steps only into known contexts. If it does, the blank tape machine
can never reach an undefined rule.

Classify runs exactly one saturation pass and one verification pass. The
procedure is sound but incomplete: LoopsForever is a proof, MayHalt only
means no proof was found.

*/
