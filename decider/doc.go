// Package decider runs the n-gram closure classifier over a seed database.
//
// A Batch reads machine indices from an index stream, classifies the
// machines concurrently and writes each index to either the looping or the
// undecided sink. Machines are classified in chunks and the results of a
// chunk are written in input order, so the output files are identical to
// those of a sequential run whatever the worker count.
package decider
