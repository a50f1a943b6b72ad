// Package seeddb reads and writes the batch files of the decider.
//
// The seed database is a flat file of fixed 30 byte machine records. Record 0
// is a header and is never a machine, so machine i lives at bytes
//
//	[(i+1)*30, (i+2)*30)
//
// Each record is the packed transition table understood by tm.ParseBytes.
//
// Index files are flat sequences of 4 byte big-endian machine indices. They
// are used both for the list of machines to classify and for the looping and
// undecided outputs.
package seeddb
