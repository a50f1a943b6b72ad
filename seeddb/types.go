package seeddb

import (
	"errors"
	"fmt"

	"github.com/forestrie/go-ngramcps/tm"
)

const (
	// RecordBytes is the fixed width of a seed database record.
	RecordBytes = tm.PackedLength

	// HeaderRecords is the number of records before the first machine.
	HeaderRecords = 1

	// IndexBytes is the width of one entry in an index file.
	IndexBytes = 4
)

var (
	ErrShortRecord     = errors.New("seeddb: machine record is incomplete")
	ErrTruncatedIndex  = errors.New("seeddb: index file ends with a partial entry")
	ErrWriteIncomplete = errors.New("seeddb: index write was shorter than an entry")
)

// RecordOffset returns the byte offset of machine index i.
func RecordOffset(i uint32) int64 {
	return (int64(i) + HeaderRecords) * RecordBytes
}

// LoopingIndexName is the output file for machines proven to loop.
func LoopingIndexName(radius uint8) string {
	return fmt.Sprintf("index-looping-n-%d", radius)
}

// UndecidedIndexName is the output file for machines left undecided.
func UndecidedIndexName(radius uint8) string {
	return fmt.Sprintf("index-undecided-n-%d", radius)
}
