package seeddb

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/forestrie/go-ngramcps/tm"
)

// SeedDB gives random access to the machine records of a seed database.
type SeedDB struct {
	r    io.ReaderAt
	size int64
}

// NewSeedDB wraps r. size is the total byte length of the database, or a
// negative value if unknown, in which case Len reports 0.
func NewSeedDB(r io.ReaderAt, size int64) *SeedDB {
	return &SeedDB{r: r, size: size}
}

// Open opens the seed database at path. The caller must Close the returned
// file once done with the database.
func Open(path string) (*SeedDB, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return NewSeedDB(f, fi.Size()), f, nil
}

// Len returns the number of machine records, not counting the header.
func (db *SeedDB) Len() int {
	if db.size < 0 {
		return 0
	}
	n := db.size/RecordBytes - HeaderRecords
	if n < 0 {
		return 0
	}
	return int(n)
}

// Record returns the raw record of machine i.
func (db *SeedDB) Record(i uint32) ([]byte, error) {
	rec := make([]byte, RecordBytes)
	n, err := db.r.ReadAt(rec, RecordOffset(i))
	if n == RecordBytes {
		return rec, nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return nil, fmt.Errorf(
			"%w: got %d of %d bytes for machine_index=%d", ErrShortRecord, n, RecordBytes, i)
	}
	return nil, err
}

// Machine reads and parses machine i.
func (db *SeedDB) Machine(i uint32) (*tm.Table, error) {
	rec, err := db.Record(i)
	if err != nil {
		return nil, err
	}
	t, err := tm.ParseBytes(rec)
	if err != nil {
		return nil, fmt.Errorf("machine_index=%d: %w", i, err)
	}
	return t, nil
}
