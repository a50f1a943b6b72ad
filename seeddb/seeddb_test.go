package seeddb

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/forestrie/go-ngramcps/tm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// packRecord converts a 34 character encoding to a raw seed record.
func packRecord(t *testing.T, enc string) []byte {
	t.Helper()
	tab, err := tm.Parse(enc)
	require.NoError(t, err)

	rec := make([]byte, 0, RecordBytes)
	for s := tm.StateA; s <= tm.EncodedStates; s++ {
		for _, read := range tm.Bits {
			a, ok := tab.Action(read, s)
			if !ok {
				rec = append(rec, 0, 0, 0)
				continue
			}
			move := byte(0)
			if a.Move == tm.Left {
				move = 1
			}
			rec = append(rec, byte(a.Write), move, byte(a.Next))
		}
	}
	return rec
}

func testDatabase(t *testing.T, encs ...string) []byte {
	t.Helper()
	db := make([]byte, RecordBytes) // header
	for _, enc := range encs {
		db = append(db, packRecord(t, enc)...)
	}
	return db
}

func TestRecordOffset(t *testing.T) {
	assert.Equal(t, int64(30), RecordOffset(0))
	assert.Equal(t, int64(60), RecordOffset(1))
	assert.Equal(t, int64(30)*(1<<32), RecordOffset(^uint32(0)))
}

func TestSeedDBMachine(t *testing.T) {
	encs := []string{
		"1RB0LC_0LA1RD_1LA0RB_1LE---_0RA1RE",
		"1RB1LB_1LA---_------_------_------",
	}
	data := testDatabase(t, encs...)
	db := NewSeedDB(bytes.NewReader(data), int64(len(data)))
	assert.Equal(t, 2, db.Len())

	for i, enc := range encs {
		m, err := db.Machine(uint32(i))
		require.NoError(t, err)
		assert.Equal(t, enc, m.String())
	}

	_, err := db.Record(2)
	assert.ErrorIs(t, err, ErrShortRecord)
}

func TestSeedDBShortRecord(t *testing.T) {
	data := testDatabase(t, "1RB0LC_0LA1RD_1LA0RB_1LE---_0RA1RE")
	data = data[:len(data)-1]
	db := NewSeedDB(bytes.NewReader(data), -1)
	assert.Equal(t, 0, db.Len())

	_, err := db.Machine(0)
	assert.ErrorIs(t, err, ErrShortRecord)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed")
	require.NoError(t, os.WriteFile(path, testDatabase(t, "0RA---_------_------_------_------"), 0o644))

	db, f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, 1, db.Len())

	m, err := db.Machine(0)
	require.NoError(t, err)
	a, ok := m.Action(tm.Zero, tm.StateA)
	require.True(t, ok)
	assert.Equal(t, tm.Action{Next: tm.StateA, Write: tm.Zero, Move: tm.Right}, a)

	_, _, err = Open(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestOutputNames(t *testing.T) {
	assert.Equal(t, "index-looping-n-4", LoopingIndexName(4))
	assert.Equal(t, "index-undecided-n-12", UndecidedIndexName(12))
}
