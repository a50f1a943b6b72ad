package seeddb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// IndexReader decodes a stream of big-endian machine indices.
type IndexReader struct {
	r   io.Reader
	buf [IndexBytes]byte
}

func NewIndexReader(r io.Reader) *IndexReader {
	return &IndexReader{r: bufio.NewReader(r)}
}

// Next returns the next index. It returns io.EOF after the last complete
// entry and ErrTruncatedIndex if the stream ends part way through one.
func (ir *IndexReader) Next() (uint32, error) {
	_, err := io.ReadFull(ir.r, ir.buf[:])
	if err == nil {
		return readU32BE(ir.buf[:]), nil
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, ErrTruncatedIndex
	}
	return 0, err
}

// ReadIndexFile returns every index in the file at path.
func ReadIndexFile(path string) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var indices []uint32
	ir := NewIndexReader(f)
	for {
		i, err := ir.Next()
		if errors.Is(err, io.EOF) {
			return indices, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		indices = append(indices, i)
	}
}

// IndexWriter encodes machine indices as big-endian entries. Writes are
// buffered, call Flush when done.
type IndexWriter struct {
	w     *bufio.Writer
	buf   [IndexBytes]byte
	count int
}

func NewIndexWriter(w io.Writer) *IndexWriter {
	return &IndexWriter{w: bufio.NewWriter(w)}
}

// Write appends index i.
func (iw *IndexWriter) Write(i uint32) error {
	writeU32BE(iw.buf[:], i)
	n, err := iw.w.Write(iw.buf[:])
	if err != nil {
		return err
	}
	if n != IndexBytes {
		return ErrWriteIncomplete
	}
	iw.count++
	return nil
}

// Count returns the number of indices written.
func (iw *IndexWriter) Count() int { return iw.count }

// Flush writes any buffered entries to the underlying writer.
func (iw *IndexWriter) Flush() error { return iw.w.Flush() }
