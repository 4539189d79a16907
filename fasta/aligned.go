package fasta

import (
	"fmt"
	"io"

	"github.com/juliahi/bioio/seqrecord"
)

type AlignedReader struct {
	// See the exported fields of Reader for options.
	*Reader
	seqLen int // set after the first read
}

func NewAlignedReader(r io.Reader) *AlignedReader {
	return &AlignedReader{
		Reader: NewReader(r),
		seqLen: -1,
	}
}

// ReadAll will read all records in the aligned FASTA input and return them
// as a slice.
// If an error is encountered, processing is stopped, and the error is
// returned.
// All records have the same sequence length, otherwise an error occurs.
func (r *AlignedReader) ReadAll() ([]seqrecord.Record, error) {
	recs := make([]seqrecord.Record, 0, 100)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Read will read the next record in the aligned FASTA input.
//
// The aligned format follows immediate from the format of a regular FASTA
// file: all sequences must be the same length, '-' indicate gaps, and the
// n'th letter of any sequence is the n'th column in the alignment.
//
// See (*Reader).Read for more details.
func (r *AlignedReader) Read() (seqrecord.Record, error) {
	rec, err := r.Reader.Read()
	if err != nil {
		return seqrecord.Record{}, err
	}
	if r.seqLen == -1 {
		r.seqLen = rec.Len()
	} else if r.seqLen != rec.Len() {
		return seqrecord.Record{},
			fmt.Errorf("Sequence '%s' has length %d, but other "+
				"sequences have length %d.", rec.ID, rec.Len(), r.seqLen)
	}
	return rec, nil
}

// An AlignedWriter writes records to an aligned FASTA encoded file.
//
// See the exported fields of Writer for options that can be set.
type AlignedWriter struct {
	*Writer
	seqLen int
}

// NewAlignedWriter createa a new aligned FASTA writer that can write records
// to an io.Writer.
func NewAlignedWriter(w io.Writer) *AlignedWriter {
	return &AlignedWriter{
		Writer: NewWriter(w),
		seqLen: -1,
	}
}

// Write writes a single aligned record to the underlying io.Writer.
//
// An error is returned if the length of the sequence is not the same length
// as other sequences that have already been written.
//
// You may need to call Flush in order for the changes to be written.
func (w *AlignedWriter) Write(rec seqrecord.Record) error {
	if w.seqLen == -1 {
		w.seqLen = rec.Len()
	} else if w.seqLen != rec.Len() {
		return fmt.Errorf("Sequence '%s' has length %d, but other sequences "+
			"have length %d.", rec.ID, rec.Len(), w.seqLen)
	}
	return w.Writer.Write(rec)
}

// WriteAll writes a slice of aligned records to the underyling io.Writer,
// and calls Flush.
func (w *AlignedWriter) WriteAll(recs []seqrecord.Record) error {
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}
