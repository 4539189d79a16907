package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/TuftsBCB/seq"

	"github.com/juliahi/bioio/seqrecord"
)

// Format returns the FASTA string corresponding to the record with the
// sequence wrapped at the number of columns given.
//
// If cols is <= 0, then no wrapping is done.
func Format(rec seqrecord.Record, cols int) string {
	residues := rec.Residues()
	if cols <= 0 || len(residues) == 0 {
		return fmt.Sprintf(">%s\n%s", header(rec), residues)
	}

	wrapped := make([]string, 1+((len(residues)-1)/cols))
	for i := range wrapped {
		start := cols * i
		end := start + cols
		if end > len(residues) {
			end = len(residues)
		}
		wrapped[i] = residues[start:end]
	}
	return fmt.Sprintf(">%s\n%s", header(rec), strings.Join(wrapped, "\n"))
}

func header(rec seqrecord.Record) string {
	switch {
	case len(rec.Description) == 0:
		return rec.ID
	case len(rec.ID) == 0 || strings.HasPrefix(rec.Description, rec.ID):
		return rec.Description
	}
	return rec.ID + " " + rec.Description
}

// newRecord splits a header into an identifier (the first word) and a
// description (the whole header).
func newRecord(hdr string, alpha seqrecord.Alphabet) seqrecord.Record {
	id := hdr
	if i := strings.IndexFunc(hdr, unicode.IsSpace); i >= 0 {
		id = hdr[:i]
	}
	return seqrecord.Record{
		ID:          id,
		Name:        id,
		Description: hdr,
		Seq:         seq.Sequence{Name: id},
		Alphabet:    alpha,
	}
}

func isNull(rec seqrecord.Record) bool {
	return len(rec.Description) == 0 && rec.Seq.Residues == nil
}

// A Reader reads records from FASTA encoded input.
//
// If TrustSequences is true, then sequence data will not be checked to make
// sure that it conforms to the NCBI spec. (See the Read method for details.)
// By default, TrustSequences is false.
type Reader struct {
	// When set to true, the sequences will not be checked for errors.
	// If you trust the data, this may improve performance.
	// This may be set at any time.
	TrustSequences bool

	// The alphabet given to every record read. FASTA files do not say which
	// kind of residues they hold. By default, it is AlphabetGeneric.
	Alphabet seqrecord.Alphabet

	buf        *bufio.Reader
	line       int
	nextHeader []byte
}

func NewReader(r io.Reader) *Reader {
	return &Reader{
		TrustSequences: false,
		Alphabet:       seqrecord.AlphabetGeneric,
		buf:            bufio.NewReader(r),
		line:           1,
		nextHeader:     nil,
	}
}

// ReadAll will read all records in the FASTA input and return them as a
// slice. If an error is encountered, processing is stopped, and the error is
// returned.
func (r *Reader) ReadAll() ([]seqrecord.Record, error) {
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

// Read will read the next record in the FASTA input.
// The format roughly corresponds to that described by NCBI:
// http://blast.ncbi.nlm.nih.gov/blastcgihelp.shtml
//
// In particular, the only characters allowed in the sequence section
// are a-z, A-Z, * and -. Any other character will result in an error.
//
// All lower case letters in the sequence section are translated to upper case.
//
// Blank lines, leading and trailing whitespace are always ignored (regardless
// of where they are).
//
// It is NOT safe to call this function from multiple goroutines.
//
// If the underlying reader is seekable, it is OK to use its seek operation
// provided that you call (*Reader).SeekerReset before the next time Read is
// called. If you don't, the behavior is undefined. Moreover, seeking will
// result in erroneous line numbers in error messages. Finally, you MUST seek
// to a location that corresponds precisely to an entry boundary. i.e., the
// file pointer should be at a '>' character.
func (r *Reader) Read() (seqrecord.Record, error) {
	rec, err := r.ReadRecord(TranslateNormal)
	if !isNull(rec) {
		return rec, nil
	}
	if err == io.EOF {
		return seqrecord.Record{}, err
	}
	if err != nil {
		return seqrecord.Record{}, fmt.Errorf("Error on line %d: %s", r.line, err)
	}
	panic("unreachable")
}

// SeekerReset will reset the internal state of Reader to allow Read to be
// called at arbitrary entry boundaries in the input.
//
// See the comments for Read for more details.
func (r *Reader) SeekerReset() {
	r.nextHeader = nil
}

// ReadRecord is exported for use in other packages that read FASTA-like
// files.
//
// The 'translate' function is used when sequences are checked for valid
// characters.
//
// If you're just reading FASTA files, this method SHOULD NOT be used.
func (r *Reader) ReadRecord(translate Translator) (seqrecord.Record, error) {
	var rec seqrecord.Record
	seenHeader := false

	// Before entering the main loop, we have to check to see if we've
	// already read this entry's header.
	if r.nextHeader != nil {
		rec = newRecord(trimHeader(r.nextHeader), r.Alphabet)
		r.nextHeader = nil
		seenHeader = true
	}
	for {
		line, err := r.buf.ReadBytes('\n')
		if err == io.EOF {
			if len(line) == 0 {
				return rec, io.EOF
			}
		} else if err != nil {
			return seqrecord.Record{}, err
		}
		line = bytes.TrimSpace(line)

		// If it's empty, increment the counter and skip ahead.
		if len(line) == 0 {
			r.line++
			continue
		}

		// If we haven't seen the header yet, this better be it.
		if !seenHeader {
			if line[0] != '>' {
				return seqrecord.Record{},
					fmt.Errorf("Expected '>', got '%c'.", line[0])
			}

			rec = newRecord(trimHeader(line), r.Alphabet)
			seenHeader = true

			r.line++
			continue
		} else if line[0] == '>' {
			// This means we've begun reading the next entry.
			// So slap this line into 'nextHeader' and return the current
			// record.
			r.nextHeader = line

			r.line++
			return rec, nil
		}

		if rec.Seq.Residues == nil {
			rec.Seq.Residues = make([]seq.Residue, 0, 50)
		}
		for _, b := range line {
			if !r.TrustSequences {
				bNew, ok := translate(b)
				if !ok {
					return seqrecord.Record{},
						fmt.Errorf("Invalid character '%c' on line %d.",
							b, r.line)
				}
				b = bNew
			}
			rec.Seq.Residues = append(rec.Seq.Residues, seq.Residue(b))
		}

		r.line++
	}
}

// A Translator is a function that accepts a single character, checks whether
// it's valid, and optionally maps it to a new character.
//
// Translators are ONLY applicable to developers writing their own parsers for
// FASTA-like files. They should not be used to read regular FASTA files.
type Translator func(b byte) (byte, bool)

// TranslateNormal is the default translator for regular (and aligned) FASTA
// files.
func TranslateNormal(b byte) (byte, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		b = byte(unicode.ToTitle(rune(b)))
	case b >= 'A' && b <= 'Z':
	case b == '*':
	case b == '-':
	default:
		return 0, false
	}
	return b, true
}

func trimHeader(line []byte) string {
	return string(bytes.TrimSpace(bytes.TrimLeft(line, ">")))
}

// A Writer writes records to a FASTA encoded file.
//
// The 'Columns' corresponds to the number of columns at which a sequence is
// wrapped. If it's <= 0, then no wrapping will be used.
//
// The header text is never wrapped.
type Writer struct {
	// The number of columns to wrap a sequence at. By default, this
	// is set to 60. A value <= 0 will result in no wrapping.
	Columns int
	buf     *bufio.Writer
}

// NewWriter createa a new FASTA writer that can write records to an
// io.Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		Columns: 60,
		buf:     bufio.NewWriter(w),
	}
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}

// Write writes a single record to the underlying io.Writer.
//
// You may need to call Flush in order for the changes to be written.
func (w *Writer) Write(rec seqrecord.Record) error {
	_, err := w.buf.WriteString(Format(rec, w.Columns) + "\n")
	return err
}

// WriteAll writes a slice of records to the underyling io.Writer, and
// calls Flush.
func (w *Writer) WriteAll(recs []seqrecord.Record) error {
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}
