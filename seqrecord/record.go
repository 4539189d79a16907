package seqrecord

import (
	"fmt"

	"github.com/TuftsBCB/seq"
)

// Alphabet is a coarse tag describing which kind of residues a record holds.
type Alphabet int

const (
	AlphabetGeneric Alphabet = iota
	AlphabetDNA
	AlphabetRNA
	AlphabetProtein
)

func (a Alphabet) String() string {
	switch a {
	case AlphabetGeneric:
		return "generic"
	case AlphabetDNA:
		return "dna"
	case AlphabetRNA:
		return "rna"
	case AlphabetProtein:
		return "protein"
	}
	panic(fmt.Sprintf("BUG: Unknown alphabet '%d'.", int(a)))
}

// Record is a sequence along with its identifying information, features and
// annotations.
type Record struct {
	// A unique identifier, e.g., an accession number.
	ID string

	// A short name for the sequence, which may be empty.
	Name string

	// Free text describing the sequence.
	Description string

	// The residues. Seq.Name is kept equal to ID by NewRecord.
	Seq seq.Sequence

	Alphabet Alphabet

	// Features found on the sequence, in the order they were added.
	Features []Feature

	// Annotations holds any other information about the sequence. Values
	// are usually strings, but consumers may store richer values.
	Annotations map[string]interface{}
}

// NewRecord returns a record with the given identifier and residues, and an
// empty annotation map.
func NewRecord(id, residues string, alpha Alphabet) Record {
	return Record{
		ID:          id,
		Seq:         seq.NewSequenceString(id, residues),
		Alphabet:    alpha,
		Annotations: make(map[string]interface{}),
	}
}

// Len returns the number of residues in the record.
func (r Record) Len() int {
	return len(r.Seq.Residues)
}

// Residues returns the residues of the record as a string.
func (r Record) Residues() string {
	return fmt.Sprintf("%s", r.Seq.Residues)
}

// Annotation returns the annotation stored under key and whether it exists.
func (r Record) Annotation(key string) (interface{}, bool) {
	if r.Annotations == nil {
		return nil, false
	}
	v, ok := r.Annotations[key]
	return v, ok
}

// SetAnnotation stores an annotation, allocating the map if needed.
func (r *Record) SetAnnotation(key string, v interface{}) {
	if r.Annotations == nil {
		r.Annotations = make(map[string]interface{})
	}
	r.Annotations[key] = v
}

// Subsequence returns the residues covered by the feature's resolved
// location. An error is returned if the location falls outside the record.
func (r Record) Subsequence(f Feature) ([]seq.Residue, error) {
	start, end := f.Location.ResolvedStart(), f.Location.ResolvedEnd()
	if start < 0 || end > r.Len() || start > end {
		return nil, fmt.Errorf("seqrecord: location [%d, %d) is outside of "+
			"sequence '%s' with length %d", start, end, r.ID, r.Len())
	}
	return r.Seq.Residues[start:end], nil
}

func (r Record) String() string {
	return fmt.Sprintf("ID: %s\nName: %s\nDescription: %s\n"+
		"Number of features: %d\n%s(%s)",
		r.ID, r.Name, r.Description, len(r.Features), r.Alphabet, r.Residues())
}
