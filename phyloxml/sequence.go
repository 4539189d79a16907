package phyloxml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/juliahi/bioio/seqrecord"
)

// Sequence is a molecular sequence (protein, DNA or RNA) associated with a
// node.
//
// One intended use of IDRef is to link a sequence to a taxonomy (via the
// taxonomy's IDSource) when a node has multiple sequences and taxonomies.
type Sequence struct {
	Type     string // restricted: dna, rna or protein
	IDRef    string
	IDSource string

	// A short symbol of at most 10 characters, e.g., 'ACTM'.
	Symbol string

	Accession *Accession

	// Full name, e.g., 'muscle Actin'.
	Name string

	// Location of the sequence on a genome/chromosome.
	Location string

	MolSeq             *MolSeq
	URI                *Uri
	DomainArchitecture *DomainArchitecture

	Annotations []*Annotation
	Other       []*Other
}

// NewSequence checks the restricted fields of s with the default checker and
// returns a pointer to a copy of it.
func NewSequence(s Sequence) (*Sequence, error) {
	if err := s.Check(nil); err != nil {
		return nil, err
	}
	return &s, nil
}

// Check checks the restricted fields of s. A nil checker means the default.
// Nested elements are not checked again.
func (s *Sequence) Check(c *Checker) error {
	return checker(c).checks("Sequence",
		fieldCheck{"type", s.Type, seqTypeRule},
		fieldCheck{"symbol", s.Symbol, symbolRule},
	)
}

func (s *Sequence) String() string {
	var acc string
	if s.Accession != nil {
		acc = s.Accession.String()
	}
	return label("Sequence", s.Name, s.Symbol, acc)
}

var alphabetTypes = map[seqrecord.Alphabet]string{
	seqrecord.AlphabetDNA:     "dna",
	seqrecord.AlphabetRNA:     "rna",
	seqrecord.AlphabetProtein: "protein",
}

// SequenceFromRecord builds a sequence from a generic sequence record.
//
// The record's identifier becomes the accession, its name becomes the symbol
// and its description the name. The sequence type is inferred from the
// alphabet and is left empty for generic alphabets. A single annotation is
// built from the record annotations "ref", "source", "evidence", "type",
// "desc", "confidence", "properties" and "uri", ignoring the ones that are
// missing. If the record has features, a domain architecture with one
// domain per feature is built as well.
//
// Restricted values are checked with the default checker.
func SequenceFromRecord(rec seqrecord.Record) (*Sequence, error) {
	s := &Sequence{
		Type:      alphabetTypes[rec.Alphabet],
		Accession: &Accession{Value: rec.ID},
		Symbol:    rec.Name,
		Name:      rec.Description,
		MolSeq:    &MolSeq{Value: rec.Residues()},
	}

	annot, err := annotationFromRecord(rec)
	if err != nil {
		return nil, err
	}
	s.Annotations = []*Annotation{annot}

	if len(rec.Features) > 0 {
		da := &DomainArchitecture{
			Length:  rec.Len(),
			Domains: make([]*ProteinDomain, len(rec.Features)),
		}
		for i, feat := range rec.Features {
			if da.Domains[i], err = ProteinDomainFromFeature(feat); err != nil {
				return nil, err
			}
		}
		s.DomainArchitecture = da
	}

	if err := s.Check(nil); err != nil {
		return nil, err
	}
	if err := s.MolSeq.Check(nil); err != nil {
		return nil, err
	}
	return s, nil
}

// ToRecord converts the sequence to a generic sequence record with the
// residues, an alphabet matching the type, and the accession, symbol and
// name as identifier, name and description.
//
// Annotations and the domain architecture are not copied to the record.
func (s *Sequence) ToRecord() seqrecord.Record {
	alpha := seqrecord.AlphabetGeneric
	for a, typ := range alphabetTypes {
		if typ == s.Type {
			alpha = a
		}
	}
	var id, residues string
	if s.Accession != nil {
		id = s.Accession.Value
	}
	if s.MolSeq != nil {
		residues = s.MolSeq.Value
	}
	rec := seqrecord.NewRecord(id, residues, alpha)
	rec.Name = s.Symbol
	rec.Description = s.Name
	return rec
}

func annotationFromRecord(rec seqrecord.Record) (*Annotation, error) {
	a := &Annotation{}
	text := func(key string, field *string) {
		if v, ok := rec.Annotation(key); ok && v != nil {
			*field = fmt.Sprint(v)
		}
	}
	text("ref", &a.Ref)
	text("source", &a.Source)
	text("evidence", &a.Evidence)
	text("type", &a.Type)
	text("desc", &a.Desc)

	var err error
	if v, ok := rec.Annotation("confidence"); ok {
		if a.Confidence, err = confidenceValue(v); err != nil {
			return nil, err
		}
	}
	if v, ok := rec.Annotation("properties"); ok {
		if a.Properties, err = propertiesValue(v); err != nil {
			return nil, err
		}
	}
	if v, ok := rec.Annotation("uri"); ok {
		if a.URI, err = uriValue(v); err != nil {
			return nil, err
		}
	}
	if err := a.Check(nil); err != nil {
		return nil, err
	}
	return a, nil
}

// confidenceValue accepts a Confidence, a bare number or a [value, type]
// pair, where numbers may be of any numeric kind or a numeric string. Other
// values are reported to the default checker and give no confidence.
func confidenceValue(v interface{}) (*Confidence, error) {
	switch c := v.(type) {
	case *Confidence:
		return c, nil
	case Confidence:
		return &c, nil
	case []interface{}:
		if len(c) == 2 {
			val, vok := toFloat(c[0])
			typ, tok := c[1].(string)
			if vok && tok {
				return &Confidence{Value: val, Type: typ}, nil
			}
		}
	default:
		if val, ok := toFloat(v); ok {
			return &Confidence{Value: val}, nil
		}
	}
	return nil, checker(nil).Check("Annotation", "confidence",
		fmt.Sprint(v), Number)
}

// toFloat converts any numeric kind, or a string holding a number, to a
// float64.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// propertiesValue accepts a list of properties, either as elements or as
// maps keyed by the phyloXML attribute names.
func propertiesValue(v interface{}) ([]*Property, error) {
	var props []*Property
	switch ps := v.(type) {
	case []*Property:
		props = ps
	case []Property:
		for i := range ps {
			props = append(props, &ps[i])
		}
	case []map[string]string:
		for _, m := range ps {
			props = append(props, &Property{
				Value:     m["value"],
				Ref:       m["ref"],
				AppliesTo: m["applies_to"],
				Datatype:  m["datatype"],
				Unit:      m["unit"],
				IDRef:     m["id_ref"],
			})
		}
	default:
		return nil, annotationErr("properties", v)
	}
	for _, p := range props {
		if err := p.Check(nil); err != nil {
			return nil, err
		}
	}
	return props, nil
}

// uriValue accepts a Uri, a bare string or a map keyed by "value", "desc"
// and "type".
func uriValue(v interface{}) (*Uri, error) {
	switch u := v.(type) {
	case *Uri:
		return u, nil
	case Uri:
		return &u, nil
	case string:
		return &Uri{Value: u}, nil
	case map[string]string:
		return &Uri{Value: u["value"], Desc: u["desc"], Type: u["type"]}, nil
	}
	return nil, annotationErr("uri", v)
}

func annotationErr(key string, v interface{}) error {
	return fmt.Errorf("phyloxml: record annotation '%s' has unsupported "+
		"type %T", key, v)
}

// ProteinDomain is an individual domain in a domain architecture.
//
// Start and End use 0-based, half-open coordinates like seqrecord features,
// rather than the biological convention of counting from 1. They can be used
// directly as slice indexes into the residues.
type ProteinDomain struct {
	Value string
	Start int
	End   int

	// Can be used to store, e.g., E-values.
	Confidence *float64

	ID string
}

// ProteinDomainFromFeature builds a domain from a feature's identifier and
// resolved location. The "confidence" qualifier is used when it holds a
// number. Any other value is reported to the default checker and leaves
// the confidence unset, so an error is only returned in Strict mode.
func ProteinDomainFromFeature(feat seqrecord.Feature) (*ProteinDomain, error) {
	d := &ProteinDomain{
		Value: feat.ID,
		Start: feat.Location.ResolvedStart(),
		End:   feat.Location.ResolvedEnd(),
	}
	if q, ok := feat.Qualifier("confidence"); ok {
		if conf, ok := toFloat(q); ok {
			d.Confidence = &conf
		} else if err := checker(nil).Check("ProteinDomain", "confidence",
			q, Number); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// ToFeature converts the domain to a feature spanning [Start, End) with the
// domain's value as identifier. The "confidence" qualifier is only set if
// the domain has a confidence.
func (d *ProteinDomain) ToFeature() seqrecord.Feature {
	feat := seqrecord.Feature{
		ID:       d.Value,
		Location: seqrecord.NewLocation(d.Start, d.End),
	}
	if d.Confidence != nil {
		feat.SetQualifier("confidence",
			strconv.FormatFloat(*d.Confidence, 'g', -1, 64))
	}
	return feat
}

func (d *ProteinDomain) String() string {
	return label("ProteinDomain", d.Value, d.ID)
}
