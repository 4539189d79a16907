package phyloxml

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const maxLabelLen = 40

// label formats an element as its type name followed by the first non-empty
// identifying attribute, cut to maxLabelLen characters.
func label(typ string, attrs ...string) string {
	for _, a := range attrs {
		if len(a) == 0 {
			continue
		}
		if utf8.RuneCountInString(a) > maxLabelLen {
			a = string([]rune(a)[:maxLabelLen-3]) + "..."
		}
		return typ + " " + a
	}
	return typ
}

// Accession is the local part of a sequence identifier. In
// 'UniProtKB:P17304', the value is 'P17304' and the source is 'UniProtKB'.
type Accession struct {
	Value  string
	Source string
}

func (a Accession) String() string {
	if len(a.Source) == 0 {
		return a.Value
	}
	return a.Source + ":" + a.Value
}

// Annotation is the annotation of a molecular sequence. The Ref attribute is
// the recommended way to annotate, e.g., 'GO:0008270' or 'EC:1.1.1.1'.
type Annotation struct {
	Ref      string // restricted: "source:identifier"
	Source   string
	Evidence string
	Type     string

	Desc       string
	Confidence *Confidence
	URI        *Uri
	Properties []*Property
}

// NewAnnotation checks the restricted fields of a with the default checker
// and returns a pointer to a copy of it.
func NewAnnotation(a Annotation) (*Annotation, error) {
	if err := a.Check(nil); err != nil {
		return nil, err
	}
	return &a, nil
}

// Check checks the restricted fields of a. A nil checker means the default.
func (a *Annotation) Check(c *Checker) error {
	return checker(c).Check("Annotation", "ref", a.Ref, refRule)
}

func (a *Annotation) String() string {
	return label("Annotation", a.Ref, a.Desc)
}

// BinaryCharacters holds the names and/or counts of binary characters
// present, gained and lost at the root of a clade.
type BinaryCharacters struct {
	Type         string
	GainedCount  *int
	LostCount    *int
	PresentCount *int
	AbsentCount  *int

	Gained  []string
	Lost    []string
	Present []string
	Absent  []string
}

func (bc *BinaryCharacters) String() string {
	return label("BinaryCharacters", bc.Type)
}

// CladeRelation is a typed relationship between two clades, referenced by
// their id_source attributes. It can describe, e.g., multiple parents of a
// clade.
type CladeRelation struct {
	Type       string
	IDRef0     string
	IDRef1     string
	Distance   *float64
	Confidence *Confidence
}

func (r *CladeRelation) String() string {
	return label("CladeRelation", r.Type)
}

// Confidence is a typed support value, e.g., a bootstrap value of a clade
// (in which case Type is 'bootstrap').
type Confidence struct {
	Value float64
	Type  string
}

// NewConfidence returns a confidence with the given value and type.
func NewConfidence(value float64, typ string) *Confidence {
	return &Confidence{Value: value, Type: typ}
}

func (c *Confidence) String() string {
	if len(c.Type) == 0 {
		return fmt.Sprintf("Confidence %g", c.Value)
	}
	return fmt.Sprintf("Confidence %g (%s)", c.Value, c.Type)
}

// Date is a date associated with a clade. It is given as a number (Value,
// preferably with a Unit such as 'mya') and/or as free text (Desc, e.g.,
// 'Silurian').
type Date struct {
	Value   *float64
	Unit    string
	Desc    string
	Minimum *float64
	Maximum *float64
}

func (d *Date) String() string {
	if len(d.Unit) > 0 && d.Value != nil {
		return fmt.Sprintf("Date %g %s", *d.Value, d.Unit)
	}
	return label("Date", d.Desc)
}

// Distribution is the geographic distribution of the items of a clade,
// described by text and/or by points and polygons. Coordinates are stored
// as given.
type Distribution struct {
	Desc     string
	Points   []*Point
	Polygons []*Polygon
}

func (d *Distribution) String() string {
	return label("Distribution", d.Desc)
}

// DomainArchitecture is the domain architecture of a protein.
type DomainArchitecture struct {
	// Total length of the protein sequence.
	Length  int
	Domains []*ProteinDomain
}

func (da *DomainArchitecture) String() string {
	return fmt.Sprintf("DomainArchitecture %d (%d domains)",
		da.Length, len(da.Domains))
}

// Id is an identifier along with its provider (or authority), e.g., NCBI.
type Id struct {
	Value    string
	Provider string
}

func (id *Id) String() string {
	if len(id.Provider) == 0 {
		return id.Value
	}
	return id.Provider + ":" + id.Value
}

// MolSeq is a molecular sequence as a string of residues.
type MolSeq struct {
	Value string // restricted: residue letters and gaps

	// True if the sequence is aligned, usually meaning that gaps are present
	// and all aligned sequences have the same length.
	IsAligned *bool
}

// NewMolSeq checks value with the default checker and returns a molecular
// sequence holding it.
func NewMolSeq(value string, aligned *bool) (*MolSeq, error) {
	ms := &MolSeq{Value: value, IsAligned: aligned}
	if err := ms.Check(nil); err != nil {
		return nil, err
	}
	return ms, nil
}

// Check checks the restricted fields of ms. A nil checker means the default.
func (ms *MolSeq) Check(c *Checker) error {
	return checker(c).Check("MolSeq", "value", ms.Value, molSeqRule)
}

func (ms *MolSeq) String() string {
	return ms.Value
}

// Other holds an element from a foreign namespace. Usually it has either a
// value or children, but this is not enforced.
type Other struct {
	Tag        string
	Namespace  string
	Attributes map[string]string
	Value      string
	Children   []*Other
}

func (o *Other) String() string {
	if len(o.Namespace) == 0 {
		return label("Other", o.Tag)
	}
	return label("Other", "{"+o.Namespace+"}"+o.Tag)
}

// Point is a pair of geographic coordinates with an optional altitude.
type Point struct {
	GeodeticDatum string // e.g., 'WGS84'
	Lat           float64
	Long          float64
	Alt           *float64
	AltUnit       string
}

func (p *Point) String() string {
	return fmt.Sprintf("Point %g, %g (%s)", p.Lat, p.Long, p.GeodeticDatum)
}

// Polygon is defined by three or more vertices.
type Polygon struct {
	Points []*Point
}

func (p *Polygon) String() string {
	return fmt.Sprintf("Polygon (%d points)", len(p.Points))
}

// Property is a typed and referenced property from an external resource,
// e.g., Ref 'NOAA:depth' with Unit 'METRIC:m' and Datatype 'xsd:decimal'.
type Property struct {
	Value     string
	Ref       string // restricted: "source:identifier"
	AppliesTo string // restricted: phylogeny, clade, node, ...
	Datatype  string // restricted: xsd datatypes
	Unit      string // restricted: "source:identifier"
	IDRef     string
}

// NewProperty checks the restricted fields of p with the default checker and
// returns a pointer to a copy of it.
func NewProperty(p Property) (*Property, error) {
	if err := p.Check(nil); err != nil {
		return nil, err
	}
	return &p, nil
}

// Check checks the restricted fields of p. A nil checker means the default.
func (p *Property) Check(c *Checker) error {
	return checker(c).checks("Property",
		fieldCheck{"ref", p.Ref, refRule},
		fieldCheck{"applies_to", p.AppliesTo, appliesToRule},
		fieldCheck{"datatype", p.Datatype, datatypeRule},
		fieldCheck{"unit", p.Unit, refRule},
	)
}

func (p *Property) String() string {
	return label("Property", p.Value, p.Ref)
}

// Reference is a literature reference. DOI is preferred over Desc.
type Reference struct {
	DOI  string // restricted: "prefix/suffix"
	Desc string
}

// NewReference checks the restricted fields of r with the default checker
// and returns a pointer to a copy of it.
func NewReference(r Reference) (*Reference, error) {
	if err := r.Check(nil); err != nil {
		return nil, err
	}
	return &r, nil
}

// Check checks the restricted fields of r. A nil checker means the default.
func (r *Reference) Check(c *Checker) error {
	return checker(c).Check("Reference", "doi", r.DOI, doiRule)
}

func (r *Reference) String() string {
	return label("Reference", r.DOI, r.Desc)
}

// SequenceRelation is a typed relationship between two sequences, e.g., an
// orthology.
type SequenceRelation struct {
	Type       string // restricted: orthology, paralogy, ...
	IDRef0     string
	IDRef1     string
	Distance   *float64
	Confidence *Confidence
}

// NewSequenceRelation checks the restricted fields of r with the default
// checker and returns a pointer to a copy of it.
func NewSequenceRelation(r SequenceRelation) (*SequenceRelation, error) {
	if err := r.Check(nil); err != nil {
		return nil, err
	}
	return &r, nil
}

// Check checks the restricted fields of r. A nil checker means the default.
func (r *SequenceRelation) Check(c *Checker) error {
	return checker(c).Check("SequenceRelation", "type", r.Type,
		seqRelationTypeRule)
}

func (r *SequenceRelation) String() string {
	return label("SequenceRelation", r.Type)
}

// Taxonomy describes the taxonomic information of a clade.
type Taxonomy struct {
	// Links other elements to this taxonomy at the XML level.
	IDSource string

	// e.g., Id{"6500", "ncbi_taxonomy"} for the California sea hare.
	ID *Id

	// A UniProt/Swiss-Prot style organism code, e.g., 'APLCA'.
	Code string

	ScientificName string
	Authority      string
	Rank           string // restricted: a taxonomic rank
	URI            *Uri

	CommonNames []string
	Synonyms    []string
	Other       []*Other
}

// NewTaxonomy checks the restricted fields of t with the default checker and
// returns a pointer to a copy of it.
func NewTaxonomy(t Taxonomy) (*Taxonomy, error) {
	if err := t.Check(nil); err != nil {
		return nil, err
	}
	return &t, nil
}

// Check checks the restricted fields of t. A nil checker means the default.
func (t *Taxonomy) Check(c *Checker) error {
	return checker(c).checks("Taxonomy",
		fieldCheck{"code", t.Code, codeRule},
		fieldCheck{"rank", t.Rank, rankRule},
	)
}

func (t *Taxonomy) String() string {
	var id string
	if t.ID != nil {
		id = t.ID.String()
	}
	return label("Taxonomy", t.Code, t.ScientificName, t.Rank, id)
}

// Uri is a uniform resource identifier, usually a URL. For example, a link
// to an image would have Type 'image'.
type Uri struct {
	Value string
	Desc  string
	Type  string
}

func (u *Uri) String() string {
	return strings.TrimSpace(u.Value)
}
