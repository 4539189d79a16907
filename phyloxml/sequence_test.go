package phyloxml

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/juliahi/bioio/seqrecord"
)

func TestProteinDomainFeatureRoundTrip(t *testing.T) {
	feat := seqrecord.Feature{
		ID: "CARD",
		Location: seqrecord.Location{
			Start: seqrecord.Position{Pos: 4, Fuzz: seqrecord.Before},
			End: seqrecord.Position{
				Pos: 90, Extension: 2, Fuzz: seqrecord.Within},
		},
		Qualifiers: map[string]string{"confidence": "1.2e-10", "note": "x"},
	}
	d, err := ProteinDomainFromFeature(feat)
	if err != nil {
		t.Fatal(err)
	}
	conf := 1.2e-10
	want := &ProteinDomain{Value: "CARD", Start: 4, End: 92, Confidence: &conf}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Fatalf("Domain mismatch (-want +got):\n%s", diff)
	}

	back := d.ToFeature()
	if back.ID != "CARD" {
		t.Fatalf("Expected ID 'CARD', got '%s'.", back.ID)
	}
	if back.Location.ResolvedStart() != 4 || back.Location.ResolvedEnd() != 92 {
		t.Fatalf("Coordinates not preserved: %s", back.Location)
	}
	if q, _ := back.Qualifier("confidence"); q != "1.2e-10" {
		t.Fatalf("Confidence not preserved: '%s'.", q)
	}
	if _, ok := back.Qualifier("note"); ok {
		t.Fatalf("Only the confidence qualifier is carried over.")
	}
}

func TestProteinDomainWithoutConfidence(t *testing.T) {
	d := &ProteinDomain{Value: "WD40", Start: 0, End: 40}
	feat := d.ToFeature()
	if _, ok := feat.Qualifier("confidence"); ok {
		t.Fatalf("No confidence qualifier should be set.")
	}
	back, err := ProteinDomainFromFeature(feat)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(d, back); diff != "" {
		t.Fatalf("Round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestProteinDomainTextConfidence(t *testing.T) {
	chk := useChecker(t, NewChecker(WithMode(Collect)))
	feat := seqrecord.Feature{
		ID:         "d",
		Location:   seqrecord.NewLocation(0, 10),
		Qualifiers: map[string]string{"confidence": "high"},
	}
	d, err := ProteinDomainFromFeature(feat)
	if err != nil {
		t.Fatal(err)
	}
	if d.Confidence != nil {
		t.Fatalf("Expected no confidence but got %g.", *d.Confidence)
	}
	ws := chk.Warnings()
	if len(ws) != 1 || ws[0].Element != "ProteinDomain" || ws[0].Value != "high" {
		t.Fatalf("Expected one confidence warning but got %v.", ws)
	}

	rec := seqrecord.NewRecord("x", "ACDEFGHIKL", seqrecord.AlphabetProtein)
	rec.Features = []seqrecord.Feature{feat}
	s, err := SequenceFromRecord(rec)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(s.DomainArchitecture.Domains); n != 1 {
		t.Fatalf("Expected 1 domain but got %d.", n)
	}

	useChecker(t, NewChecker(WithMode(Strict)))
	var w *Warning
	if _, err := ProteinDomainFromFeature(feat); !errors.As(err, &w) {
		t.Fatalf("Expected a warning in strict mode but got %v.", err)
	}
}

func TestSequenceFromRecord(t *testing.T) {
	useChecker(t, NewChecker(WithMode(Collect)))

	rec := seqrecord.NewRecord("P17304", "MADEEKLPPGWEKRMSRSSGRVYYFNHITNASQWERPSG",
		seqrecord.AlphabetProtein)
	rec.Name = "ACTM"
	rec.Description = "muscle Actin"
	rec.SetAnnotation("ref", "GO:0008270")
	rec.SetAnnotation("evidence", "experimental")
	rec.SetAnnotation("confidence", []interface{}{0.95, "probability"})
	rec.SetAnnotation("uri", map[string]string{
		"value": "http://www.uniprot.org/uniprot/P17304", "type": "html"})
	rec.SetAnnotation("properties", []map[string]string{{
		"value": "1200", "ref": "NOAA:depth", "applies_to": "clade",
		"datatype": "xsd:integer", "unit": "METRIC:m"}})
	rec.Features = []seqrecord.Feature{
		{ID: "WW", Location: seqrecord.NewLocation(5, 38)},
	}

	s, err := SequenceFromRecord(rec)
	if err != nil {
		t.Fatal(err)
	}
	if s.Type != "protein" || s.Symbol != "ACTM" || s.Name != "muscle Actin" {
		t.Fatalf("Unexpected sequence %+v.", s)
	}
	if s.Accession == nil || s.Accession.Value != "P17304" {
		t.Fatalf("Unexpected accession %v.", s.Accession)
	}
	if s.MolSeq.Value != rec.Residues() {
		t.Fatalf("Residues were not copied.")
	}
	if len(s.Annotations) != 1 {
		t.Fatalf("Expected exactly one annotation, got %d.",
			len(s.Annotations))
	}
	want := &Annotation{
		Ref:        "GO:0008270",
		Evidence:   "experimental",
		Confidence: &Confidence{Value: 0.95, Type: "probability"},
		URI: &Uri{Value: "http://www.uniprot.org/uniprot/P17304",
			Type: "html"},
		Properties: []*Property{{
			Value: "1200", Ref: "NOAA:depth", AppliesTo: "clade",
			Datatype: "xsd:integer", Unit: "METRIC:m"}},
	}
	if diff := cmp.Diff(want, s.Annotations[0]); diff != "" {
		t.Fatalf("Annotation mismatch (-want +got):\n%s", diff)
	}
	da := s.DomainArchitecture
	if da == nil || da.Length != rec.Len() || len(da.Domains) != 1 {
		t.Fatalf("Unexpected domain architecture %v.", da)
	}
	if d := da.Domains[0]; d.Value != "WW" || d.Start != 5 || d.End != 38 {
		t.Fatalf("Unexpected domain %+v.", d)
	}
}

func TestSequenceFromRecordMinimal(t *testing.T) {
	rec := seqrecord.NewRecord("x1", "ACGU", seqrecord.AlphabetRNA)
	s, err := SequenceFromRecord(rec)
	if err != nil {
		t.Fatal(err)
	}
	if s.Type != "rna" {
		t.Fatalf("Expected type 'rna', got '%s'.", s.Type)
	}
	if len(s.Annotations) != 1 {
		t.Fatalf("An annotation is always synthesized.")
	}
	if diff := cmp.Diff(&Annotation{}, s.Annotations[0]); diff != "" {
		t.Fatalf("Expected an empty annotation (-want +got):\n%s", diff)
	}
	if s.DomainArchitecture != nil {
		t.Fatalf("No domain architecture without features.")
	}

	generic := seqrecord.NewRecord("x2", "ACGU", seqrecord.AlphabetGeneric)
	if s, _ := SequenceFromRecord(generic); s.Type != "" {
		t.Fatalf("Generic alphabets should leave the type unset.")
	}
}

func TestSequenceFromRecordConfidenceKinds(t *testing.T) {
	useChecker(t, NewChecker(WithMode(Collect)))
	tests := []struct {
		value interface{}
		want  *Confidence
	}{
		{[]interface{}{1, "bootstrap"}, &Confidence{1, "bootstrap"}},
		{[]interface{}{int64(70), "bootstrap"}, &Confidence{70, "bootstrap"}},
		{[]interface{}{float32(0.5), "probability"},
			&Confidence{0.5, "probability"}},
		{[]interface{}{"0.25", "probability"},
			&Confidence{0.25, "probability"}},
		{3, &Confidence{Value: 3}},
		{"1e-5", &Confidence{Value: 1e-5}},
		{Confidence{0.9, "bayes"}, &Confidence{0.9, "bayes"}},
	}
	for _, test := range tests {
		rec := seqrecord.NewRecord("x", "ACGT", seqrecord.AlphabetDNA)
		rec.SetAnnotation("confidence", test.value)
		s, err := SequenceFromRecord(rec)
		if err != nil {
			t.Fatalf("Confidence %v: %s", test.value, err)
		}
		got := s.Annotations[0].Confidence
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Fatalf("Confidence %v (-want +got):\n%s", test.value, diff)
		}
	}
}

func TestSequenceFromRecordBadAnnotation(t *testing.T) {
	chk := useChecker(t, NewChecker(WithMode(Collect)))
	rec := seqrecord.NewRecord("x", "ACGT", seqrecord.AlphabetDNA)
	rec.SetAnnotation("confidence", "very")
	s, err := SequenceFromRecord(rec)
	if err != nil {
		t.Fatal(err)
	}
	if s.Annotations[0].Confidence != nil {
		t.Fatalf("Expected no confidence for 'very'.")
	}
	if ws := chk.Warnings(); len(ws) != 1 || ws[0].Field != "confidence" {
		t.Fatalf("Expected one confidence warning but got %v.", ws)
	}

	useChecker(t, NewChecker(WithMode(Strict)))
	var w *Warning
	if _, err := SequenceFromRecord(rec); !errors.As(err, &w) {
		t.Fatalf("Expected a warning in strict mode but got %v.", err)
	}
}

func TestSequenceFromRecordStrict(t *testing.T) {
	useChecker(t, NewChecker(WithMode(Strict)))
	rec := seqrecord.NewRecord("x", "ACGT", seqrecord.AlphabetDNA)
	rec.Name = "far too long for a symbol"
	_, err := SequenceFromRecord(rec)
	var w *Warning
	if !errors.As(err, &w) || w.Field != "symbol" {
		t.Fatalf("Expected a symbol warning, got %v.", err)
	}
}

func TestSequenceToRecord(t *testing.T) {
	s := &Sequence{
		Type:        "dna",
		Symbol:      "ADH",
		Name:        "alcohol dehydrogenase",
		Accession:   &Accession{Value: "AB000001", Source: "ncbi"},
		MolSeq:      &MolSeq{Value: "ATGGCC"},
		Annotations: []*Annotation{{Ref: "EC:1.1.1.1"}},
	}
	rec := s.ToRecord()
	if rec.ID != "AB000001" || rec.Name != "ADH" ||
		rec.Description != "alcohol dehydrogenase" {
		t.Fatalf("Unexpected record identifiers %q %q %q.",
			rec.ID, rec.Name, rec.Description)
	}
	if rec.Alphabet != seqrecord.AlphabetDNA {
		t.Fatalf("Expected a DNA alphabet, got %s.", rec.Alphabet)
	}
	if rec.Residues() != "ATGGCC" {
		t.Fatalf("Unexpected residues '%s'.", rec.Residues())
	}

	// Annotations are not written back.
	if _, ok := rec.Annotation("ref"); ok {
		t.Fatalf("Annotations should not be copied to the record.")
	}
	if len(rec.Features) != 0 {
		t.Fatalf("Domains should not be copied to the record.")
	}

	empty := (&Sequence{}).ToRecord()
	if empty.Alphabet != seqrecord.AlphabetGeneric || empty.Len() != 0 {
		t.Fatalf("Unexpected record for an empty sequence: %s", empty)
	}
}
