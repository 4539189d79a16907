package phyloxml

import (
	"errors"
	"testing"
)

func TestPhylogenyConfidence(t *testing.T) {
	p := NewPhylogeny(true)
	if _, err := p.Confidence(); !errors.Is(err, ErrNotPresent) {
		t.Fatalf("Expected ErrNotPresent, got %v.", err)
	}

	conf := NewConfidence(0.87, "probability")
	p = NewPhylogeny(true, WithConfidences(conf))
	got, err := p.Confidence()
	if err != nil {
		t.Fatal(err)
	}
	if got != conf {
		t.Fatalf("Expected %s, got %s.", conf, got)
	}

	p.Confidences = append(p.Confidences, NewConfidence(0.5, "bootstrap"))
	if _, err := p.Confidence(); !errors.Is(err, ErrMultipleValues) {
		t.Fatalf("Expected ErrMultipleValues, got %v.", err)
	}
}

func TestPhylogenyOptions(t *testing.T) {
	p := NewPhylogeny(false,
		WithName("tree"),
		WithID(&Id{Value: "1"}),
		WithDescription("a tree"),
		WithRerootable(true),
		WithBranchLengthUnit("substitutions"),
		WithType("gene_tree"),
		WithDate(&Date{Desc: "Silurian"}),
		WithProperties(&Property{Value: "1", Ref: "NOAA:depth"}))

	if p.IsRooted() {
		t.Fatalf("Tree should not be rooted.")
	}
	if _, known := p.Rooted(); !known {
		t.Fatalf("Rootedness of a phylogeny is always known.")
	}
	if p.Root() != nil {
		t.Fatalf("A new phylogeny should be empty.")
	}
	if p.Name != "tree" || p.ID.Value != "1" || p.Description != "a tree" ||
		!*p.Rerootable || p.BranchLengthUnit != "substitutions" ||
		p.Type != "gene_tree" || p.Date.Desc != "Silurian" ||
		len(p.Properties) != 1 {
		t.Fatalf("Options were not applied: %+v", p)
	}
	if s := p.String(); s != "Phylogeny tree" {
		t.Fatalf("Unexpected label '%s'.", s)
	}
}

func TestSetRoot(t *testing.T) {
	p := NewPhylogeny(true)
	a := &Clade{Name: "a"}
	if err := p.SetRoot(a); err != nil {
		t.Fatal(err)
	}
	if err := p.SetRoot(a); err != nil {
		t.Fatalf("Setting the same root twice should be a no-op: %s", err)
	}

	b := &Clade{Name: "b"}
	if err := p.SetRoot(b); err != nil {
		t.Fatal(err)
	}
	if a.Tree() != nil {
		t.Fatalf("The previous root should be detached.")
	}
	if b.Tree() != p {
		t.Fatalf("The new root should belong to the phylogeny.")
	}

	other := NewPhylogeny(false)
	if err := other.SetRoot(b); !errors.Is(err, ErrAttached) {
		t.Fatalf("Expected ErrAttached, got %v.", err)
	}

	if err := p.SetRoot(nil); err != nil {
		t.Fatal(err)
	}
	if p.Root() != nil || b.Tree() != nil {
		t.Fatalf("SetRoot(nil) should empty the tree.")
	}
}

func TestPhyloxmlLookup(t *testing.T) {
	a := NewPhylogeny(true, WithName("A"))
	b := NewPhylogeny(false, WithName("B"))
	dup := NewPhylogeny(true, WithName("B"))
	px := NewPhyloxml(map[string]string{"xmlns": Namespace}, a, b, dup)

	if px.Len() != 3 {
		t.Fatalf("Expected 3 phylogenies, got %d.", px.Len())
	}
	got, err := px.ByName("B")
	if err != nil {
		t.Fatal(err)
	}
	if got != b {
		t.Fatalf("Expected the first phylogeny named 'B'.")
	}
	if _, err := px.ByName("C"); !errors.Is(err, ErrPhylogenyNotFound) {
		t.Fatalf("Expected ErrPhylogenyNotFound, got %v.", err)
	}

	unnamed := NewPhyloxml(nil, NewPhylogeny(true), a)
	if _, err := unnamed.ByName(""); !errors.Is(err, ErrPhylogenyNotFound) {
		t.Fatalf("An empty name should not match, got %v.", err)
	}

	if got, err := px.Phylogeny(0); err != nil || got != a {
		t.Fatalf("Expected phylogeny 'A' at position 0.")
	}
	var ierr *IndexError
	if _, err := px.Phylogeny(3); !errors.As(err, &ierr) {
		t.Fatalf("Expected an IndexError, got %v.", err)
	}
	trees, err := px.Slice(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(trees) != 2 || trees[0] != b || trees[1] != dup {
		t.Fatalf("Unexpected slice %v.", trees)
	}

	var order []*Phylogeny
	for _, p := range px.All() {
		order = append(order, p)
	}
	if len(order) != 3 || order[0] != a || order[2] != dup {
		t.Fatalf("Iteration is not in document order.")
	}
}

func TestToPhyloxml(t *testing.T) {
	p := sampleTree(t)
	px := p.ToPhyloxml(map[string]string{
		"xmlns:xsi": "http://www.w3.org/2001/XMLSchema-instance",
	})
	if px.Len() != 1 {
		t.Fatalf("Expected 1 phylogeny, got %d.", px.Len())
	}
	if got, _ := px.Phylogeny(0); got != p {
		t.Fatalf("The document should hold the same phylogeny.")
	}
	if len(px.Attributes) != 1 {
		t.Fatalf("Namespace attributes were not passed through.")
	}
	if px.Other != nil {
		t.Fatalf("Other should default to empty.")
	}

	empty := NewPhyloxml(nil)
	if empty.Attributes == nil || empty.Len() != 0 {
		t.Fatalf("Unexpected empty document %+v.", empty)
	}
}
