package newick

import (
	"bytes"
	"testing"

	"github.com/juliahi/bioio/phyloxml"
)

func TestWriteRoundTrip(t *testing.T) {
	inputs := []string{
		"((A:0.1,B:0.2)E:0.5,'C D':0.3,F)R;",
		"(A,B,(X,Y)C)ROOT;",
		"(,,(,));",
		"('it''s',A_b,'[x]');",
		";",
	}
	for _, input := range inputs {
		tree, err := NewReader(sample(input)).ReadTree()
		if err != nil {
			t.Fatal(err)
		}
		if got := Format(tree); got != input {
			t.Fatalf("Expected '%s' but got '%s'.", input, got)
		}
	}
}

func TestWriteBuiltTree(t *testing.T) {
	length := 1.5
	a := &phyloxml.Clade{Name: "A", BranchLength: &length}
	b := &phyloxml.Clade{Name: "B"}
	inner, err := phyloxml.NewClade(a, b)
	if err != nil {
		t.Fatal(err)
	}
	inner.Confidences = []*phyloxml.Confidence{
		phyloxml.NewConfidence(0.9, "probability"),
		phyloxml.NewConfidence(87, "bootstrap"),
	}
	root, err := phyloxml.NewClade(inner, &phyloxml.Clade{Name: "C"})
	if err != nil {
		t.Fatal(err)
	}
	tree, err := root.ToPhylogeny(true)
	if err != nil {
		t.Fatal(err)
	}

	buf := new(bytes.Buffer)
	w := NewWriter(buf)
	w.RootedComment = true
	w.SupportType = "bootstrap"
	if err := w.WriteAll([]*phyloxml.Phylogeny{tree}); err != nil {
		t.Fatal(err)
	}
	want := "[&R] ((A:1.5,B)87,C);\n"
	if buf.String() != want {
		t.Fatalf("Expected '%s' but got '%s'.", want, buf.String())
	}

	// A subtree can be written on its own.
	if got := Format(inner.AsTree()); got != "(A:1.5,B);" {
		t.Fatalf("Expected '(A:1.5,B);' but got '%s'.", got)
	}
}
