package phyloxml

import (
	"fmt"
	"iter"
)

// Namespace is the phyloXML namespace URI.
const Namespace = "http://www.phyloxml.org"

// Phyloxml is the root of a phyloXML document. It holds any number of
// phylogenies, possibly followed by elements from other namespaces.
type Phyloxml struct {
	// XML namespace declarations, keyed by attribute name
	// (e.g., "xmlns:xsi").
	Attributes map[string]string

	// The trees, in document order.
	Phylogenies []*Phylogeny

	Other []*Other
}

// NewPhyloxml returns a document holding the given trees.
func NewPhyloxml(attrs map[string]string, trees ...*Phylogeny) *Phyloxml {
	if attrs == nil {
		attrs = make(map[string]string)
	}
	return &Phyloxml{
		Attributes:  attrs,
		Phylogenies: append([]*Phylogeny(nil), trees...),
	}
}

// Len returns the number of phylogenies in the document.
func (px *Phyloxml) Len() int {
	return len(px.Phylogenies)
}

// Phylogeny returns the phylogeny at position i.
func (px *Phyloxml) Phylogeny(i int) (*Phylogeny, error) {
	return at(px.Phylogenies, i, 0)
}

// Slice returns the phylogenies in positions [i, j).
func (px *Phyloxml) Slice(i, j int) ([]*Phylogeny, error) {
	return span(px.Phylogenies, i, j)
}

// ByName returns the first phylogeny with the given name. An error wrapping
// ErrPhylogenyNotFound is returned if there is none. Unnamed phylogenies
// never match, not even the empty name.
func (px *Phyloxml) ByName(name string) (*Phylogeny, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("%w: empty name", ErrPhylogenyNotFound)
	}
	for _, p := range px.Phylogenies {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w with name '%s'", ErrPhylogenyNotFound, name)
}

// All iterates over the phylogenies in document order.
func (px *Phyloxml) All() iter.Seq2[int, *Phylogeny] {
	return func(yield func(int, *Phylogeny) bool) {
		for i, p := range px.Phylogenies {
			if !yield(i, p) {
				return
			}
		}
	}
}

func (px *Phyloxml) String() string {
	return fmt.Sprintf("Phyloxml (%d phylogenies)", len(px.Phylogenies))
}
