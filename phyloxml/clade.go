package phyloxml

import (
	"fmt"
	"iter"
	"slices"
)

// Node is the view of a clade as a node of a tree: access to its children
// and its parent.
type Node interface {
	Len() int
	Child(i int) (*Clade, error)
	Path(path ...int) (*Clade, error)
	All() iter.Seq2[int, *Clade]
	Parent() *Clade
}

// TreeRoot is the view of a clade or a phylogeny as a whole tree.
type TreeRoot interface {
	// Rooted reports whether the tree is rooted. If known is false, the
	// rootedness could not be determined.
	Rooted() (rooted, known bool)

	// Root returns the root clade, which may be nil for an empty tree.
	Root() *Clade
}

// Clade is a branch of a phylogenetic tree: a node along with everything
// descending from it. Clades are used recursively to describe the topology
// of a tree.
//
// A clade owns its child clades. Children are attached with AddClade or
// InsertClade and detached with RemoveClade, which also maintain the parent
// link of the child. A clade can have at most one parent.
//
// The collections default to empty (nil) slices, and each of them may hold
// any number of values. The singular accessors Confidence and Taxonomy are
// provided for the common case of exactly one value.
type Clade struct {
	// Length of the branch from the parent to this clade.
	BranchLength *float64

	// Links other elements to this clade at the XML level.
	IDSource string

	Name string

	// Branch width, including the parent branch. Like Color, it applies to
	// the whole clade unless overridden in a sub-clade.
	Width *float64
	Color *BranchColor

	// Unique identifier for the root node of this clade.
	NodeID *Id

	// Events such as gene duplications at the root node of this clade.
	Events *Events

	BinaryCharacters *BinaryCharacters
	Date             *Date

	Confidences   []*Confidence
	Taxonomies    []*Taxonomy
	Sequences     []*Sequence
	Distributions []*Distribution
	References    []*Reference
	Properties    []*Property
	Other         []*Other

	// Precomputed traversal indexes. These are supplied by the caller and
	// are never checked for consistency.
	LeftIdx, RightIdx *int

	parent *Clade
	tree   *Phylogeny // only set on the root clade of a phylogeny
	clades []*Clade
}

// NewClade returns a clade with the given children attached.
func NewClade(children ...*Clade) (*Clade, error) {
	c := &Clade{}
	for _, child := range children {
		if err := c.AddClade(child); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AddClade appends child to the children of c.
func (c *Clade) AddClade(child *Clade) error {
	return c.InsertClade(len(c.clades), child)
}

// InsertClade inserts child at position i of the children of c, where
// 0 <= i <= c.Len().
//
// An error is returned if child already has a parent, is the root of a
// phylogeny, or is c or one of its ancestors.
func (c *Clade) InsertClade(i int, child *Clade) error {
	if child == nil {
		return fmt.Errorf("phyloxml: cannot attach a nil clade")
	}
	if i < 0 || i > len(c.clades) {
		return &IndexError{Index: i, Len: len(c.clades) + 1}
	}
	for anc := c; anc != nil; anc = anc.parent {
		if anc == child {
			return ErrCycle
		}
	}
	if child.parent != nil || child.tree != nil {
		return ErrAttached
	}
	c.clades = slices.Insert(c.clades, i, child)
	child.parent = c
	return nil
}

// RemoveClade detaches and returns the child at position i.
func (c *Clade) RemoveClade(i int) (*Clade, error) {
	child, err := at(c.clades, i, 0)
	if err != nil {
		return nil, err
	}
	c.clades = slices.Delete(c.clades, i, i+1)
	child.parent = nil
	return child, nil
}

// Len returns the number of direct children of c.
func (c *Clade) Len() int {
	return len(c.clades)
}

// IsTerminal returns true if c has no children.
func (c *Clade) IsTerminal() bool {
	return len(c.clades) == 0
}

// Child returns the direct child at position i.
func (c *Clade) Child(i int) (*Clade, error) {
	return at(c.clades, i, 0)
}

// Slice returns the direct children in positions [i, j).
func (c *Clade) Slice(i, j int) ([]*Clade, error) {
	return span(c.clades, i, j)
}

// Path descends from c following the given child positions, and returns the
// clade at the end of the path. e.g., c.Path(0, 1) is the second child of
// the first child of c. An empty path returns c.
func (c *Clade) Path(path ...int) (*Clade, error) {
	ref := c
	for step, i := range path {
		next, err := at(ref.clades, i, step)
		if err != nil {
			return nil, err
		}
		ref = next
	}
	return ref, nil
}

// Clades returns a copy of the direct children of c.
func (c *Clade) Clades() []*Clade {
	return slices.Clone(c.clades)
}

// All iterates over the direct children of c along with their positions.
// Descendants further down are reached by recursing on each child.
func (c *Clade) All() iter.Seq2[int, *Clade] {
	return func(yield func(int, *Clade) bool) {
		for i, child := range c.clades {
			if !yield(i, child) {
				return
			}
		}
	}
}

// Parent returns the parent clade, or nil for the root of a tree or a
// detached clade.
func (c *Clade) Parent() *Clade {
	return c.parent
}

// Tree returns the phylogeny whose tree contains c, or nil if c is not part
// of one.
func (c *Clade) Tree() *Phylogeny {
	top := c
	for top.parent != nil {
		top = top.parent
	}
	return top.tree
}

// Rooted reports whether the phylogeny containing c is rooted. The result is
// only known if c is part of a phylogeny.
func (c *Clade) Rooted() (rooted, known bool) {
	if t := c.Tree(); t != nil {
		return t.rooted, true
	}
	return false, false
}

// AsNode returns the node view of c.
func (c *Clade) AsNode() Node {
	return c
}

// AsTree returns the view of c as the root of a (sub)tree.
func (c *Clade) AsTree() TreeRoot {
	return subtree{c}
}

type subtree struct {
	c *Clade
}

func (t subtree) Rooted() (bool, bool) { return t.c.Rooted() }
func (t subtree) Root() *Clade         { return t.c }

// Confidence returns the only confidence of c. An error wrapping
// ErrNotPresent or ErrMultipleValues is returned if c does not have exactly
// one confidence.
func (c *Clade) Confidence() (*Confidence, error) {
	return single("Clade", "confidences", c.Confidences)
}

// Taxonomy returns the only taxonomy of c. An error wrapping ErrNotPresent or
// ErrMultipleValues is returned if c does not have exactly one taxonomy.
func (c *Clade) Taxonomy() (*Taxonomy, error) {
	return single("Clade", "taxonomies", c.Taxonomies)
}

// ToPhylogeny returns a new phylogeny with c as its root. The subtree is not
// copied. c must not be attached to a parent or to another phylogeny.
func (c *Clade) ToPhylogeny(rooted bool, opts ...PhylogenyOption) (
	*Phylogeny, error) {
	p := NewPhylogeny(rooted, opts...)
	if err := p.SetRoot(c); err != nil {
		return nil, err
	}
	return p, nil
}

// Label returns a short human readable description of c.
func (c *Clade) Label() string {
	return c.String()
}

func (c *Clade) String() string {
	var id string
	if c.NodeID != nil {
		id = c.NodeID.String()
	}
	return label("Clade", c.Name, id)
}
