package phyloxml

// Phylogeny is a phylogenetic tree. Whether it is rooted is always given
// explicitly when it is created, and every clade in the tree reads its
// rootedness from here.
type Phylogeny struct {
	rooted bool
	root   *Clade

	Rerootable *bool

	// Unit of the branch lengths of the clades.
	BranchLengthUnit string

	Type string

	// Name of the tree, which need not be unique in a document.
	Name string

	ID          *Id
	Description string

	// Date of the root node of the tree.
	Date *Date

	Confidences       []*Confidence
	CladeRelations    []*CladeRelation
	SequenceRelations []*SequenceRelation
	Properties        []*Property
	Other             []*Other
}

// PhylogenyOption sets tree level metadata on a new phylogeny.
type PhylogenyOption func(*Phylogeny)

// WithName sets the name of the tree.
func WithName(name string) PhylogenyOption {
	return func(p *Phylogeny) { p.Name = name }
}

// WithID sets the identifier of the tree.
func WithID(id *Id) PhylogenyOption {
	return func(p *Phylogeny) { p.ID = id }
}

// WithDescription sets the free text description of the tree.
func WithDescription(desc string) PhylogenyOption {
	return func(p *Phylogeny) { p.Description = desc }
}

// WithRerootable states whether the tree may be rerooted.
func WithRerootable(rerootable bool) PhylogenyOption {
	return func(p *Phylogeny) { p.Rerootable = &rerootable }
}

// WithBranchLengthUnit sets the unit of the branch lengths, e.g., 'mya'.
func WithBranchLengthUnit(unit string) PhylogenyOption {
	return func(p *Phylogeny) { p.BranchLengthUnit = unit }
}

// WithType sets the type of the tree, e.g., 'gene_tree'.
func WithType(typ string) PhylogenyOption {
	return func(p *Phylogeny) { p.Type = typ }
}

// WithDate sets the date of the root node of the tree.
func WithDate(d *Date) PhylogenyOption {
	return func(p *Phylogeny) { p.Date = d }
}

// WithConfidences appends support values for the whole tree.
func WithConfidences(cs ...*Confidence) PhylogenyOption {
	return func(p *Phylogeny) { p.Confidences = append(p.Confidences, cs...) }
}

// WithProperties appends custom properties of the tree.
func WithProperties(ps ...*Property) PhylogenyOption {
	return func(p *Phylogeny) { p.Properties = append(p.Properties, ps...) }
}

// NewPhylogeny returns an empty tree.
func NewPhylogeny(rooted bool, opts ...PhylogenyOption) *Phylogeny {
	p := &Phylogeny{rooted: rooted}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Rooted reports whether the tree is rooted. It is always known.
func (p *Phylogeny) Rooted() (rooted, known bool) {
	return p.rooted, true
}

// IsRooted returns true if the tree is rooted.
func (p *Phylogeny) IsRooted() bool {
	return p.rooted
}

// Root returns the root clade, or nil if the tree is empty.
func (p *Phylogeny) Root() *Clade {
	return p.root
}

// SetRoot replaces the root clade of the tree. The previous root, if any, is
// detached. A nil clade empties the tree. An error is returned if c already
// has a parent or is the root of another phylogeny.
func (p *Phylogeny) SetRoot(c *Clade) error {
	if c != nil && c == p.root {
		return nil
	}
	if c != nil && (c.parent != nil || c.tree != nil) {
		return ErrAttached
	}
	if p.root != nil {
		p.root.tree = nil
	}
	p.root = c
	if c != nil {
		c.tree = p
	}
	return nil
}

// Confidence returns the only confidence of the tree. An error wrapping
// ErrNotPresent or ErrMultipleValues is returned if the tree does not have
// exactly one confidence.
func (p *Phylogeny) Confidence() (*Confidence, error) {
	return single("Phylogeny", "confidences", p.Confidences)
}

// ToPhyloxml returns a new document containing only this phylogeny.
func (p *Phylogeny) ToPhyloxml(attrs map[string]string) *Phyloxml {
	return NewPhyloxml(attrs, p)
}

func (p *Phylogeny) String() string {
	var id string
	if p.ID != nil {
		id = p.ID.String()
	}
	return label("Phylogeny", p.Name, id)
}
