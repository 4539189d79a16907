package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/juliahi/bioio/fasta"
	"github.com/juliahi/bioio/phyloxml"
	"github.com/juliahi/bioio/seqrecord"
)

type attachConfig struct {
	*cli.Command
	Fasta    string `cli:"name=fasta aliases=f desc='FASTA file with one sequence per leaf'"`
	Alphabet string `cli:"name=alphabet desc='alphabet of the sequences: dna, rna or protein'"`
	Mode     string `cli:"name=mode desc='validation mode: permissive, collect or strict'"`
	Name     string `cli:"name=name desc='name given to each phylogeny'"`
}

// AttachCommand returns the attach subcommand.
func AttachCommand() *cli.Command {
	cfg := &attachConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "attach").
		WithSynopsis("attach --fasta <seqs.fa> [--mode <mode>] <tree.nwk> - Attach leaf sequences and summarize").
		WithOpts(opts...).
		WithRun(cfg.run)
}

var alphabets = map[string]seqrecord.Alphabet{
	"":        seqrecord.AlphabetGeneric,
	"dna":     seqrecord.AlphabetDNA,
	"rna":     seqrecord.AlphabetRNA,
	"protein": seqrecord.AlphabetProtein,
}

func (cfg *attachConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(cfg.Fasta) == 0 || len(args) != 1 {
		return fmt.Errorf("%w: usage: phylo attach --fasta <seqs.fa> <tree.nwk>", cli.ErrUsage)
	}
	alpha, ok := alphabets[cfg.Alphabet]
	if !ok {
		return fmt.Errorf("%w: unknown alphabet %q", cli.ErrUsage, cfg.Alphabet)
	}
	mode := phyloxml.Permissive
	if len(cfg.Mode) > 0 {
		if mode, err = phyloxml.ParseMode(cfg.Mode); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	checker := phyloxml.NewChecker(phyloxml.WithMode(mode), phyloxml.WithLogger(log))
	defer phyloxml.SetDefaultChecker(phyloxml.SetDefaultChecker(checker))

	recs, err := readRecords(cfg.Fasta, alpha, false)
	if err != nil {
		return err
	}
	trees, err := readTrees(cc.In, args, "")
	if err != nil {
		return err
	}
	for _, tree := range trees {
		if len(cfg.Name) > 0 {
			tree.Name = cfg.Name
		}
		missing, err := attachSequences(tree, recs)
		if err != nil {
			return err
		}
		for _, leaf := range missing {
			log.Warn("no sequence for leaf", "leaf", leaf)
		}
	}

	doc := phyloxml.NewPhyloxml(nil, trees...)
	out, err := yaml.Marshal(summarize(doc, checker.Warnings()))
	if err != nil {
		return fmt.Errorf("error encoding summary: %w", err)
	}
	_, err = cc.Out.Write(out)
	return err
}

// readRecords reads a FASTA file into records keyed by identifier. When
// aligned is set, all sequences must have the same length.
func readRecords(file string, alpha seqrecord.Alphabet, aligned bool) (
	map[string]seqrecord.Record, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()

	var list []seqrecord.Record
	if aligned {
		r := fasta.NewAlignedReader(f)
		r.Alphabet = alpha
		list, err = r.ReadAll()
	} else {
		r := fasta.NewReader(f)
		r.Alphabet = alpha
		list, err = r.ReadAll()
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	recs := make(map[string]seqrecord.Record, len(list))
	for _, rec := range list {
		recs[rec.ID] = rec
	}
	return recs, nil
}

// attachSequences adds a sequence to every leaf of the tree whose name is
// the identifier of one of the records. The names of the leaves without a
// record are returned.
func attachSequences(tree *phyloxml.Phylogeny, recs map[string]seqrecord.Record) (
	missing []string, err error) {
	var walk func(c *phyloxml.Clade) error
	walk = func(c *phyloxml.Clade) error {
		if c.IsTerminal() {
			rec, ok := recs[c.Name]
			if !ok {
				missing = append(missing, c.Name)
				return nil
			}
			s, err := phyloxml.SequenceFromRecord(rec)
			if err != nil {
				return fmt.Errorf("leaf %s: %w", c.Name, err)
			}
			c.Sequences = append(c.Sequences, s)
			return nil
		}
		for _, child := range c.All() {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if root := tree.Root(); root != nil {
		if err := walk(root); err != nil {
			return nil, err
		}
	}
	return missing, nil
}

type docSummary struct {
	Phylogenies []treeSummary `yaml:"phylogenies"`
	Warnings    []string      `yaml:"warnings,omitempty"`
}

type treeSummary struct {
	Name   string        `yaml:"name,omitempty"`
	Rooted bool          `yaml:"rooted"`
	Clades int           `yaml:"clades"`
	Leaves []leafSummary `yaml:"leaves"`
}

type leafSummary struct {
	Name         string      `yaml:"name"`
	BranchLength *float64    `yaml:"branch_length,omitempty"`
	Sequence     *seqSummary `yaml:"sequence,omitempty"`
}

type seqSummary struct {
	Type      string `yaml:"type,omitempty"`
	Accession string `yaml:"accession,omitempty"`
	Length    int    `yaml:"length"`
}

func summarize(doc *phyloxml.Phyloxml, warnings []*phyloxml.Warning) docSummary {
	var sum docSummary
	for _, tree := range doc.All() {
		ts := treeSummary{Name: tree.Name, Rooted: tree.IsRooted()}
		var walk func(c *phyloxml.Clade)
		walk = func(c *phyloxml.Clade) {
			ts.Clades++
			if c.IsTerminal() {
				ts.Leaves = append(ts.Leaves, summarizeLeaf(c))
			}
			for _, child := range c.All() {
				walk(child)
			}
		}
		if root := tree.Root(); root != nil {
			walk(root)
		}
		sum.Phylogenies = append(sum.Phylogenies, ts)
	}
	for _, w := range warnings {
		sum.Warnings = append(sum.Warnings, w.Error())
	}
	return sum
}

func summarizeLeaf(c *phyloxml.Clade) leafSummary {
	ls := leafSummary{Name: c.Name, BranchLength: c.BranchLength}
	if len(c.Sequences) == 0 {
		return ls
	}
	s := c.Sequences[0]
	ss := &seqSummary{Type: s.Type}
	if s.Accession != nil {
		ss.Accession = s.Accession.Value
	}
	if s.MolSeq != nil {
		ss.Length = len(s.MolSeq.Value)
	}
	ls.Sequence = ss
	return ls
}
