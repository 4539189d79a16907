package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/juliahi/bioio/fasta"
	"github.com/juliahi/bioio/phyloxml"
	"github.com/juliahi/bioio/seqrecord"
)

type exportConfig struct {
	*cli.Command
	Fasta    string `cli:"name=fasta aliases=f desc='FASTA file with one sequence per leaf'"`
	Alphabet string `cli:"name=alphabet desc='alphabet of the sequences: dna, rna or protein'"`
	Aligned  bool   `cli:"name=aligned aliases=a desc='require and write sequences of equal length'"`
	Columns  int    `cli:"name=columns desc='wrap sequences at this many columns, 0 for none'"`
}

// ExportCommand returns the export subcommand.
func ExportCommand() *cli.Command {
	cfg := &exportConfig{Columns: 60}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "export").
		WithSynopsis("export --fasta <seqs.fa> [--aligned] <tree.nwk> - Write leaf sequences as FASTA in tree order").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *exportConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(cfg.Fasta) == 0 || len(args) != 1 {
		return fmt.Errorf("%w: usage: phylo export --fasta <seqs.fa> <tree.nwk>", cli.ErrUsage)
	}
	alpha, ok := alphabets[cfg.Alphabet]
	if !ok {
		return fmt.Errorf("%w: unknown alphabet %q", cli.ErrUsage, cfg.Alphabet)
	}

	recs, err := readRecords(cfg.Fasta, alpha, cfg.Aligned)
	if err != nil {
		return err
	}
	trees, err := readTrees(cc.In, args, "")
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	var out []seqrecord.Record
	for _, tree := range trees {
		missing, err := attachSequences(tree, recs)
		if err != nil {
			return err
		}
		for _, leaf := range missing {
			log.Warn("no sequence for leaf", "leaf", leaf)
		}
		out = append(out, leafRecords(tree)...)
	}

	if cfg.Aligned {
		w := fasta.NewAlignedWriter(cc.Out)
		w.Columns = cfg.Columns
		return w.WriteAll(out)
	}
	w := fasta.NewWriter(cc.Out)
	w.Columns = cfg.Columns
	return w.WriteAll(out)
}

// leafRecords converts the sequences of the leaves of a tree back into
// records, in pre-order.
func leafRecords(tree phyloxml.TreeRoot) []seqrecord.Record {
	var recs []seqrecord.Record
	var walk func(c *phyloxml.Clade)
	walk = func(c *phyloxml.Clade) {
		if c.IsTerminal() {
			for _, s := range c.Sequences {
				recs = append(recs, s.ToRecord())
			}
		}
		for _, child := range c.All() {
			walk(child)
		}
	}
	if root := tree.Root(); root != nil {
		walk(root)
	}
	return recs
}
