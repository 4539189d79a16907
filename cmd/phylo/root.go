package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/juliahi/bioio/newick"
	"github.com/juliahi/bioio/phyloxml"
)

const usageText = `phylo - inspect and annotate phylogenetic trees

Usage:
  phylo outline [--lengths] [--color] [tree.nwk...]     Print trees as indented outlines
  phylo newick [--rooted] [--support <type>] [tree.nwk...]
                                                        Normalize Newick trees
  phylo attach --fasta <seqs.fa> [--mode <mode>] <tree.nwk>
                                                        Attach leaf sequences and summarize
  phylo export --fasta <seqs.fa> [--aligned] [--columns <n>] <tree.nwk>
                                                        Write leaf sequences as FASTA in tree order

Trees are read from standard input when no files are given.

Examples:
  phylo outline --lengths species.nwk
  phylo newick --support bootstrap < raxml.nwk
  phylo attach --fasta proteins.fa --mode strict genes.nwk
  phylo export --fasta aln.fa --aligned genes.nwk > ordered.fa`

// Root returns the root command for phylo.
func Root() *cli.Command {
	return cli.NewCommand("phylo").
		WithSynopsis("phylo - inspect and annotate phylogenetic trees").
		WithDescription(usageText).
		WithSubs(
			OutlineCommand(),
			NewickCommand(),
			AttachCommand(),
			ExportCommand(),
		)
}

// readTrees reads all Newick trees from the files, or from `in` when no
// files are given.
func readTrees(in io.Reader, files []string, support string) (
	[]*phyloxml.Phylogeny, error) {
	read := func(r io.Reader) ([]*phyloxml.Phylogeny, error) {
		nr := newick.NewReader(r)
		nr.SupportType = support
		return nr.ReadAll()
	}
	if len(files) == 0 {
		return read(in)
	}

	var trees []*phyloxml.Phylogeny
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		ts, err := read(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", file, err)
		}
		trees = append(trees, ts...)
	}
	return trees, nil
}
