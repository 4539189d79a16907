package main

import (
	"github.com/scott-cotton/cli"

	"github.com/juliahi/bioio/newick"
)

type newickConfig struct {
	*cli.Command
	Rooted  bool   `cli:"name=rooted aliases=r desc='mark each tree with a [&R] or [&U] comment'"`
	Support string `cli:"name=support desc='confidence type of numeric internal labels, e.g. bootstrap'"`
}

// NewickCommand returns the newick subcommand.
func NewickCommand() *cli.Command {
	cfg := &newickConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "newick").
		WithSynopsis("newick [--rooted] [--support <type>] [tree.nwk...] - Normalize Newick trees").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *newickConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	trees, err := readTrees(cc.In, args, cfg.Support)
	if err != nil {
		return err
	}

	w := newick.NewWriter(cc.Out)
	w.RootedComment = cfg.Rooted
	w.SupportType = cfg.Support
	return w.WriteAll(trees)
}
