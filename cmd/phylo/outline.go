package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/juliahi/bioio/phyloxml"
)

type outlineConfig struct {
	*cli.Command
	Lengths bool `cli:"name=lengths aliases=l desc='show branch lengths'"`
	Color   bool `cli:"name=color desc='color names even when not writing to a terminal'"`
}

// OutlineCommand returns the outline subcommand.
func OutlineCommand() *cli.Command {
	cfg := &outlineConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "outline").
		WithSynopsis("outline [--lengths] [--color] [tree.nwk...] - Print trees as indented outlines").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *outlineConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	trees, err := readTrees(cc.In, args, "")
	if err != nil {
		return err
	}

	color.NoColor = !cfg.Color && !isatty.IsTerminal(os.Stdout.Fd())
	for i, tree := range trees {
		if i > 0 {
			fmt.Fprintln(cc.Out, "---")
		}
		io.WriteString(cc.Out, outline(tree, cfg.Lengths))
	}
	return nil
}

// outline renders a tree with one clade per line, indented by depth. Leaves
// and internal clades are colored differently.
func outline(tree phyloxml.TreeRoot, lengths bool) string {
	buf := new(bytes.Buffer)
	var out func(c *phyloxml.Clade, depth int)
	out = func(c *phyloxml.Clade, depth int) {
		name := c.Name
		if len(name) == 0 {
			name = "N/A"
		}
		if c.IsTerminal() {
			name = color.GreenString("%s", name)
		} else {
			name = color.CyanString("%s", name)
		}
		var length string
		if lengths && c.BranchLength != nil {
			length = fmt.Sprintf(" (%f)", *c.BranchLength)
		}
		fmt.Fprintf(buf, "%s%s%s\n", strings.Repeat("  ", depth), name, length)
		for _, child := range c.All() {
			out(child, depth+1)
		}
	}
	if root := tree.Root(); root != nil {
		out(root, 0)
	}
	return buf.String()
}
