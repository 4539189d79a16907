package newick

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/juliahi/bioio/phyloxml"
)

// Writer writes trees in the Newick format. Writes are buffered, so Flush
// must be called once writing is done.
type Writer struct {
	// When set, each tree whose rootedness is known is prefixed with a
	// '[&R]' or '[&U]' comment.
	RootedComment bool

	// When set, unnamed internal clades are labeled with the value of their
	// confidence of this type, if they have one. This is the counterpart of
	// Reader.SupportType.
	SupportType string

	buf *bufio.Writer
}

// NewWriter returns a writer that writes Newick trees to `w`.
func NewWriter(w io.Writer) *Writer {
	return &Writer{buf: bufio.NewWriter(w)}
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}

// Write writes a single tree terminated by ';' and a new line. A tree
// without a root clade is written as a lone terminal.
func (w *Writer) Write(tree phyloxml.TreeRoot) error {
	if w.RootedComment {
		if rooted, known := tree.Rooted(); known {
			if rooted {
				w.buf.WriteString("[&R] ")
			} else {
				w.buf.WriteString("[&U] ")
			}
		}
	}
	if root := tree.Root(); root != nil {
		w.writeClade(root)
	}
	_, err := w.buf.WriteString(";\n")
	return err
}

// WriteAll writes all of the trees and flushes the writer.
func (w *Writer) WriteAll(trees []*phyloxml.Phylogeny) error {
	for _, tree := range trees {
		if err := w.Write(tree); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (w *Writer) writeClade(c *phyloxml.Clade) {
	if !c.IsTerminal() {
		w.buf.WriteByte(descStart)
		for i, child := range c.All() {
			if i > 0 {
				w.buf.WriteByte(descDelimiter)
			}
			w.writeClade(child)
		}
		w.buf.WriteByte(descEnd)
	}

	label := c.Name
	if len(label) == 0 && !c.IsTerminal() && len(w.SupportType) > 0 {
		for _, conf := range c.Confidences {
			if conf.Type == w.SupportType {
				label = strconv.FormatFloat(conf.Value, 'g', -1, 64)
				break
			}
		}
	}
	w.buf.WriteString(quoteLabel(label))
	if c.BranchLength != nil {
		w.buf.WriteByte(lengthStart)
		w.buf.WriteString(strconv.FormatFloat(*c.BranchLength, 'g', -1, 64))
	}
}

// Format returns the Newick representation of a single tree, without a
// trailing new line.
func Format(tree phyloxml.TreeRoot) string {
	buf := new(bytes.Buffer)
	w := NewWriter(buf)
	w.Write(tree)
	w.Flush()
	return strings.TrimSuffix(buf.String(), "\n")
}

func quoteLabel(label string) string {
	if !strings.ContainsAny(label, unquoteBanned+"\t\r\n") {
		return label
	}
	return "'" + strings.ReplaceAll(label, "'", "''") + "'"
}
