package newick

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/juliahi/bioio/phyloxml"
)

// Reader corresponds to the state necessary to read trees from Newick
// formatted input.
type Reader struct {
	*lexer

	// Rooted is the rootedness given to trees that do not start with a
	// '[&R]' or '[&U]' comment.
	Rooted bool

	// When set, numeric labels of internal nodes are read as support values
	// of the given confidence type (e.g., "bootstrap") instead of names.
	SupportType string
}

// NewReader returns a reader ready for reading trees from `r`.
func NewReader(r io.Reader) *Reader {
	return &Reader{lexer: lex(r)}
}

// ReadAll returns all of the Newick trees in the source input. The first
// error that occurs is returned with no trees. The error is never `io.EOF`.
func (lx *Reader) ReadAll() ([]*phyloxml.Phylogeny, error) {
	trees := make([]*phyloxml.Phylogeny, 0)
	for {
		tree, err := lx.ReadTree()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		trees = append(trees, tree)
	}
	return trees, nil
}

// ReadTree reads a single tree from the source input. If the end of the
// input is reached, then a nil tree is returned with `io.EOF` as the error.
// The empty tree ';' has no root clade.
func (lx *Reader) ReadTree() (*phyloxml.Phylogeny, error) {
	rooted := lx.Rooted
	item := lx.nextItem()
	for item.typ == itemComment {
		switch strings.ToUpper(strings.TrimSpace(item.val)) {
		case "&R":
			rooted = true
		case "&U":
			rooted = false
		}
		item = lx.nextItem()
	}

	tree := phyloxml.NewPhylogeny(rooted)
	switch item.typ {
	case itemTerminal:
		return tree, nil
	case itemEOF:
		return nil, io.EOF
	}

	root := &phyloxml.Clade{}
	if err := lx.parse(root, item); err != nil {
		return nil, err
	}
	item = lx.nextItem()
	if item.typ != itemTerminal {
		return nil, expectErr(item, fmt.Sprintf("a terminal '%c'", terminal))
	}
	if root.IsTerminal() && len(root.Name) == 0 && root.BranchLength == nil {
		return tree, nil // the empty tree ';'
	}
	if err := tree.SetRoot(root); err != nil {
		return nil, err
	}
	return tree, nil
}

func (lx *Reader) parse(parent *phyloxml.Clade, next item) error {
	switch next.typ {
	case itemSubtree:
		return lx.setLabelLength(parent, next, false)
	case itemDescendentsStart:
		// good to go!
	default:
		return expectErr(next, "a descendent list or a subtree")
	}

	// If we're here, then we're starting a descendent list.
	// Now we should expected one or more subtrees or descendent lists.
TOKENS:
	for {
		item := lx.nextItem()
		switch item.typ {
		case itemComment:
			continue
		case itemSubtree, itemDescendentsStart:
			child := &phyloxml.Clade{}
			if err := lx.parse(child, item); err != nil {
				return err
			}
			if err := parent.AddClade(child); err != nil {
				return errf(item.line, "%s", err)
			}
		case itemDescendentsEnd:
			break TOKENS
		default:
			return expectErr(item, "a descendent list or a subtree")
		}
	}

	// After a descendent list is done, we should always expect a subtree.
	item := lx.nextItem()
	if item.typ != itemSubtree {
		return expectErr(item, "a subtree")
	}
	return lx.setLabelLength(parent, item, true)
}

func (lx *Reader) setLabelLength(c *phyloxml.Clade, it item, internal bool) error {
	label, length, err := splitLabel(it.val)
	if err != nil {
		return errf(it.line, "%s", err)
	}
	if len(length) > 0 {
		bl, err := strconv.ParseFloat(length, 64)
		if err != nil {
			return errf(it.line, "Invalid branch length: %s", err)
		}
		c.BranchLength = &bl
	}
	if internal && len(lx.SupportType) > 0 && len(label) > 0 {
		if v, err := strconv.ParseFloat(label, 64); err == nil {
			c.Confidences = append(c.Confidences,
				phyloxml.NewConfidence(v, lx.SupportType))
			return nil
		}
	}
	c.Name = label
	return nil
}

// splitLabel decodes the text of a subtree into its label and the text of
// its branch length. Comments are dropped and quoted labels are unquoted.
func splitLabel(s string) (label, length string, err error) {
	var (
		buf      strings.Builder
		inQuote  bool
		quoted   bool
		inLength bool
	)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case inQuote:
			if ch == quote {
				if i+1 < len(s) && s[i+1] == quote {
					buf.WriteByte(quote)
					i++
					continue
				}
				inQuote = false
				continue
			}
			buf.WriteByte(ch)
		case ch == commentStart:
			end := strings.IndexByte(s[i:], commentEnd)
			if end < 0 {
				return "", "", fmt.Errorf("Unterminated comment in '%s'.", s)
			}
			i += end
		case ch == quote:
			if quoted || inLength {
				return "", "", fmt.Errorf("Misplaced quote in '%s'.", s)
			}
			inQuote, quoted = true, true
		case ch == lengthStart && !inLength:
			label = buf.String()
			buf.Reset()
			inLength = true
		case quoted && !inLength && (isBlank(rune(ch)) || isNL(rune(ch))):
			// blanks between a quoted label and its length
		default:
			buf.WriteByte(ch)
		}
	}
	if inLength {
		length = strings.TrimSpace(buf.String())
	} else {
		label = buf.String()
	}
	if !quoted {
		label = strings.TrimSpace(label)
	}
	return label, length, nil
}

func expectErr(item item, expected string) error {
	if item.typ == itemError {
		return errf(item.line, "%s", item.val)
	}
	return errf(item.line, "Unexpected %s, expected %s.", item.typ, expected)
}

func errf(line int, format string, v ...interface{}) error {
	return fmt.Errorf("Error on line %d: %s", line, fmt.Sprintf(format, v...))
}
