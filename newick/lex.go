package newick

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

type itemType int

const (
	itemError itemType = iota
	itemEOF
	itemTerminal
	itemComment
	itemDescendentsStart
	itemDescendentsEnd
	itemSubtree
)

const (
	eof           = 0
	terminal      = ';'
	descDelimiter = ','
	descStart     = '('
	descEnd       = ')'
	quote         = '\''
	commentStart  = '['
	commentEnd    = ']'
	lengthStart   = ':'
)

const unquoteBanned = " ()[]':;,"

type stateFn func(lx *lexer) stateFn

type lexer struct {
	input *bufio.Reader
	buf   string
	start int
	pos   int
	width int
	line  int
	state stateFn
	items chan item

	// the state to return to once a quoted label or comment is consumed
	resume stateFn
}

type item struct {
	typ  itemType
	val  string
	line int
}

func lex(input io.Reader) *lexer {
	return &lexer{
		input: bufio.NewReader(input),
		state: lexDescendents,
		line:  1,
		items: make(chan item, 10),
	}
}

func (lx *lexer) nextItem() item {
	for {
		select {
		case item := <-lx.items:
			return item
		default:
			if lx.state == nil {
				return item{itemEOF, "", lx.line}
			}
			lx.state = lx.state(lx)
		}
	}
}

func (lx *lexer) current() string {
	return lx.buf[lx.start:lx.pos]
}

func (lx *lexer) emit(typ itemType) {
	lx.items <- item{typ, lx.current(), lx.line}
	lx.buf = lx.buf[lx.pos:]
	lx.start, lx.pos = 0, 0
}

func (lx *lexer) next() rune {
	for lx.pos >= len(lx.buf) || !utf8.FullRuneInString(lx.buf[lx.pos:]) {
		chunk := make([]byte, 4096)
		n, err := lx.input.Read(chunk)
		lx.buf += string(chunk[:n])
		if n == 0 && err != nil {
			if lx.pos < len(lx.buf) {
				break // a truncated rune; decode it as an error rune
			}
			lx.width = 0
			return eof
		}
	}

	var r rune
	r, lx.width = utf8.DecodeRuneInString(lx.buf[lx.pos:])
	lx.pos += lx.width
	if r == '\n' {
		lx.line++
	}
	return r
}

// ignore skips over the pending input before this point.
func (lx *lexer) ignore() {
	lx.start = lx.pos
}

// backup steps back one rune. Can be called only once per call of next.
func (lx *lexer) backup() {
	lx.pos -= lx.width
	if lx.width > 0 && lx.buf[lx.pos] == '\n' {
		lx.line--
	}
}

// errorf stops all lexing by emitting an error and returning `nil`.
// Characters should be passed through escapeSpecial.
func (lx *lexer) errorf(format string, values ...interface{}) stateFn {
	lx.items <- item{itemError, fmt.Sprintf(format, values...), lx.line}
	return nil
}

// lexDescendents is the state at the start of a tree and after each
// descendent delimiter.
func lexDescendents(lx *lexer) stateFn {
	r := lx.next()
	switch {
	case isBlank(r) || isNL(r):
		lx.ignore()
		return lexDescendents
	case r == descStart:
		lx.ignore()
		lx.emit(itemDescendentsStart)
		return lexSubtreeStart
	case r == commentStart:
		lx.ignore()
		return lexComment
	case r == eof:
		lx.emit(itemEOF)
		return nil
	}
	lx.backup()
	lx.ignore()
	return lexLabel
}

// lexComment consumes a comment that stands on its own and emits it without
// its brackets.
func lexComment(lx *lexer) stateFn {
	switch r := lx.next(); r {
	case commentEnd:
		lx.backup()
		lx.emit(itemComment)
		lx.next()
		lx.ignore()
		return lexDescendents
	case eof:
		return lx.errorf("Unexpected EOF in comment.")
	}
	return lexComment
}

func lexSubtreeStart(lx *lexer) stateFn {
	r := lx.next()
	switch {
	case isBlank(r) || isNL(r):
		lx.ignore()
		return lexSubtreeStart
	case isSubtreeEnd(r):
		lx.backup()
		return lexSubtreeEnd
	case r == descStart:
		lx.backup()
		return lexDescendents
	}
	lx.backup()
	lx.ignore()
	return lexLabel
}

func lexSubtreeEnd(lx *lexer) stateFn {
	lx.emit(itemSubtree)
	switch r := lx.next(); r {
	case descDelimiter:
		lx.ignore()
		return lexDescendents
	case descEnd:
		lx.ignore()
		lx.emit(itemDescendentsEnd)
		return lexLabelStart
	case terminal:
		lx.ignore()
		lx.emit(itemTerminal)
		return lexDescendents
	case eof:
		lx.ignore()
		lx.emit(itemTerminal)
		lx.emit(itemEOF)
		return nil
	default:
		return lx.errorf("Expected end of subtree ('%s', '%s' or '%s') but "+
			"got '%s' instead.", string(descDelimiter), string(descEnd),
			string(terminal), escapeSpecial(r))
	}
}

// lexLabelStart is the state after a descendent list, where an optional
// label for the list may follow.
func lexLabelStart(lx *lexer) stateFn {
	r := lx.next()
	if isBlank(r) || isNL(r) {
		lx.ignore()
		return lexLabelStart
	}
	lx.backup()
	return lexLabel
}

// lexLabel consumes a label and an optional branch length. Quoted labels and
// comments are kept in the subtree text and decoded by the parser.
func lexLabel(lx *lexer) stateFn {
	r := lx.next()
	switch {
	case r == lengthStart:
		return lexLength
	case isSubtreeEnd(r):
		lx.backup()
		return lexSubtreeEnd
	case r == quote:
		lx.resume = lexLabel
		return lexQuoted
	case r == commentStart:
		lx.resume = lexLabel
		return lexInlineComment
	case isBlank(r) || isNL(r):
		return lexLabelEnd
	case strings.ContainsRune(unquoteBanned, r):
		return lx.errorf("Found '%s' in an unquoted label, which may not "+
			"contain the following characters: '%s'.", escapeSpecial(r),
			unquoteBanned)
	}
	return lexLabel
}

// lexLabelEnd allows whitespace and comments between a label and the end of
// its subtree.
func lexLabelEnd(lx *lexer) stateFn {
	r := lx.next()
	switch {
	case isBlank(r) || isNL(r):
		return lexLabelEnd
	case r == lengthStart:
		return lexLength
	case r == commentStart:
		lx.resume = lexLabelEnd
		return lexInlineComment
	case isSubtreeEnd(r):
		lx.backup()
		return lexSubtreeEnd
	}
	return lx.errorf("Expected a branch length or the end of a subtree, "+
		"but got '%s' instead.", escapeSpecial(r))
}

func lexQuoted(lx *lexer) stateFn {
	switch r := lx.next(); r {
	case quote:
		if lx.next() == quote { // an escaped quote
			return lexQuoted
		}
		lx.backup()
		return lx.resume
	case eof:
		return lx.errorf("Unexpected EOF in quoted label.")
	}
	return lexQuoted
}

func lexInlineComment(lx *lexer) stateFn {
	switch r := lx.next(); r {
	case commentEnd:
		return lx.resume
	case eof:
		return lx.errorf("Unexpected EOF in comment.")
	}
	return lexInlineComment
}

func lexLength(lx *lexer) stateFn {
	r := lx.next()
	switch {
	case isSubtreeEnd(r):
		lx.backup()
		return lexSubtreeEnd
	case isBlank(r) || isNL(r):
		return lexLengthEnd
	case r == commentStart:
		lx.resume = lexLengthEnd
		return lexInlineComment
	case isNumeric(r):
		return lexLength
	}
	return lx.errorf("Expected a number or the end of a subtree, but "+
		"got '%s' instead.", escapeSpecial(r))
}

func lexLengthEnd(lx *lexer) stateFn {
	r := lx.next()
	switch {
	case isBlank(r) || isNL(r):
		return lexLengthEnd
	case r == commentStart:
		lx.resume = lexLengthEnd
		return lexInlineComment
	case isSubtreeEnd(r):
		lx.backup()
		return lexSubtreeEnd
	}
	return lx.errorf("Expected the end of a subtree, but got '%s' instead.",
		escapeSpecial(r))
}

func isSubtreeEnd(r rune) bool {
	return r == descDelimiter || r == descEnd || r == terminal || r == eof
}

func isBlank(r rune) bool {
	return r == '\t' || r == ' '
}

func isNL(r rune) bool {
	return r == '\n' || r == '\r'
}

func isNumeric(r rune) bool {
	return (r >= '0' && r <= '9') || strings.ContainsRune(".-+eE", r)
}

func (itype itemType) String() string {
	switch itype {
	case itemError:
		return "Error"
	case itemEOF:
		return "EOF"
	case itemTerminal:
		return "Terminal"
	case itemComment:
		return "Comment"
	case itemDescendentsStart:
		return "Descendents (start)"
	case itemDescendentsEnd:
		return "Descendents (end)"
	case itemSubtree:
		return "Subtree"
	}
	panic(fmt.Sprintf("BUG: Unknown type '%d'.", int(itype)))
}

func (item item) String() string {
	return fmt.Sprintf("(%s, %s)", item.typ, item.val)
}

func escapeSpecial(c rune) string {
	switch c {
	case '\n':
		return "\\n"
	case eof:
		return "EOF"
	}
	return string(c)
}
