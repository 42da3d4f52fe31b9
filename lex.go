package arith

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
	// val is the value of a tokenNum, either parsed from text or substituted
	// for a name.
	val Value
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is an integer or decimal literal, or a name after
	// substitution.
	tokenNum
	// tokenIdent is a variable name.
	tokenIdent
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
	// tokenJunk is a run of text that is none of the above.
	tokenJunk
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go mod tidy

// Operators contains the binary operators.
const Operators = "+-*/"

const eof = -1

// lexer splits a single expression into tokens. Tokens are matched in order
// of priority at each position: a name; a number; an operator or parenthesis.
// A name may follow a number directly, so "2x" is two tokens. Text that
// matches none of them becomes junk, trimmed of surrounding space.
type lexer struct {
	src string
	// off is the byte offset of the next rune.
	off int
	// rune is the number of runes scanned.
	rune int
}

func lex(src string) *lexer {
	return &lexer{src: src}
}

// at returns the rune starting at byte offset off and its size, or eof.
func (l *lexer) at(off int) (rune, int) {
	if off >= len(l.src) {
		return eof, 0
	}
	return utf8.DecodeRuneInString(l.src[off:])
}

func (l *lexer) advance(sz int) {
	l.off += sz
	l.rune++
}

// starts reports whether a token other than junk begins at byte offset off.
func (l *lexer) starts(off int) bool {
	r, sz := l.at(off)
	switch {
	case r == eof:
		return false
	case isNameStart(r), isDigit(r):
		return true
	case r == '.':
		n, _ := l.at(off + sz)
		return isDigit(n)
	default:
		return strings.ContainsRune(Operators+"()", r)
	}
}

// next scans the next token from the input. At the end of input, the result
// is an EOF token.
func (l *lexer) next() lexToken {
	r, sz := l.at(l.off)
	for unicode.IsSpace(r) {
		l.advance(sz)
		r, sz = l.at(l.off)
	}
	tok := lexToken{pos: l.rune + 1}
	start := l.off
	switch {
	case r == eof:
		tok.kind = tokenEOF
		return tok
	case isNameStart(r):
		l.scanIdent()
		tok.kind = tokenIdent
	case isDigit(r), r == '.' && l.starts(l.off):
		l.scanNum()
		tok.kind = tokenNum
		v, err := ParseValue(l.src[start:l.off])
		if err != nil {
			// Unreadable numbers are junk.
			tok.kind = tokenJunk
			break
		}
		tok.val = v
	case strings.ContainsRune(Operators, r):
		l.advance(sz)
		tok.kind = tokenOp
	case r == '(':
		l.advance(sz)
		tok.kind = tokenOpen
	case r == ')':
		l.advance(sz)
		tok.kind = tokenClose
	default:
		l.advance(sz)
		for !l.starts(l.off) {
			_, sz := l.at(l.off)
			if sz == 0 {
				break
			}
			l.advance(sz)
		}
		tok.kind = tokenJunk
		tok.text = strings.TrimRightFunc(l.src[start:l.off], unicode.IsSpace)
		return tok
	}
	tok.text = l.src[start:l.off]
	return tok
}

// scanNum scans digits with at most one decimal point.
func (l *lexer) scanNum() {
	dot := false
	for {
		r, sz := l.at(l.off)
		switch {
		case isDigit(r):
		case r == '.' && !dot:
			dot = true
		default:
			return
		}
		l.advance(sz)
	}
}

func (l *lexer) scanIdent() {
	for {
		r, sz := l.at(l.off)
		if !isWord(r) {
			return
		}
		l.advance(sz)
	}
}

// tokenize lexes all of src. The result does not include the EOF token.
func tokenize(src string) []lexToken {
	scan := lex(src)
	var toks []lexToken
	for {
		tok := scan.next()
		if tok.kind == tokenEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isNameStart(r rune) bool {
	return r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsName reports whether s is a valid variable name: an ASCII letter or
// underscore followed by any letters, digits, and underscores.
func IsName(s string) bool {
	r, sz := utf8.DecodeRuneInString(s)
	if !isNameStart(r) {
		return false
	}
	for _, r := range s[sz:] {
		if !isWord(r) {
			return false
		}
	}
	return true
}

var comment = regexp.MustCompile(`//.*?//`)

// StripComments removes every comment from src and trims the result. A
// comment runs from // to the nearest following // on the same line; a lone
// // is left as is.
func StripComments(src string) string {
	return strings.TrimSpace(comment.ReplaceAllLiteralString(src, ""))
}
