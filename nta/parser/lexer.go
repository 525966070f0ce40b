// Package parser turns NTA declaration text into symbols on a model
// declaration block. It is deliberately tolerant: statements it cannot
// understand are reported as diagnostics and skipped, so one bad line never
// hides the rest of a document from the language tooling.
package parser

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenNumber
	tokenString
	tokenPunct
)

// token is a lexeme with its character offset in the source text
type token struct {
	kind   tokenKind
	text   string
	offset int
}

type lexer struct {
	src string
	pos int
}

func newLexer(src string) *lexer {
	return &lexer{src: src}
}

// next returns the following token, skipping whitespace and comments
func (l *lexer) next() token {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return token{kind: tokenEOF, offset: l.pos}
	}

	start := l.pos
	ch := l.src[l.pos]

	switch {
	case isIdentStart(ch):
		for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokenIdent, text: l.src[start:l.pos], offset: start}

	case isDigit(ch):
		for l.pos < len(l.src) && (isDigit(l.src[l.pos]) || l.src[l.pos] == '.' || l.src[l.pos] == 'x' ||
			isHexLetter(l.src[l.pos])) {
			l.pos++
		}
		return token{kind: tokenNumber, text: l.src[start:l.pos], offset: start}

	case ch == '"':
		l.pos++
		for l.pos < len(l.src) && l.src[l.pos] != '"' {
			if l.src[l.pos] == '\\' && l.pos+1 < len(l.src) {
				l.pos++
			}
			l.pos++
		}
		if l.pos < len(l.src) {
			l.pos++ // closing quote
		}
		return token{kind: tokenString, text: l.src[start:l.pos], offset: start}

	default:
		// Two-character operators the declaration grammar cares about
		if ch == ':' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '=' {
			l.pos += 2
			return token{kind: tokenPunct, text: ":=", offset: start}
		}
		l.pos++
		return token{kind: tokenPunct, text: string(ch), offset: start}
	}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			l.pos++
		case ch == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		case ch == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '*':
			l.pos += 2
			for l.pos+1 < len(l.src) && !(l.src[l.pos] == '*' && l.src[l.pos+1] == '/') {
				l.pos++
			}
			if l.pos+1 < len(l.src) {
				l.pos += 2
			} else {
				l.pos = len(l.src)
			}
		default:
			return
		}
	}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isHexLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}
