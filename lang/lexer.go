package lang

import (
	"strconv"
	"unicode"
)

// lexer scans DSL source text into tokens, tracking line and column for
// error reporting.
type lexer struct {
	src    []rune
	source string
	pos    int
	line   int
	col    int
}

func newLexer(source string) *lexer {
	return &lexer{
		src:    []rune(source),
		source: source,
		line:   1,
		col:    1,
	}
}

// scan tokenizes the entire input. The returned slice always ends with a
// TokenEOF carrying the position one past the last rune.
func scan(source string) ([]Token, error) {
	lx := newLexer(source)

	var toks []Token

	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)

		if tok.Kind == TokenEOF {
			return toks, nil
		}
	}
}

func (lx *lexer) position() Position {
	return Position{Offset: lx.pos, Line: lx.line, Column: lx.col}
}

func (lx *lexer) eof() bool { return lx.pos >= len(lx.src) }

func (lx *lexer) peek() rune {
	if lx.eof() {
		return 0
	}

	return lx.src[lx.pos]
}

func (lx *lexer) advance() rune {
	r := lx.src[lx.pos]
	lx.pos++

	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}

	return r
}

// skip consumes whitespace and '#' comments, which run to end of line.
func (lx *lexer) skip() {
	for !lx.eof() {
		switch r := lx.peek(); {
		case unicode.IsSpace(r):
			lx.advance()

		case r == '#':
			for !lx.eof() && lx.peek() != '\n' {
				lx.advance()
			}

		default:
			return
		}
	}
}

func (lx *lexer) errorf(pos Position, expected ...string) error {
	return &SyntaxError{Pos: pos, Expected: expected, Source: lx.source}
}

func (lx *lexer) next() (Token, error) {
	lx.skip()

	pos := lx.position()

	if lx.eof() {
		return Token{Kind: TokenEOF, Pos: pos}, nil
	}

	switch r := lx.peek(); {
	case r >= '0' && r <= '9':
		return lx.index(pos)

	case r == '"':
		return lx.text(pos)

	case unicode.IsLetter(r):
		return lx.keyword(pos)

	case r == '(':
		lx.advance()

		return Token{Kind: TokenLParen, Pos: pos}, nil

	case r == ')':
		lx.advance()

		return Token{Kind: TokenRParen, Pos: pos}, nil

	case r == '@':
		lx.advance()

		if lx.peek() == '@' {
			lx.advance()

			return Token{Kind: TokenDoubleLine, Pos: pos}, nil
		}

		return Token{Kind: TokenLine, Pos: pos}, nil

	case r == '&':
		lx.advance()

		return Token{Kind: TokenComp, Pos: pos}, nil

	case r == '+':
		lx.advance()

		return Token{Kind: TokenPadComp, Pos: pos}, nil

	case r == '!':
		lx.advance()

		switch lx.peek() {
		case '&':
			lx.advance()

			return Token{Kind: TokenFixComp, Pos: pos}, nil

		case '+':
			lx.advance()

			return Token{Kind: TokenFixPadComp, Pos: pos}, nil
		}

		return Token{}, lx.errorf(lx.position(), "&", "+")

	default:
		return Token{}, lx.errorf(pos, "index", "text", "operator", "(")
	}
}

// index scans a non-negative decimal integer literal.
func (lx *lexer) index(pos Position) (Token, error) {
	start := lx.pos
	for !lx.eof() && lx.peek() >= '0' && lx.peek() <= '9' {
		lx.advance()
	}

	return Token{
		Kind:    TokenIndex,
		Literal: string(lx.src[start:lx.pos]),
		Pos:     pos,
	}, nil
}

// text scans a double-quoted string literal. Escape sequences follow Go
// string syntax and are decoded into the token's Literal.
func (lx *lexer) text(pos Position) (Token, error) {
	start := lx.pos
	lx.advance() // opening quote

	for {
		if lx.eof() || lx.peek() == '\n' {
			return Token{}, lx.errorf(lx.position(), `"`)
		}

		r := lx.advance()
		if r == '\\' && !lx.eof() {
			lx.advance()

			continue
		}

		if r == '"' && lx.pos > start+1 {
			break
		}
	}

	decoded, err := strconv.Unquote(string(lx.src[start:lx.pos]))
	if err != nil {
		return Token{}, lx.errorf(pos, "text")
	}

	return Token{Kind: TokenText, Literal: decoded, Pos: pos}, nil
}

// keyword scans a letter run and resolves it against the prefix operator
// names. Unknown words are syntax errors.
func (lx *lexer) keyword(pos Position) (Token, error) {
	start := lx.pos
	for !lx.eof() && unicode.IsLetter(lx.peek()) {
		lx.advance()
	}

	word := string(lx.src[start:lx.pos])

	kind, ok := keywords[word]
	if !ok {
		return Token{}, lx.errorf(pos, "fix", "grp", "seq", "nest", "pack")
	}

	return Token{Kind: kind, Pos: pos}, nil
}
