package lang

import (
	"log/slog"
	"strconv"
)

// parser consumes a token stream against an operator table and builds a
// syntax tree by precedence climbing.
type parser struct {
	grammar  Grammar
	source   string
	toks     []Token
	i        int
	depth    int
	maxDepth int
}

// parseSyntax parses a complete expression. Trailing input after the
// expression is a syntax error.
func parseSyntax(source string, g Grammar, maxDepth int) (*Syntax, error) {
	toks, err := scan(source)
	if err != nil {
		return nil, err
	}

	p := &parser{
		grammar:  g,
		source:   source,
		toks:     toks,
		maxDepth: maxDepth,
	}

	root, err := p.expression(0)
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Kind != TokenEOF {
		return nil, p.errorf(tok.Pos, TokenEOF.String())
	}

	return root, nil
}

func (p *parser) peek() Token { return p.toks[p.i] }

func (p *parser) next() Token {
	tok := p.toks[p.i]
	if tok.Kind != TokenEOF {
		p.i++
	}

	return tok
}

func (p *parser) errorf(pos Position, expected ...string) error {
	return &SyntaxError{Pos: pos, Expected: expected, Source: p.source}
}

// expression parses one expression whose operators all bind tighter than
// power. Infix operators at or below power are left for the caller.
func (p *parser) expression(power int) (*Syntax, error) {
	if p.depth >= p.maxDepth {
		return nil, ErrMaxDepth.With(slog.Int("depth", p.depth))
	}

	p.depth++
	defer func() { p.depth-- }()

	left, err := p.operand()
	if err != nil {
		return nil, err
	}

	for {
		rule, ok := p.grammar.infix[p.peek().Kind]
		if !ok || rule.power <= power {
			return left, nil
		}

		if !rule.kind.Infix() {
			return nil, ErrInternal.With(
				slog.String("token", p.peek().Kind.String()),
				slog.String("kind", rule.kind.String()),
			)
		}

		p.next()

		// Right-associative: the right operand absorbs operators of the
		// same tier, so parse it one power below the operator's own.
		right, err := p.expression(rule.power - 1)
		if err != nil {
			return nil, err
		}

		left = &Syntax{Kind: rule.kind, Left: left, Right: right}
	}
}

// operand parses a primary atom or a prefix application.
func (p *parser) operand() (*Syntax, error) {
	tok := p.next()

	switch tok.Kind {
	case TokenIndex:
		n, err := strconv.Atoi(tok.Literal)
		if err != nil {
			return nil, p.errorf(tok.Pos, TokenIndex.String())
		}

		return &Syntax{Kind: SyntaxIndex, Index: n}, nil

	case TokenText:
		return &Syntax{Kind: SyntaxText, Text: tok.Literal}, nil

	case TokenLParen:
		inner, err := p.expression(0)
		if err != nil {
			return nil, err
		}

		if tok := p.next(); tok.Kind != TokenRParen {
			return nil, p.errorf(tok.Pos, TokenRParen.String())
		}

		return inner, nil
	}

	if kind, ok := p.grammar.prefix[tok.Kind]; ok {
		if !kind.Prefix() {
			return nil, ErrInternal.With(
				slog.String("token", tok.Kind.String()),
				slog.String("kind", kind.String()),
			)
		}

		// Prefix operators bind tighter than any infix operator.
		child, err := p.expression(p.grammar.prefixPower)
		if err != nil {
			return nil, err
		}

		return &Syntax{Kind: kind, Left: child}, nil
	}

	return nil, p.errorf(tok.Pos, p.grammar.expectedPrimary()...)
}
