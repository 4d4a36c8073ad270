package lang

// Position locates a token in the source text. Offset is a 0-based byte
// offset; Line and Column are 1-based.
type Position struct {
	Offset int
	Line   int
	Column int
}

// TokenKind classifies a scanned token.
type TokenKind int

const (
	TokenEOF TokenKind = iota

	// Atoms
	TokenIndex // decimal argument position
	TokenText  // quoted string literal

	// Grouping
	TokenLParen
	TokenRParen

	// Prefix operators
	TokenFix
	TokenGrp
	TokenSeq
	TokenNest
	TokenPack

	// Infix operators
	TokenLine       // @
	TokenDoubleLine // @@
	TokenComp       // &
	TokenPadComp    // +
	TokenFixComp    // !&
	TokenFixPadComp // !+
)

// String returns the surface form of the token kind, or a category name
// for tokens with variable text.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenIndex:
		return "index"
	case TokenText:
		return "text"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenFix:
		return "fix"
	case TokenGrp:
		return "grp"
	case TokenSeq:
		return "seq"
	case TokenNest:
		return "nest"
	case TokenPack:
		return "pack"
	case TokenLine:
		return "@"
	case TokenDoubleLine:
		return "@@"
	case TokenComp:
		return "&"
	case TokenPadComp:
		return "+"
	case TokenFixComp:
		return "!&"
	case TokenFixPadComp:
		return "!+"
	default:
		return "unknown"
	}
}

// Token is one lexical unit of DSL source.
type Token struct {
	Kind    TokenKind
	Literal string // Decoded payload for TokenIndex and TokenText
	Pos     Position
}

// keywords maps prefix operator names to their token kinds.
var keywords = map[string]TokenKind{
	"fix":  TokenFix,
	"grp":  TokenGrp,
	"seq":  TokenSeq,
	"nest": TokenNest,
	"pack": TokenPack,
}

// infixRule describes one infix operator: the node it constructs and its
// binding power.
type infixRule struct {
	kind  SyntaxKind
	power int
}

// Grammar is the operator table consulted by the parser. It maps token
// kinds to the syntax nodes they construct, with binding powers resolving
// precedence. A Grammar is immutable after construction and safe for
// concurrent use.
type Grammar struct {
	prefix      map[TokenKind]SyntaxKind
	infix       map[TokenKind]infixRule
	prefixPower int
}

// Binding power tiers. Prefix operators outrank every infix operator, and
// all infix operators share one tier.
const (
	infixPower  = 10
	prefixPower = 20
)

// DefaultGrammar returns the operator table for the surface syntax
// documented in this package. The table is built fresh on each call so
// that no two parsers share mutable state.
func DefaultGrammar() Grammar {
	return Grammar{
		prefix: map[TokenKind]SyntaxKind{
			TokenFix:  SyntaxFix,
			TokenGrp:  SyntaxGrp,
			TokenSeq:  SyntaxSeq,
			TokenNest: SyntaxNest,
			TokenPack: SyntaxPack,
		},
		infix: map[TokenKind]infixRule{
			TokenLine:       {kind: SyntaxLine, power: infixPower},
			TokenDoubleLine: {kind: SyntaxDoubleLine, power: infixPower},
			TokenComp:       {kind: SyntaxComp, power: infixPower},
			TokenPadComp:    {kind: SyntaxPadComp, power: infixPower},
			TokenFixComp:    {kind: SyntaxFixComp, power: infixPower},
			TokenFixPadComp: {kind: SyntaxFixPadComp, power: infixPower},
		},
		prefixPower: prefixPower,
	}
}

// expectedPrimary lists the token categories accepted where an operand
// must begin, for SyntaxError reporting.
func (g Grammar) expectedPrimary() []string {
	exp := []string{
		TokenIndex.String(),
		TokenText.String(),
		TokenLParen.String(),
	}

	for kind := range g.prefix {
		exp = append(exp, kind.String())
	}

	return exp
}
