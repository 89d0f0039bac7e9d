package lexer

import (
	"strconv"
	"strings"
	"unicode"
)

// Lexer performs tokenisation over the input SQL string.
type Lexer struct {
	input []rune
	pos   int
}

// New initialises a lexer for the provided SQL source.
func New(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

// Tokenize scans the whole input eagerly and returns the token
// sequence. The final element is the only EOF token.
func Tokenize(input string) []Token {
	lex := New(input)
	var out []Token
	for {
		tok := lex.Next()
		out = append(out, tok)
		if tok.Kind == EOF {
			return out
		}
	}
}

// Next returns the next token from the stream. Every call consumes at
// least one input rune until the input is exhausted; after that, Next
// keeps returning EOF.
func (l *Lexer) Next() Token {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return Token{Kind: EOF, Offset: l.pos}
	}

	start := l.pos
	ch := l.input[l.pos]
	switch ch {
	case ',':
		l.pos++
		return Token{Kind: Comma, Text: ",", Offset: start}
	case ';':
		l.pos++
		return Token{Kind: Semicolon, Text: ";", Offset: start}
	case '(':
		l.pos++
		return Token{Kind: LParen, Text: "(", Offset: start}
	case ')':
		l.pos++
		return Token{Kind: RParen, Text: ")", Offset: start}
	case '+':
		l.pos++
		return Token{Kind: Plus, Text: "+", Offset: start}
	case '-':
		l.pos++
		return Token{Kind: Minus, Text: "-", Offset: start}
	case '*':
		l.pos++
		return Token{Kind: Star, Text: "*", Offset: start}
	case '/':
		l.pos++
		return Token{Kind: Slash, Text: "/", Offset: start}
	case '=':
		l.pos++
		return Token{Kind: Equal, Text: "=", Offset: start}
	case '<':
		// Two-rune operators are matched before their prefixes.
		l.pos++
		if l.pos < len(l.input) {
			switch l.input[l.pos] {
			case '=':
				l.pos++
				return Token{Kind: LessEqual, Text: "<=", Offset: start}
			case '>':
				l.pos++
				return Token{Kind: NotEqual, Text: "<>", Offset: start}
			}
		}
		return Token{Kind: Less, Text: "<", Offset: start}
	case '>':
		l.pos++
		if l.pos < len(l.input) && l.input[l.pos] == '=' {
			l.pos++
			return Token{Kind: GreaterEqual, Text: ">=", Offset: start}
		}
		return Token{Kind: Greater, Text: ">", Offset: start}
	case '\'', '"':
		return l.scanString(ch)
	}

	if unicode.IsLetter(ch) || ch == '_' {
		return l.scanWord()
	}
	if unicode.IsDigit(ch) {
		return l.scanNumber()
	}

	l.pos++
	return Token{Kind: Illegal, Text: string(ch), Offset: start}
}

func (l *Lexer) scanWord() Token {
	start := l.pos
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' {
			l.pos++
			continue
		}
		break
	}
	word := string(l.input[start:l.pos])
	switch upper := strings.ToUpper(word); upper {
	case "TRUE":
		return Token{Kind: Boolean, Bool: true, Offset: start}
	case "FALSE":
		return Token{Kind: Boolean, Bool: false, Offset: start}
	case "NULL":
		return Token{Kind: Null, Offset: start}
	default:
		if kw, ok := keywords[upper]; ok {
			return Token{Kind: KeywordTok, Keyword: kw, Text: upper, Offset: start}
		}
		return Token{Kind: Ident, Text: word, Offset: start}
	}
}

func (l *Lexer) scanNumber() Token {
	start := l.pos
	for l.pos < len(l.input) && unicode.IsDigit(l.input[l.pos]) {
		l.pos++
	}
	lit := string(l.input[start:l.pos])
	value, err := strconv.ParseUint(lit, 10, 64)
	if err != nil {
		return Token{Kind: Illegal, Text: lit, Offset: start}
	}
	return Token{Kind: Number, Number: value, Text: lit, Offset: start}
}

func (l *Lexer) scanString(quote rune) Token {
	start := l.pos
	l.pos++
	var b strings.Builder
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == quote {
			// A doubled delimiter is an escaped literal quote.
			if l.pos+1 < len(l.input) && l.input[l.pos+1] == quote {
				b.WriteRune(quote)
				l.pos += 2
				continue
			}
			l.pos++
			return Token{Kind: String, Text: b.String(), Offset: start}
		}
		b.WriteRune(ch)
		l.pos++
	}
	return Token{Kind: Illegal, Text: "unterminated string literal", Offset: start}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(l.input[l.pos]) {
		l.pos++
	}
}
