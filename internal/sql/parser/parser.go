package parser

import (
	"github.com/example/basalt-sql/internal/sql/lexer"
)

// Parse consumes the token sequence produced by lexer.Tokenize and
// returns the statement AST. The sequence must end in an EOF token;
// after the statement an optional trailing semicolon is allowed, then
// the sequence must be exhausted.
func Parse(tokens []lexer.Token) (Statement, error) {
	p := &parser{tokens: tokens}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind == lexer.Semicolon {
		p.next()
	}
	if tok := p.peek(); tok.Kind != lexer.EOF {
		return nil, errUnexpectedToken(tok)
	}
	return stmt, nil
}

// ParseString tokenizes and parses a single statement.
func ParseString(input string) (Statement, error) {
	return Parse(lexer.Tokenize(input))
}

// parser walks a materialized token slice with a single forward
// cursor. The cursor never rewinds; reads past the end keep yielding
// the trailing EOF token.
type parser struct {
	tokens []lexer.Token
	pos    int
}

func (p *parser) peek() lexer.Token {
	if p.pos >= len(p.tokens) {
		if n := len(p.tokens); n > 0 {
			return p.tokens[n-1]
		}
		return lexer.Token{Kind: lexer.EOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) next() lexer.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *parser) consumeKeyword(k lexer.Keyword) error {
	tok := p.next()
	if tok.Kind == lexer.EOF {
		return errUnexpectedEnd()
	}
	if !tok.IsKeyword(k) {
		return errExpectedKeyword(k, tok)
	}
	return nil
}

func (p *parser) expectIdentifier() (string, error) {
	tok := p.next()
	if tok.Kind == lexer.EOF {
		return "", errUnexpectedEnd()
	}
	if tok.Kind != lexer.Ident {
		return "", errExpectedIdentifier(tok)
	}
	return tok.Text, nil
}

func (p *parser) expectToken(kind lexer.Kind, expected string) error {
	tok := p.next()
	if tok.Kind != kind {
		return errExpectedToken(expected, tok)
	}
	return nil
}

// parseStatement dispatches on the leading keyword without
// backtracking.
func (p *parser) parseStatement() (Statement, error) {
	tok := p.peek()
	switch {
	case tok.IsKeyword(lexer.KeywordSelect):
		return p.parseSelect()
	case tok.IsKeyword(lexer.KeywordCreate):
		return p.parseCreateTable()
	case tok.IsKeyword(lexer.KeywordInsert):
		return p.parseInsert()
	case tok.Kind == lexer.EOF:
		return nil, errGeneral("empty input")
	default:
		return nil, errUnknownStatement(tok)
	}
}

func (p *parser) parseSelect() (Statement, error) {
	if err := p.consumeKeyword(lexer.KeywordSelect); err != nil {
		return nil, err
	}

	columns := []string{}
cols:
	for {
		tok := p.next()
		switch {
		case tok.Kind == lexer.Ident:
			columns = append(columns, tok.Text)
		case tok.Kind == lexer.Comma:
			// Separator only; the column grammar tolerates it loosely.
		case tok.IsKeyword(lexer.KeywordFrom):
			break cols
		case tok.Kind == lexer.EOF:
			return nil, errGeneral("unexpected end of input while reading columns")
		default:
			return nil, errGeneral("unexpected token in column list: %s", tok)
		}
	}

	table, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	stmt := &SelectStmt{Columns: columns, Table: table}

	if p.peek().IsKeyword(lexer.KeywordWhere) {
		p.next()
		expr, err := p.parseExpression(lowestPrecedence)
		if err != nil {
			return nil, err
		}
		stmt.Selection = expr
	}

	if p.peek().IsKeyword(lexer.KeywordOrder) {
		p.next()
		if err := p.consumeKeyword(lexer.KeywordBy); err != nil {
			return nil, err
		}
		order := []string{}
	orderCols:
		for {
			tok := p.next()
			switch tok.Kind {
			case lexer.Ident:
				order = append(order, tok.Text)
			case lexer.Comma:
			case lexer.Semicolon, lexer.EOF:
				break orderCols
			default:
				return nil, errGeneral("unexpected token in ORDER BY: %s", tok)
			}
		}
		stmt.OrderBy = order
	}

	return stmt, nil
}

func (p *parser) parseCreateTable() (Statement, error) {
	if err := p.consumeKeyword(lexer.KeywordCreate); err != nil {
		return nil, err
	}
	if err := p.consumeKeyword(lexer.KeywordTable); err != nil {
		return nil, err
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expectToken(lexer.LParen, "( after table name"); err != nil {
		return nil, err
	}

	columns := []ColumnDef{}
defs:
	for {
		tok := p.next()
		switch tok.Kind {
		case lexer.Ident:
			typ, length, err := p.parseColumnType()
			if err != nil {
				return nil, err
			}
			columns = append(columns, ColumnDef{Name: tok.Text, Type: typ, Length: length})
		case lexer.Comma:
		case lexer.RParen:
			break defs
		case lexer.EOF:
			return nil, errUnexpectedEnd()
		default:
			return nil, errGeneral("unexpected token in column definitions: %s", tok)
		}
	}

	return &CreateTableStmt{Name: name, Columns: columns}, nil
}

func (p *parser) parseColumnType() (DataType, int, error) {
	tok := p.next()
	switch {
	case tok.IsKeyword(lexer.KeywordInt):
		return DataTypeInt, 0, nil
	case tok.IsKeyword(lexer.KeywordBoolean):
		return DataTypeBoolean, 0, nil
	case tok.IsKeyword(lexer.KeywordVarchar):
		if p.peek().Kind == lexer.LParen {
			p.next()
			if size := p.next(); size.Kind == lexer.Number {
				if p.next().Kind == lexer.RParen {
					return DataTypeVarchar, int(size.Number), nil
				}
			}
		}
		return 0, 0, errGeneral("expected size for VARCHAR")
	case tok.Kind == lexer.EOF:
		return 0, 0, errUnexpectedEnd()
	default:
		return 0, 0, errGeneral("unexpected column type: %s", tok)
	}
}

func (p *parser) parseInsert() (Statement, error) {
	if err := p.consumeKeyword(lexer.KeywordInsert); err != nil {
		return nil, err
	}
	if err := p.consumeKeyword(lexer.KeywordInto); err != nil {
		return nil, err
	}
	table, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expectToken(lexer.LParen, "column list in INSERT"); err != nil {
		return nil, err
	}

	columns := []string{}
names:
	for {
		tok := p.next()
		switch tok.Kind {
		case lexer.Ident:
			columns = append(columns, tok.Text)
		case lexer.Comma:
		case lexer.RParen:
			break names
		case lexer.EOF:
			return nil, errUnexpectedEnd()
		default:
			return nil, errGeneral("unexpected token in column list: %s", tok)
		}
	}

	if err := p.consumeKeyword(lexer.KeywordValues); err != nil {
		return nil, err
	}
	if err := p.expectToken(lexer.LParen, "value list in INSERT"); err != nil {
		return nil, err
	}

	// VALUES entries are literals or bare identifiers, parsed here
	// directly; the expression parser is never involved.
	values := []Expression{}
vals:
	for {
		tok := p.next()
		switch tok.Kind {
		case lexer.Number:
			values = append(values, &NumberLit{Value: tok.Number})
		case lexer.String:
			values = append(values, &StringLit{Value: tok.Text})
		case lexer.Boolean:
			values = append(values, &BoolLit{Value: tok.Bool})
		case lexer.Null:
			values = append(values, &NullLit{})
		case lexer.Ident:
			values = append(values, &ColumnRef{Name: tok.Text})
		case lexer.Comma:
		case lexer.RParen:
			break vals
		case lexer.EOF:
			return nil, errUnexpectedEnd()
		default:
			return nil, errGeneral("unexpected token in VALUES: %s", tok)
		}
	}

	return &InsertStmt{Table: table, Columns: columns, Values: values}, nil
}
