package parser

import (
	"github.com/example/basalt-sql/internal/sql/lexer"
)

// Binding powers, low to high. Binary operators are left-associative:
// the right-hand side of an operator is parsed at its power plus one.
const (
	lowestPrecedence         = 1
	orPrecedence             = 1
	andPrecedence            = 2
	notPrecedence            = 3
	comparisonPrecedence     = 4
	additivePrecedence       = 5
	negatePrecedence         = 6
	multiplicativePrecedence = 7
)

var binaryPrecedence = map[BinaryOp]int{
	BinaryOr:           orPrecedence,
	BinaryAnd:          andPrecedence,
	BinaryEqual:        comparisonPrecedence,
	BinaryNotEqual:     comparisonPrecedence,
	BinaryLess:         comparisonPrecedence,
	BinaryLessEqual:    comparisonPrecedence,
	BinaryGreater:      comparisonPrecedence,
	BinaryGreaterEqual: comparisonPrecedence,
	BinaryAdd:          additivePrecedence,
	BinarySubtract:     additivePrecedence,
	BinaryMultiply:     multiplicativePrecedence,
	BinaryDivide:       multiplicativePrecedence,
}

func binaryOpForToken(tok lexer.Token) (BinaryOp, bool) {
	switch tok.Kind {
	case lexer.Equal:
		return BinaryEqual, true
	case lexer.NotEqual:
		return BinaryNotEqual, true
	case lexer.Less:
		return BinaryLess, true
	case lexer.LessEqual:
		return BinaryLessEqual, true
	case lexer.Greater:
		return BinaryGreater, true
	case lexer.GreaterEqual:
		return BinaryGreaterEqual, true
	case lexer.Plus:
		return BinaryAdd, true
	case lexer.Minus:
		return BinarySubtract, true
	case lexer.Star:
		return BinaryMultiply, true
	case lexer.Slash:
		return BinaryDivide, true
	case lexer.KeywordTok:
		switch tok.Keyword {
		case lexer.KeywordAnd:
			return BinaryAnd, true
		case lexer.KeywordOr:
			return BinaryOr, true
		}
	}
	return "", false
}

// ParseExpression parses a standalone expression from a token
// sequence and requires the sequence to be exhausted afterwards.
func ParseExpression(tokens []lexer.Token) (Expression, error) {
	p := &parser{tokens: tokens}
	expr, err := p.parseExpression(lowestPrecedence)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != lexer.EOF {
		return nil, errUnexpectedToken(tok)
	}
	return expr, nil
}

// parseExpression climbs operator precedence starting from a primary.
// It never consumes an operator whose binding power is below minPower,
// leaving it for the enclosing call.
func (p *parser) parseExpression(minPower int) (Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := binaryOpForToken(p.peek())
		if !ok {
			return left, nil
		}
		power := binaryPrecedence[op]
		if power < minPower {
			return left, nil
		}
		p.next()
		right, err := p.parseExpression(power + 1)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Op: op, Right: right}
	}
}

func (p *parser) parsePrimary() (Expression, error) {
	tok := p.next()
	switch tok.Kind {
	case lexer.Ident:
		return &ColumnRef{Name: tok.Text}, nil
	case lexer.Number:
		return &NumberLit{Value: tok.Number}, nil
	case lexer.String:
		return &StringLit{Value: tok.Text}, nil
	case lexer.Boolean:
		return &BoolLit{Value: tok.Bool}, nil
	case lexer.Null:
		return &NullLit{}, nil
	case lexer.Minus:
		operand, err := p.parseExpression(negatePrecedence)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: UnaryNegate, Expr: operand}, nil
	case lexer.KeywordTok:
		if tok.Keyword == lexer.KeywordNot {
			operand, err := p.parseExpression(notPrecedence)
			if err != nil {
				return nil, err
			}
			return &UnaryExpr{Op: UnaryNot, Expr: operand}, nil
		}
	case lexer.LParen:
		inner, err := p.parseExpression(lowestPrecedence)
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.Kind != lexer.RParen {
			return nil, errInvalidExpression("expected ) to close grouped expression, found %s", closing)
		}
		return &GroupedExpr{Expr: inner}, nil
	case lexer.EOF:
		return nil, errInvalidExpression("unexpected end of input, expected an expression")
	}
	return nil, errInvalidExpression("unexpected token %s in expression", tok)
}
