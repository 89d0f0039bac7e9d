package parser

import (
	"fmt"

	"github.com/example/basalt-sql/internal/sql/lexer"
)

// ErrorKind discriminates parse failures. The kind is part of the
// parser's contract; callers may dispatch on it rather than on the
// rendered message.
type ErrorKind int

const (
	// ErrUnexpectedEnd - a required token was needed but the sequence
	// was exhausted.
	ErrUnexpectedEnd ErrorKind = iota
	// ErrExpectedKeyword - a specific keyword was required and a
	// different token was found.
	ErrExpectedKeyword
	// ErrExpectedIdentifier - an identifier was required and a
	// different token was found.
	ErrExpectedIdentifier
	// ErrInvalidExpression - the expression parser failed.
	ErrInvalidExpression
	// ErrUnknownStatement - the leading token does not start any
	// supported statement grammar.
	ErrUnknownStatement
	// ErrExpectedToken - a specific non-keyword token was required.
	ErrExpectedToken
	// ErrUnexpectedToken - a token appeared where no grammar
	// alternative applies.
	ErrUnexpectedToken
	// ErrGeneral - a grammar-specific contextual failure.
	ErrGeneral
)

// ParseError is the single error type returned by this package. The
// first failure aborts the whole statement parse; errors are never
// aggregated or recovered from.
type ParseError struct {
	Kind     ErrorKind
	Expected string       // ErrExpectedKeyword, ErrExpectedToken
	Token    *lexer.Token // offending token, when there is one
	Message  string       // ErrInvalidExpression, ErrGeneral
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrUnexpectedEnd:
		return "parser: unexpected end of input"
	case ErrExpectedKeyword:
		return fmt.Sprintf("parser: expected keyword %s but found %s", e.Expected, e.Token)
	case ErrExpectedIdentifier:
		return fmt.Sprintf("parser: expected an identifier but found %s", e.Token)
	case ErrInvalidExpression:
		return "parser: invalid expression: " + e.Message
	case ErrUnknownStatement:
		return fmt.Sprintf("parser: unknown start of statement: %s", e.Token)
	case ErrExpectedToken:
		if e.Token == nil || e.Token.Kind == lexer.EOF {
			return fmt.Sprintf("parser: expected %s but found end of input", e.Expected)
		}
		return fmt.Sprintf("parser: expected %s but found %s", e.Expected, e.Token)
	case ErrUnexpectedToken:
		return fmt.Sprintf("parser: unexpected token %s", e.Token)
	default:
		return "parser: " + e.Message
	}
}

func errUnexpectedEnd() *ParseError {
	return &ParseError{Kind: ErrUnexpectedEnd}
}

func errExpectedKeyword(k lexer.Keyword, tok lexer.Token) *ParseError {
	return &ParseError{Kind: ErrExpectedKeyword, Expected: string(k), Token: &tok}
}

func errExpectedIdentifier(tok lexer.Token) *ParseError {
	return &ParseError{Kind: ErrExpectedIdentifier, Token: &tok}
}

func errInvalidExpression(format string, args ...any) *ParseError {
	return &ParseError{Kind: ErrInvalidExpression, Message: fmt.Sprintf(format, args...)}
}

func errUnknownStatement(tok lexer.Token) *ParseError {
	return &ParseError{Kind: ErrUnknownStatement, Token: &tok}
}

func errExpectedToken(expected string, tok lexer.Token) *ParseError {
	return &ParseError{Kind: ErrExpectedToken, Expected: expected, Token: &tok}
}

func errUnexpectedToken(tok lexer.Token) *ParseError {
	return &ParseError{Kind: ErrUnexpectedToken, Token: &tok}
}

func errGeneral(format string, args ...any) *ParseError {
	return &ParseError{Kind: ErrGeneral, Message: fmt.Sprintf(format, args...)}
}
