package lexer

import (
	"fmt"
	"strconv"
)

// Kind identifies lexical tokens produced by the SQL lexer.
type Kind int

const (
	EOF Kind = iota
	Illegal
	KeywordTok
	Ident
	Number
	String
	Boolean
	Null
	Comma
	Semicolon
	LParen
	RParen
	Equal
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	Plus
	Minus
	Star
	Slash
)

func (k Kind) String() string {
	return [...]string{
		"EOF",
		"Illegal",
		"Keyword",
		"Ident",
		"Number",
		"String",
		"Boolean",
		"Null",
		"Comma",
		"Semicolon",
		"LParen",
		"RParen",
		"Equal",
		"NotEqual",
		"Less",
		"LessEqual",
		"Greater",
		"GreaterEqual",
		"Plus",
		"Minus",
		"Star",
		"Slash",
	}[int(k)]
}

// Keyword enumerates the reserved words of the dialect. TRUE, FALSE
// and NULL are not keywords; they lex directly to Boolean and Null
// tokens.
type Keyword string

const (
	KeywordSelect  Keyword = "SELECT"
	KeywordFrom    Keyword = "FROM"
	KeywordWhere   Keyword = "WHERE"
	KeywordOrder   Keyword = "ORDER"
	KeywordBy      Keyword = "BY"
	KeywordCreate  Keyword = "CREATE"
	KeywordTable   Keyword = "TABLE"
	KeywordInsert  Keyword = "INSERT"
	KeywordInto    Keyword = "INTO"
	KeywordValues  Keyword = "VALUES"
	KeywordInt     Keyword = "INT"
	KeywordVarchar Keyword = "VARCHAR"
	KeywordBoolean Keyword = "BOOLEAN"
	KeywordAnd     Keyword = "AND"
	KeywordOr      Keyword = "OR"
	KeywordNot     Keyword = "NOT"
)

var keywords = map[string]Keyword{
	"SELECT":  KeywordSelect,
	"FROM":    KeywordFrom,
	"WHERE":   KeywordWhere,
	"ORDER":   KeywordOrder,
	"BY":      KeywordBy,
	"CREATE":  KeywordCreate,
	"TABLE":   KeywordTable,
	"INSERT":  KeywordInsert,
	"INTO":    KeywordInto,
	"VALUES":  KeywordValues,
	"INT":     KeywordInt,
	"VARCHAR": KeywordVarchar,
	"BOOLEAN": KeywordBoolean,
	"AND":     KeywordAnd,
	"OR":      KeywordOr,
	"NOT":     KeywordNot,
}

// Token represents a lexical item. Exactly one payload field is
// meaningful, selected by Kind; tokens are never mutated once
// produced.
type Token struct {
	Kind    Kind
	Keyword Keyword // set when Kind == KeywordTok
	Text    string  // identifier text, string contents, or raw lexeme
	Number  uint64  // set when Kind == Number
	Bool    bool    // set when Kind == Boolean
	Offset  int     // rune offset of the lexeme start
}

// IsKeyword reports whether the token is the given keyword.
func (t Token) IsKeyword(k Keyword) bool {
	return t.Kind == KeywordTok && t.Keyword == k
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case KeywordTok:
		return string(t.Keyword)
	case Ident:
		return t.Text
	case Number:
		return strconv.FormatUint(t.Number, 10)
	case String:
		return "'" + t.Text + "'"
	case Boolean:
		if t.Bool {
			return "TRUE"
		}
		return "FALSE"
	case Null:
		return "NULL"
	case Illegal:
		return fmt.Sprintf("illegal input %q", t.Text)
	default:
		return t.Text
	}
}
