package parser

// Statement represents a parsed SQL statement.
type Statement interface {
	stmt()
}

// SelectStmt models SELECT column, ... FROM table with optional WHERE
// and ORDER BY clauses. Selection and OrderBy are nil unless their
// introducing keyword was consumed.
type SelectStmt struct {
	Columns   []string
	Table     string
	Selection Expression
	OrderBy   []string
}

func (*SelectStmt) stmt() {}

// CreateTableStmt represents a CREATE TABLE statement.
type CreateTableStmt struct {
	Name    string
	Columns []ColumnDef
}

func (*CreateTableStmt) stmt() {}

// InsertStmt represents INSERT INTO. Values holds literal or bare
// identifier expressions only; arbitrary expressions are not part of
// the VALUES grammar.
type InsertStmt struct {
	Table   string
	Columns []string
	Values  []Expression
}

func (*InsertStmt) stmt() {}

// DataType identifies allowed column types.
type DataType int

const (
	DataTypeInt DataType = iota
	DataTypeVarchar
	DataTypeBoolean
)

func (d DataType) String() string {
	switch d {
	case DataTypeInt:
		return "INT"
	case DataTypeVarchar:
		return "VARCHAR"
	case DataTypeBoolean:
		return "BOOLEAN"
	default:
		return "UNKNOWN"
	}
}

// ColumnDef models a column definition in CREATE TABLE. Length is
// only meaningful for VARCHAR columns.
type ColumnDef struct {
	Name   string
	Type   DataType
	Length int
}

// Expression represents a scalar expression node. Nodes own their
// children exclusively and are never mutated after construction.
type Expression interface {
	expr()
}

// ColumnRef references a column by name.
type ColumnRef struct {
	Name string
}

func (*ColumnRef) expr() {}

// NumberLit is an unsigned integer literal.
type NumberLit struct {
	Value uint64
}

func (*NumberLit) expr() {}

// StringLit is a quoted string literal.
type StringLit struct {
	Value string
}

func (*StringLit) expr() {}

// BoolLit is a TRUE or FALSE literal.
type BoolLit struct {
	Value bool
}

func (*BoolLit) expr() {}

// NullLit is the NULL literal.
type NullLit struct{}

func (*NullLit) expr() {}

// UnaryOp enumerates single-operand operators.
type UnaryOp string

const (
	UnaryNot    UnaryOp = "NOT"
	UnaryNegate UnaryOp = "-"
)

// UnaryExpr applies a unary operator to its operand.
type UnaryExpr struct {
	Op   UnaryOp
	Expr Expression
}

func (*UnaryExpr) expr() {}

// BinaryOp enumerates two-operand operators.
type BinaryOp string

const (
	BinaryEqual        BinaryOp = "="
	BinaryNotEqual     BinaryOp = "<>"
	BinaryLess         BinaryOp = "<"
	BinaryLessEqual    BinaryOp = "<="
	BinaryGreater      BinaryOp = ">"
	BinaryGreaterEqual BinaryOp = ">="
	BinaryAnd          BinaryOp = "AND"
	BinaryOr           BinaryOp = "OR"
	BinaryAdd          BinaryOp = "+"
	BinarySubtract     BinaryOp = "-"
	BinaryMultiply     BinaryOp = "*"
	BinaryDivide       BinaryOp = "/"
)

// BinaryExpr combines two expressions with a binary operator.
type BinaryExpr struct {
	Left  Expression
	Op    BinaryOp
	Right Expression
}

func (*BinaryExpr) expr() {}

// GroupedExpr preserves an explicit parenthesization. The grouping is
// semantically transparent but kept for fidelity of the tree.
type GroupedExpr struct {
	Expr Expression
}

func (*GroupedExpr) expr() {}
