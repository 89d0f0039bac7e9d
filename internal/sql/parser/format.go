package parser

import (
	"strconv"
	"strings"
)

// FormatStatement renders a parsed statement back into deterministic
// SQL text, used for shell echo and diagnostics.
func FormatStatement(stmt Statement) string {
	switch s := stmt.(type) {
	case *SelectStmt:
		var b strings.Builder
		b.WriteString("SELECT")
		if len(s.Columns) > 0 {
			b.WriteString(" ")
			b.WriteString(strings.Join(s.Columns, ", "))
		}
		b.WriteString(" FROM ")
		b.WriteString(s.Table)
		if s.Selection != nil {
			b.WriteString(" WHERE ")
			b.WriteString(FormatExpression(s.Selection))
		}
		if s.OrderBy != nil {
			b.WriteString(" ORDER BY ")
			b.WriteString(strings.Join(s.OrderBy, ", "))
		}
		return b.String()
	case *CreateTableStmt:
		parts := make([]string, len(s.Columns))
		for i, col := range s.Columns {
			parts[i] = col.Name + " " + formatDataType(col)
		}
		return "CREATE TABLE " + s.Name + " (" + strings.Join(parts, ", ") + ")"
	case *InsertStmt:
		parts := make([]string, len(s.Values))
		for i, value := range s.Values {
			parts[i] = FormatExpression(value)
		}
		return "INSERT INTO " + s.Table +
			" (" + strings.Join(s.Columns, ", ") + ")" +
			" VALUES (" + strings.Join(parts, ", ") + ")"
	default:
		return "<statement>"
	}
}

func formatDataType(col ColumnDef) string {
	if col.Type == DataTypeVarchar {
		return "VARCHAR(" + strconv.Itoa(col.Length) + ")"
	}
	return col.Type.String()
}

// FormatExpression renders the expression into a deterministic SQL
// string, adding parentheses only where precedence requires them.
// Explicit GroupedExpr nodes always render their parentheses.
func FormatExpression(expr Expression) string {
	return formatExpressionWithPrecedence(expr, lowestPrecedence)
}

func formatExpressionWithPrecedence(expr Expression, parent int) string {
	switch e := expr.(type) {
	case *ColumnRef:
		return e.Name
	case *NumberLit:
		return strconv.FormatUint(e.Value, 10)
	case *StringLit:
		return "'" + strings.ReplaceAll(e.Value, "'", "''") + "'"
	case *BoolLit:
		if e.Value {
			return "TRUE"
		}
		return "FALSE"
	case *NullLit:
		return "NULL"
	case *GroupedExpr:
		return "(" + FormatExpression(e.Expr) + ")"
	case *UnaryExpr:
		prec := precedenceForUnary(e.Op)
		inner := formatExpressionWithPrecedence(e.Expr, prec)
		text := string(e.Op) + inner
		if e.Op == UnaryNot {
			text = "NOT " + inner
		}
		if prec < parent {
			return "(" + text + ")"
		}
		return text
	case *BinaryExpr:
		prec := binaryPrecedence[e.Op]
		left := formatExpressionWithPrecedence(e.Left, prec)
		right := formatExpressionWithPrecedence(e.Right, prec+1)
		text := left + " " + string(e.Op) + " " + right
		if prec < parent {
			return "(" + text + ")"
		}
		return text
	default:
		return "<expr>"
	}
}

func precedenceForUnary(op UnaryOp) int {
	if op == UnaryNegate {
		return negatePrecedence
	}
	return notPrecedence
}

// Dump renders the statement as an indented tree, one node per line.
func Dump(stmt Statement) string {
	var b strings.Builder
	switch s := stmt.(type) {
	case *SelectStmt:
		b.WriteString("Select\n")
		b.WriteString("  columns: [" + strings.Join(s.Columns, ", ") + "]\n")
		b.WriteString("  table: " + s.Table + "\n")
		if s.Selection != nil {
			b.WriteString("  selection:\n")
			dumpExpression(&b, s.Selection, 2)
		}
		if s.OrderBy != nil {
			b.WriteString("  order by: [" + strings.Join(s.OrderBy, ", ") + "]\n")
		}
	case *CreateTableStmt:
		b.WriteString("CreateTable\n")
		b.WriteString("  table: " + s.Name + "\n")
		for _, col := range s.Columns {
			b.WriteString("  column: " + col.Name + " " + formatDataType(col) + "\n")
		}
	case *InsertStmt:
		b.WriteString("Insert\n")
		b.WriteString("  table: " + s.Table + "\n")
		b.WriteString("  columns: [" + strings.Join(s.Columns, ", ") + "]\n")
		b.WriteString("  values:\n")
		for _, value := range s.Values {
			dumpExpression(&b, value, 2)
		}
	default:
		b.WriteString("<statement>\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func dumpExpression(b *strings.Builder, expr Expression, depth int) {
	indent := strings.Repeat("  ", depth)
	switch e := expr.(type) {
	case *UnaryExpr:
		b.WriteString(indent + "UnaryOperation " + string(e.Op) + "\n")
		dumpExpression(b, e.Expr, depth+1)
	case *BinaryExpr:
		b.WriteString(indent + "BinaryOperation " + string(e.Op) + "\n")
		dumpExpression(b, e.Left, depth+1)
		dumpExpression(b, e.Right, depth+1)
	case *GroupedExpr:
		b.WriteString(indent + "Grouped\n")
		dumpExpression(b, e.Expr, depth+1)
	default:
		b.WriteString(indent + formatExpressionWithPrecedence(expr, lowestPrecedence) + "\n")
	}
}
