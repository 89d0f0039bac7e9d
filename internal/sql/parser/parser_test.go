package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/basalt-sql/internal/sql/lexer"
	"github.com/example/basalt-sql/internal/sql/parser"
)

func parse(t *testing.T, input string) parser.Statement {
	t.Helper()
	stmt, err := parser.Parse(lexer.Tokenize(input))
	require.NoError(t, err)
	return stmt
}

func parseErr(t *testing.T, input string) *parser.ParseError {
	t.Helper()
	_, err := parser.Parse(lexer.Tokenize(input))
	require.Error(t, err)
	var parseError *parser.ParseError
	require.ErrorAs(t, err, &parseError)
	return parseError
}

func TestParseSelect(t *testing.T) {
	testCases := []struct {
		desc     string
		input    string
		expected *parser.SelectStmt
	}{
		{
			desc:  "two columns",
			input: "SELECT c1, c2 FROM t",
			expected: &parser.SelectStmt{
				Columns: []string{"c1", "c2"},
				Table:   "t",
			},
		},
		{
			desc:  "lowercase keywords",
			input: "select c1 from t",
			expected: &parser.SelectStmt{
				Columns: []string{"c1"},
				Table:   "t",
			},
		},
		{
			desc:  "empty column list is structurally legal",
			input: "SELECT FROM t",
			expected: &parser.SelectStmt{
				Columns: []string{},
				Table:   "t",
			},
		},
		{
			desc:  "order by",
			input: "SELECT a FROM t ORDER BY a, b",
			expected: &parser.SelectStmt{
				Columns: []string{"a"},
				Table:   "t",
				OrderBy: []string{"a", "b"},
			},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert.Equal(t, tC.expected, parse(t, tC.input))
		})
	}
}

func TestParseSelectWithSelection(t *testing.T) {
	stmt := parse(t, "SELECT a FROM t WHERE a = 1")
	selectStmt, ok := stmt.(*parser.SelectStmt)
	require.True(t, ok)
	assert.Equal(t, &parser.BinaryExpr{
		Left:  &parser.ColumnRef{Name: "a"},
		Op:    parser.BinaryEqual,
		Right: &parser.NumberLit{Value: 1},
	}, selectStmt.Selection)
	assert.Nil(t, selectStmt.OrderBy)
}

func TestParseSelectWhereThenOrderBy(t *testing.T) {
	stmt := parse(t, "SELECT a FROM t WHERE a = 1 ORDER BY b")
	selectStmt := stmt.(*parser.SelectStmt)
	require.NotNil(t, selectStmt.Selection)
	assert.Equal(t, []string{"b"}, selectStmt.OrderBy)
}

func TestParseSelectTrailingSemicolon(t *testing.T) {
	bare := parse(t, "SELECT a FROM t ORDER BY a")
	terminated := parse(t, "SELECT a FROM t ORDER BY a;")
	assert.Equal(t, bare, terminated)
}

func TestParseCreateTable(t *testing.T) {
	stmt := parse(t, "CREATE TABLE t (a INT, b VARCHAR(10), c BOOLEAN)")
	assert.Equal(t, &parser.CreateTableStmt{
		Name: "t",
		Columns: []parser.ColumnDef{
			{Name: "a", Type: parser.DataTypeInt},
			{Name: "b", Type: parser.DataTypeVarchar, Length: 10},
			{Name: "c", Type: parser.DataTypeBoolean},
		},
	}, stmt)
}

func TestParseCreateTableVarcharZeroSize(t *testing.T) {
	// Zero is structurally permitted; semantic validity is not this
	// layer's concern.
	stmt := parse(t, "CREATE TABLE t (a VARCHAR(0))")
	create := stmt.(*parser.CreateTableStmt)
	require.Len(t, create.Columns, 1)
	assert.Equal(t, 0, create.Columns[0].Length)
}

func TestParseCreateTableVarcharErrors(t *testing.T) {
	for _, input := range []string{
		"CREATE TABLE t (a VARCHAR)",
		"CREATE TABLE t (a VARCHAR())",
		"CREATE TABLE t (a VARCHAR(x))",
		"CREATE TABLE t (a VARCHAR(10)",
	} {
		parseError := parseErr(t, input)
		assert.Equal(t, parser.ErrGeneral, parseError.Kind, "input %q", input)
	}
}

func TestParseCreateTableUnknownType(t *testing.T) {
	parseError := parseErr(t, "CREATE TABLE t (a FLOAT)")
	assert.Equal(t, parser.ErrGeneral, parseError.Kind)
	assert.Contains(t, parseError.Error(), "column type")
}

func TestParseInsert(t *testing.T) {
	stmt := parse(t, "INSERT INTO t (a, b) VALUES (5, true)")
	assert.Equal(t, &parser.InsertStmt{
		Table:   "t",
		Columns: []string{"a", "b"},
		Values: []parser.Expression{
			&parser.NumberLit{Value: 5},
			&parser.BoolLit{Value: true},
		},
	}, stmt)
}

func TestParseInsertAllValueForms(t *testing.T) {
	stmt := parse(t, "INSERT INTO t (a, b, c, d, e) VALUES (5, 'x', false, NULL, other)")
	insert := stmt.(*parser.InsertStmt)
	assert.Equal(t, []parser.Expression{
		&parser.NumberLit{Value: 5},
		&parser.StringLit{Value: "x"},
		&parser.BoolLit{Value: false},
		&parser.NullLit{},
		&parser.ColumnRef{Name: "other"},
	}, insert.Values)
}

func TestParseInsertRejectsExpressionsInValues(t *testing.T) {
	parseError := parseErr(t, "INSERT INTO t (a) VALUES (1 + 2)")
	assert.Equal(t, parser.ErrGeneral, parseError.Kind)
	assert.Contains(t, parseError.Error(), "VALUES")
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   "} {
		parseError := parseErr(t, input)
		assert.Equal(t, parser.ErrGeneral, parseError.Kind, "input %q", input)
		assert.Contains(t, parseError.Error(), "empty input")
	}
}

func TestParseUnknownStartOfStatement(t *testing.T) {
	parseError := parseErr(t, "DROP TABLE t")
	assert.Equal(t, parser.ErrUnknownStatement, parseError.Kind)
}

func TestParseDanglingOperatorInSelection(t *testing.T) {
	parseError := parseErr(t, "SELECT a FROM t WHERE a =")
	assert.Equal(t, parser.ErrInvalidExpression, parseError.Kind)
}

func TestParseTrailingTokensRejected(t *testing.T) {
	parseError := parseErr(t, "SELECT a FROM t WHERE a = 1 extra")
	assert.Equal(t, parser.ErrUnexpectedToken, parseError.Kind)
}

func TestParseKeywordNotAllowedAsIdentifier(t *testing.T) {
	// Reserved words commit to keyword tokens in the lexer, so they
	// cannot appear where an identifier is required.
	parseError := parseErr(t, "SELECT a FROM select")
	assert.Equal(t, parser.ErrExpectedIdentifier, parseError.Kind)
}

func TestParseMissingTable(t *testing.T) {
	parseError := parseErr(t, "SELECT a FROM")
	assert.Equal(t, parser.ErrUnexpectedEnd, parseError.Kind)
}

func TestParseInsertMissingValuesKeyword(t *testing.T) {
	parseError := parseErr(t, "INSERT INTO t (a) (5)")
	assert.Equal(t, parser.ErrExpectedKeyword, parseError.Kind)
	assert.Contains(t, parseError.Error(), "VALUES")
}

func TestParseCreateTableMissingParen(t *testing.T) {
	parseError := parseErr(t, "CREATE TABLE t a INT")
	assert.Equal(t, parser.ErrExpectedToken, parseError.Kind)
}

func TestParseTruncatedStatements(t *testing.T) {
	for _, input := range []string{
		"INSERT INTO t (a",
		"INSERT INTO t (a) VALUES (1",
		"CREATE TABLE t (a INT",
	} {
		parseError := parseErr(t, input)
		assert.Equal(t, parser.ErrUnexpectedEnd, parseError.Kind, "input %q", input)
	}
}

func TestParseStringKeepsCursorMonotone(t *testing.T) {
	// A complete parse of a statement with every clause present must
	// consume the stream exactly once, with no rewinding; trailing
	// EOF-only input after the terminator succeeds.
	stmt := parse(t, "SELECT a, b FROM t WHERE a < 10 AND b <> 'x' ORDER BY a;")
	selectStmt := stmt.(*parser.SelectStmt)
	assert.Equal(t, []string{"a", "b"}, selectStmt.Columns)
	require.NotNil(t, selectStmt.Selection)
	assert.Equal(t, []string{"a"}, selectStmt.OrderBy)
}

func TestParseString(t *testing.T) {
	stmt, err := parser.ParseString("SELECT a FROM t")
	require.NoError(t, err)
	assert.IsType(t, &parser.SelectStmt{}, stmt)
}
