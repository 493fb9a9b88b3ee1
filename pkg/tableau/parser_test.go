package tableau

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classicalTable(t *testing.T) *ConnectiveTable {
	t.Helper()
	logic, err := OpenLogic("classical")
	require.NoError(t, err)
	return logic.Connectives
}

func TestParsePrecedenceAndAssociativity(t *testing.T) {
	table := classicalTable(t)

	t.Run("and binds tighter than or", func(t *testing.T) {
		f, err := Parse("p & q | r", table)
		require.NoError(t, err)
		assert.Equal(t, "|", f.Symbol())
		assert.Equal(t, "&", f.Args()[0].Symbol())
	})

	t.Run("implies is right associative", func(t *testing.T) {
		f, err := Parse("p -> q -> r", table)
		require.NoError(t, err)
		require.Equal(t, "->", f.Symbol())
		assert.Equal(t, "p", f.Args()[0].Symbol())
		assert.Equal(t, "->", f.Args()[1].Symbol())
	})

	t.Run("and is left associative", func(t *testing.T) {
		f, err := Parse("p & q & r", table)
		require.NoError(t, err)
		require.Equal(t, "&", f.Symbol())
		assert.Equal(t, "&", f.Args()[0].Symbol())
		assert.Equal(t, "r", f.Args()[1].Symbol())
	})

	t.Run("negation binds tighter than and", func(t *testing.T) {
		f, err := Parse("~p & q", table)
		require.NoError(t, err)
		require.Equal(t, "&", f.Symbol())
		assert.Equal(t, "~", f.Args()[0].Symbol())
	})

	t.Run("parentheses override precedence", func(t *testing.T) {
		f, err := Parse("~(p & q)", table)
		require.NoError(t, err)
		require.Equal(t, "~", f.Symbol())
		assert.Equal(t, "&", f.Args()[0].Symbol())
	})
}

func TestParseErrors(t *testing.T) {
	table := classicalTable(t)

	cases := []struct {
		name string
		src  string
		kind string
	}{
		{"empty input", "", "EmptyInput"},
		{"unterminated paren", "(p & q", "UnterminatedParen"},
		{"trailing input", "p q", "TrailingInput"},
		{"unknown symbol", "p % q", "UnknownSymbol"},
		{"dangling infix", "p &", "UnexpectedToken"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.src, table)
			require.Error(t, err)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tc.kind, pe.Kind)
		})
	}
}

func TestParseRoundTripsThroughPrint(t *testing.T) {
	table := classicalTable(t)
	srcs := []string{"p", "~p", "p & q", "p | q & r", "(p | q) & r", "p -> q -> r"}
	for _, src := range srcs {
		f, err := Parse(src, table)
		require.NoError(t, err)
		reparsed, err := Parse(f.PrintWithTable(table), table)
		require.NoError(t, err)
		assert.True(t, f.Equal(reparsed), "round trip of %q", src)
	}
}
