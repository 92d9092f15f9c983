package investmate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueryPortfolio(t *testing.T) {
	cfg := testConfig(t)
	p := NewPortfolioService(cfg, NewInvestor("a@x.com", "secret", "Ann"))
	for _, a := range []Asset{
		{ID: "1", Name: "Gold", Value: "1000", Type: "metal"},
		{ID: "2", Name: "Cash", Value: "300", Type: "cash"},
		{ID: "3", Name: "Art", Value: "unknown", Type: "collectible"},
	} {
		require.NoError(t, p.Add(a))
	}
	doc, err := p.Document()
	require.NoError(t, err)

	testCases := []struct {
		expr string
		want any
	}{
		{expr: "$.owner.email", want: "a@x.com"},
		{expr: "$.currency", want: "EGP"},
		{expr: "$.zakat.total", want: 32.5},
		{expr: "$.zakat.skipped[0]", want: "3"},
		{expr: "$.assets[1].name", want: "Cash"},
		{expr: "$.assets[0].amount", want: 1000.0},
		{expr: `$.assets[?(@.type == "metal")].name`, want: []any{"Gold"}},
	}
	for _, tc := range testCases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := QueryPortfolio(doc, tc.expr)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	t.Run("password is never exposed", func(t *testing.T) {
		_, err := QueryPortfolio(doc, "$.owner.password")
		require.Error(t, err)
	})

	t.Run("invalid expression", func(t *testing.T) {
		_, err := QueryPortfolio(doc, "$.assets[?(")
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
