package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/investmate"
	"github.com/shopspring/decimal"
)

var ann = investmate.NewInvestor("a@x.com", "pw", "Ann")

func TestComplianceText(t *testing.T) {
	testCases := []struct {
		name   string
		assets []investmate.Asset
		want   string
	}{
		{
			name: "assets",
			assets: []investmate.Asset{
				{ID: "1", Name: "Gold", Value: "1000", Type: "metal"},
				{ID: "2", Name: "Art", Value: "n/a", Type: "collectible"},
			},
			want: "Compliance Report for a@x.com\n" +
				"Gold: 1000 EGP\n" +
				"Art: n/a EGP\n" +
				"Total Zakat: 25.00 EGP\n",
		},
		{
			name: "empty",
			want: "Compliance Report for a@x.com\n" +
				"Total Zakat: 0.00 EGP\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := &investmate.ComplianceReport{
				Owner:    ann,
				Currency: "EGP",
				Assets:   tc.assets,
				Zakat:    investmate.EstimateZakat(tc.assets, investmate.DefaultZakatRate),
			}
			if got := ComplianceText(r); got != tc.want {
				t.Errorf("ComplianceText() =\n%q\nwant\n%q", got, tc.want)
			}
		})
	}
}

func TestFinancialText(t *testing.T) {
	r := &investmate.FinancialReport{
		Owner:   ann,
		Format:  "pdf",
		Columns: investmate.FinancialColumns,
		Lines:   []string{"1,Gold,1000,metal", `2,"Gold, bars",5,metal`},
	}
	want := "Financial Report for a@x.com\n" +
		"ID,Name,Value,Type\n" +
		"1,Gold,1000,metal\n" +
		"2,\"Gold, bars\",5,metal\n"
	if got := FinancialText(r); got != want {
		t.Errorf("FinancialText() =\n%q\nwant\n%q", got, want)
	}

	r.Lines = nil
	want = "Financial Report for a@x.com\nID,Name,Value,Type\n"
	if got := FinancialText(r); got != want {
		t.Errorf("FinancialText() without assets =\n%q\nwant\n%q", got, want)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	s := &investmate.Summary{
		Owner:    ann,
		Currency: "EGP",
		Assets: []investmate.AssetLine{
			{Asset: investmate.Asset{ID: "1", Name: "Gold", Value: "1000", Type: "metal"}, Amount: investmate.M(decimal.NewFromInt(1000), "EGP"), Numeric: true},
			{Asset: investmate.Asset{ID: "2", Name: "Art", Value: "n/a", Type: "collectible"}},
		},
		ByType:   []investmate.TypeTotal{{Type: "metal", Count: 1, Total: investmate.M(decimal.NewFromInt(1000), "EGP")}},
		Wealth:   investmate.M(decimal.NewFromInt(1000), "EGP"),
		Rate:     investmate.DefaultZakatRate,
		ZakatDue: investmate.M(decimal.NewFromInt(25), "EGP"),
		Counted:  1,
		Skipped:  []investmate.Asset{{ID: "2", Name: "Art", Value: "n/a", Type: "collectible"}},
	}

	got := SummaryMarkdown(s)
	for _, want := range []string{"# Portfolio of Ann", "## Assets", "Gold", "n/a", "## By Type", "metal", "## Zakat", "Wealth of 1 asset(s)", "Zakat due at 2.5%", "## Not Counted", "Art (2)"} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() does not contain %q:\n%s", want, got)
		}
	}

	html, err := SummaryHTML(s)
	if err != nil {
		t.Fatalf("SummaryHTML() failed: %v", err)
	}
	for _, want := range []string{"<h1>Portfolio of Ann</h1>", "<table>", "<td>Gold</td>"} {
		if !strings.Contains(html, want) {
			t.Errorf("SummaryHTML() does not contain %q:\n%s", want, html)
		}
	}
}

func TestSummaryMarkdown_NoZakatDue(t *testing.T) {
	s := &investmate.Summary{
		Owner:    ann,
		Currency: "EGP",
		Assets: []investmate.AssetLine{
			{Asset: investmate.Asset{ID: "1", Name: "Cash", Value: "0", Type: "cash"}, Amount: investmate.M(decimal.Zero, "EGP"), Numeric: true},
		},
		Wealth:   investmate.M(decimal.Zero, "EGP"),
		Rate:     investmate.DefaultZakatRate,
		ZakatDue: investmate.M(decimal.Zero, "EGP"),
		Counted:  1,
	}
	got := SummaryMarkdown(s)
	if !strings.Contains(got, "No zakat due at 2.5%.") || strings.Contains(got, "Zakat due at") {
		t.Errorf("SummaryMarkdown() with nothing due:\n%s", got)
	}
}

func TestSummaryMarkdown_Empty(t *testing.T) {
	s := &investmate.Summary{Owner: investmate.NewInvestor("b@x.com", "pw", "")}
	got := SummaryMarkdown(s)
	if !strings.Contains(got, "# Portfolio of b@x.com") || !strings.Contains(got, "No assets yet.") {
		t.Errorf("SummaryMarkdown() of an empty portfolio:\n%s", got)
	}
}
