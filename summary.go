package investmate

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// Summary is an overview of a portfolio: its assets, the wealth per type and
// the zakat due.
type Summary struct {
	Owner    User
	Currency string
	Assets   []AssetLine
	ByType   []TypeTotal
	Wealth   Money
	Rate     decimal.Decimal
	ZakatDue Money
	Counted  int // assets summed into Wealth
	Skipped  []Asset
}

// AssetLine is an asset with its value as money when it is a number.
type AssetLine struct {
	Asset
	Amount  Money
	Numeric bool
}

// TypeTotal aggregates the numeric assets of one type.
type TypeTotal struct {
	Type  string
	Count int
	Total Money
}

// RatePercent returns the zakat rate as a percentage, e.g. "2.5%".
func (s *Summary) RatePercent() string {
	return s.Rate.Shift(2).String() + "%"
}

// Summary builds the overview of the current assets.
func (p *PortfolioService) Summary() (*Summary, error) {
	assets, err := p.Assets()
	if err != nil {
		return nil, err
	}
	return newSummary(p.owner, p.currency, assets, p.estimate(assets)), nil
}

func newSummary(owner User, currency string, assets []Asset, est ZakatEstimate) *Summary {
	s := &Summary{
		Owner:    owner,
		Currency: currency,
		Wealth:   M(est.Wealth, currency),
		Rate:     est.Rate,
		ZakatDue: M(est.Total, currency),
		Counted:  len(est.Counted),
		Skipped:  est.Skipped,
	}
	totals := make(map[string]*TypeTotal)
	for _, a := range assets {
		line := AssetLine{Asset: a}
		if v, err := a.Amount(); err == nil {
			line.Amount, line.Numeric = M(v, currency), true
			t, ok := totals[a.Type]
			if !ok {
				t = &TypeTotal{Type: a.Type, Total: M(decimal.Zero, currency)}
				totals[a.Type] = t
			}
			t.Count++
			t.Total = t.Total.Add(line.Amount)
		}
		s.Assets = append(s.Assets, line)
	}
	for _, t := range totals {
		s.ByType = append(s.ByType, *t)
	}
	slices.SortFunc(s.ByType, func(a, b TypeTotal) int { return cmp.Compare(a.Type, b.Type) })
	return s
}
