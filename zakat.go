package investmate

import "github.com/shopspring/decimal"

// DefaultZakatRate is the share of wealth due as zakat: 2.5%.
var DefaultZakatRate = decimal.RequireFromString("0.025")

// ZakatEstimate is the result of EstimateZakat.
type ZakatEstimate struct {
	Rate    decimal.Decimal
	Wealth  decimal.Decimal // sum of the counted values
	Total   decimal.Decimal // zakat due: Wealth * Rate
	Counted []Asset
	Skipped []Asset // assets whose value is not a number
}

// EstimateZakat sums the values of assets and applies rate.
//
// Values that do not parse as a number are skipped and reported in
// Skipped; they never abort the estimate. The result does not depend on the
// order of assets.
func EstimateZakat(assets []Asset, rate decimal.Decimal) ZakatEstimate {
	est := ZakatEstimate{Rate: rate, Wealth: decimal.Zero}
	for _, a := range assets {
		v, err := a.Amount()
		if err != nil {
			est.Skipped = append(est.Skipped, a)
			continue
		}
		est.Wealth = est.Wealth.Add(v)
		est.Counted = append(est.Counted, a)
	}
	est.Total = est.Wealth.Mul(rate)
	return est
}
