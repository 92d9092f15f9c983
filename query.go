package investmate

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// queryAsset is the JSON form of an asset, with its amount when the value is
// a number.
type queryAsset struct {
	Asset
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

type queryDocument struct {
	Owner    User         `json:"owner"`
	Currency string       `json:"currency"`
	Assets   []queryAsset `json:"assets"`
	Zakat    struct {
		Rate    decimal.Decimal `json:"rate"`
		Wealth  decimal.Decimal `json:"wealth"`
		Total   decimal.Decimal `json:"total"`
		Skipped []string        `json:"skipped"`
	} `json:"zakat"`
}

// Document returns the portfolio as generic JSON values:
//
//	{
//	  "owner": {"email": ..., "fullName": ..., "role": ...},
//	  "currency": "EGP",
//	  "assets": [{"id": ..., "name": ..., "value": ..., "type": ..., "amount": 1000}],
//	  "zakat": {"rate": 0.025, "wealth": 1000, "total": 25, "skipped": ["id", ...]}
//	}
//
// "amount" is only set for assets whose value is a number.
func (p *PortfolioService) Document() (any, error) {
	assets, err := p.Assets()
	if err != nil {
		return nil, err
	}
	est := p.estimate(assets)

	doc := queryDocument{Owner: p.owner, Currency: p.currency, Assets: make([]queryAsset, 0, len(assets))}
	for _, a := range assets {
		qa := queryAsset{Asset: a}
		if v, err := a.Amount(); err == nil {
			qa.Amount = &v
		}
		doc.Assets = append(doc.Assets, qa)
	}
	doc.Zakat.Rate, doc.Zakat.Wealth, doc.Zakat.Total = est.Rate, est.Wealth, est.Total
	doc.Zakat.Skipped = make([]string, 0, len(est.Skipped))
	for _, a := range est.Skipped {
		doc.Zakat.Skipped = append(doc.Zakat.Skipped, a.ID)
	}

	// jsonpath works on generic values, round trip through JSON to get them.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("cannot encode portfolio: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("cannot decode portfolio: %w", err)
	}
	return v, nil
}

// QueryPortfolio evaluates a JSONPath expression, e.g.
// `$.assets[?(@.amount > 500)].name`, over a document returned by Document.
func QueryPortfolio(doc any, expr string) (any, error) {
	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: query %q: %w", ErrInvalidInput, expr, err)
	}
	return v, nil
}
