package investmate

import (
	"os"
	"path/filepath"
	"strings"
)

// FinancialColumns is the column header line of the financial report.
const FinancialColumns = "ID,Name,Value,Type"

// ComplianceReport lists every asset of a portfolio with the zakat due.
type ComplianceReport struct {
	Owner    User
	Currency string
	Assets   []Asset
	Zakat    ZakatEstimate
	Path     string // file the report is exported to
}

// Total returns the zakat due with two decimals and the currency code.
func (r *ComplianceReport) Total() string {
	return M(r.Zakat.Total, r.Currency).Plain()
}

// FinancialReport lists the ledger records of a portfolio.
type FinancialReport struct {
	Owner   User
	Format  string // format hint given by the caller
	Columns string
	Lines   []string // one encoded record per asset
	Path    string   // file the report is exported to
}

// FinancialExtension returns the file extension for a format hint:
// ".txt" for "pdf", ".csv" for anything else. The content does not change.
func FinancialExtension(format string) string {
	if strings.EqualFold(strings.TrimSpace(format), "pdf") {
		return ".txt"
	}
	return ".csv"
}

// ComplianceReport builds the compliance report of the current assets.
func (p *PortfolioService) ComplianceReport() (*ComplianceReport, error) {
	assets, err := p.Assets()
	if err != nil {
		return nil, err
	}
	return &ComplianceReport{
		Owner:    p.owner,
		Currency: p.currency,
		Assets:   assets,
		Zakat:    p.estimate(assets),
		Path:     filepath.Join(p.reportDir, "compliance_"+p.ledger.Owner()+".txt"),
	}, nil
}

// FinancialReport builds the financial report of the current assets.
func (p *PortfolioService) FinancialReport(format string) (*FinancialReport, error) {
	assets, err := p.Assets()
	if err != nil {
		return nil, err
	}
	r := &FinancialReport{
		Owner:   p.owner,
		Format:  format,
		Columns: FinancialColumns,
		Path:    filepath.Join(p.reportDir, "financial_"+p.ledger.Owner()+FinancialExtension(format)),
	}
	for _, a := range assets {
		line, err := EncodeAsset(a)
		if err != nil {
			return nil, err
		}
		r.Lines = append(r.Lines, line)
	}
	return r, nil
}

// WriteReport writes a rendered report to path, replacing any previous one.
func WriteReport(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return storageError("create directory for", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return storageError("write", path, err)
	}
	return nil
}
