package cmd

import (
	"github.com/etnz/investmate"
	"github.com/etnz/investmate/renderer"
)

// ExportComplianceReport writes the compliance report of p and returns its path.
func ExportComplianceReport(p *investmate.PortfolioService) (string, error) {
	r, err := p.ComplianceReport()
	if err != nil {
		return "", err
	}
	if err := investmate.WriteReport(r.Path, renderer.ComplianceText(r)); err != nil {
		return "", err
	}
	debugf("compliance report of %s written to %s", r.Owner.Email, r.Path)
	return r.Path, nil
}

// ExportFinancialReport writes the financial report of p and returns its path.
// format only selects the file extension.
func ExportFinancialReport(p *investmate.PortfolioService, format string) (string, error) {
	r, err := p.FinancialReport(format)
	if err != nil {
		return "", err
	}
	if err := investmate.WriteReport(r.Path, renderer.FinancialText(r)); err != nil {
		return "", err
	}
	debugf("financial report of %s written to %s", r.Owner.Email, r.Path)
	return r.Path, nil
}
