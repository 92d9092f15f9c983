package investmate

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
)

// PortfolioService manages the assets of a logged-in user.
type PortfolioService struct {
	owner     User
	ledger    *Ledger
	rate      decimal.Decimal
	currency  string
	reportDir string
}

// NewPortfolioService opens the ledger of owner as configured in cfg.
func NewPortfolioService(cfg Config, owner User) *PortfolioService {
	return &PortfolioService{
		owner:     owner,
		ledger:    OpenLedger(cfg, owner.Email),
		rate:      cfg.ZakatRate,
		currency:  cfg.Currency,
		reportDir: cfg.ReportDir,
	}
}

// Owner returns the logged-in user.
func (p *PortfolioService) Owner() User { return p.owner }

// Ledger returns the ledger of the owner.
func (p *PortfolioService) Ledger() *Ledger { return p.ledger }

// Currency returns the currency of asset values.
func (p *PortfolioService) Currency() string { return p.currency }

// Add appends a to the ledger. A blank asset is rejected with ErrInvalidInput.
func (p *PortfolioService) Add(a Asset) error {
	if a.IsBlank() {
		return fmt.Errorf("%w: asset has no data", ErrInvalidInput)
	}
	if err := p.ledger.Append(a); err != nil {
		return fmt.Errorf("cannot add asset %q: %w", a.ID, err)
	}
	return nil
}

// Edit replaces name, value and type of the asset id.
func (p *PortfolioService) Edit(id, name, value, typ string) error {
	if err := p.ledger.Edit(id, name, value, typ); err != nil {
		return fmt.Errorf("cannot edit asset %q: %w", id, err)
	}
	return nil
}

// Remove deletes every asset with id and returns how many were removed.
func (p *PortfolioService) Remove(id string) (int, error) {
	n, err := p.ledger.Remove(id)
	if err != nil {
		return 0, fmt.Errorf("cannot remove asset %q: %w", id, err)
	}
	return n, nil
}

// Assets returns the assets of the owner in insertion order.
func (p *PortfolioService) Assets() ([]Asset, error) {
	return p.ledger.Assets()
}

// Zakat estimates the zakat due on the current assets.
// Each asset skipped because its value is not a number is logged.
func (p *PortfolioService) Zakat() (ZakatEstimate, error) {
	assets, err := p.Assets()
	if err != nil {
		return ZakatEstimate{}, err
	}
	return p.estimate(assets), nil
}

func (p *PortfolioService) estimate(assets []Asset) ZakatEstimate {
	est := EstimateZakat(assets, p.rate)
	for _, a := range est.Skipped {
		log.Printf("skipping asset %q (%s): value %q is not a number", a.ID, a.Name, a.Value)
	}
	return est
}
