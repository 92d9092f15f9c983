package investmate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// Config locates the flat files and holds the constants of the application.
type Config struct {
	UsersFile     string          `validate:"required"`
	LedgerPattern string          `validate:"required,contains={owner}"`
	ReportDir     string          `validate:"required"`
	Currency      string          `validate:"required,len=3,uppercase"`
	ZakatRate     decimal.Decimal `validate:"-"`
	Match         MatchMode       `validate:"gte=0,lte=1"`
}

// DefaultConfig returns the historical file layout:
// users.txt and one investments_<owner>.txt per user in the working directory.
func DefaultConfig() Config {
	return Config{
		UsersFile:     "users.txt",
		LedgerPattern: "investments_" + OwnerPlaceholder + ".txt",
		ReportDir:     ".",
		Currency:      DefaultCurrency,
		ZakatRate:     DefaultZakatRate,
		Match:         MatchExact,
	}
}

// Validate checks every field and returns all failures at once.
func (c Config) Validate() error {
	var msgs []string
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s fails %q", fe.Field(), fieldRule(fe)))
		}
	}
	if !c.ZakatRate.IsPositive() || c.ZakatRate.GreaterThan(decimal.NewFromInt(1)) {
		msgs = append(msgs, fmt.Sprintf("ZakatRate %s is not in (0, 1]", c.ZakatRate))
	}
	if len(msgs) > 0 {
		return fmt.Errorf("%w: invalid configuration: %s", ErrInvalidInput, strings.Join(msgs, "; "))
	}
	return nil
}

func fieldRule(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
