// Package cmd implements the investmate command-line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/investmate"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&menuCmd{}, "")

	c.Register(&registerCmd{}, "accounts")

	c.Register(&listCmd{}, "portfolio")
	c.Register(&addCmd{}, "portfolio")
	c.Register(&editCmd{}, "portfolio")
	c.Register(&removeCmd{}, "portfolio")

	c.Register(&zakatCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var defaults = investmate.DefaultConfig()

var usersFile = flag.String("users-file", envOr(EnvUsersFile, defaults.UsersFile), "Path to the user directory file")
var ledgerPattern = flag.String("ledger-pattern", envOr(EnvLedgerPattern, defaults.LedgerPattern), "Path pattern of the investment files, "+investmate.OwnerPlaceholder+" is replaced by the owner key")
var reportDir = flag.String("report-dir", envOr(EnvReportDir, defaults.ReportDir), "Directory where reports are exported")
var currency = flag.String("currency", envOr(EnvCurrency, defaults.Currency), "Currency of asset values")
var zakatRate = flag.String("zakat-rate", envOr(EnvZakatRate, defaults.ZakatRate.String()), "Share of wealth due as zakat")
var matchMode = flag.String("match", envOr(EnvMatch, defaults.Match.String()), "How asset ids select records on edit and remove (exact, prefix)")
var email = flag.String("email", os.Getenv(EnvEmail), "Email of the account for portfolio commands")

// Verbose enables diagnostic logs.
var Verbose = flag.Bool("v", envBool(EnvVerbose), "Enable verbose logs")

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}

// debugf logs only in verbose mode.
func debugf(format string, args ...any) {
	if *Verbose {
		log.Printf(format, args...)
	}
}

// loadConfig builds the configuration from the global flags.
func loadConfig() (investmate.Config, error) {
	rate, err := decimal.NewFromString(*zakatRate)
	if err != nil {
		return investmate.Config{}, fmt.Errorf("%w: invalid zakat rate %q: %w", investmate.ErrInvalidInput, *zakatRate, err)
	}
	match, err := investmate.ParseMatchMode(*matchMode)
	if err != nil {
		return investmate.Config{}, fmt.Errorf("%w: %w", investmate.ErrInvalidInput, err)
	}
	cfg := investmate.Config{
		UsersFile:     *usersFile,
		LedgerPattern: *ledgerPattern,
		ReportDir:     *reportDir,
		Currency:      *currency,
		ZakatRate:     rate,
		Match:         match,
	}
	if err := cfg.Validate(); err != nil {
		return investmate.Config{}, err
	}
	debugf("users file %s, ledger pattern %s, report dir %s, match %s", cfg.UsersFile, cfg.LedgerPattern, cfg.ReportDir, cfg.Match)
	return cfg, nil
}

// openPortfolio logs in the account given by -email and returns its portfolio.
// The password is read from INVESTMATE_PASSWORD, or from the terminal.
func openPortfolio() (*investmate.PortfolioService, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if *email == "" {
		return nil, fmt.Errorf("%w: -email or %s is required", investmate.ErrInvalidInput, EnvEmail)
	}
	password, ok := os.LookupEnv(EnvPassword)
	if !ok {
		pw, err := GetPassword(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("cannot read password: %w", err)
		}
		password = string(pw)
	}
	user, err := investmate.NewAccountService(cfg).Login(*email, password)
	if err != nil {
		return nil, err
	}
	p := investmate.NewPortfolioService(cfg, user)
	debugf("logged in as %s, ledger %s", user.Email, p.Ledger().Path())
	return p, nil
}

// exitStatus reports err on stderr and maps it to an exit status.
func exitStatus(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, investmate.ErrInvalidInput) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// printMarkdown renders md for the terminal, or prints it as is when it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		debugf("cannot create markdown renderer: %v", err)
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		debugf("cannot render markdown: %v", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
