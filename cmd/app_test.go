package cmd

import (
	"flag"
	"fmt"
	"testing"

	"github.com/etnz/investmate"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// setFlag sets a global flag for the duration of the test.
func setFlag(t *testing.T, name, value string) {
	t.Helper()
	old := flag.Lookup(name).Value.String()
	require.NoError(t, flag.Set(name, value))
	t.Cleanup(func() { flag.Set(name, old) })
}

func TestLoadConfig(t *testing.T) {
	setFlag(t, "users-file", "people.txt")
	setFlag(t, "zakat-rate", "0.03")
	setFlag(t, "match", "prefix")

	cfg, err := loadConfig()
	require.NoError(t, err)
	require.Equal(t, "people.txt", cfg.UsersFile)
	require.True(t, cfg.ZakatRate.Equal(decimal.RequireFromString("0.03")))
	require.Equal(t, investmate.MatchPrefix, cfg.Match)
}

func TestLoadConfig_Invalid(t *testing.T) {
	testCases := []struct {
		flag, value string
	}{
		{"zakat-rate", "lots"},
		{"zakat-rate", "2"},
		{"match", "fuzzy"},
		{"currency", "euro"},
		{"ledger-pattern", "investments.txt"},
	}
	for _, tc := range testCases {
		t.Run(tc.flag+"="+tc.value, func(t *testing.T) {
			setFlag(t, tc.flag, tc.value)
			_, err := loadConfig()
			require.ErrorIs(t, err, investmate.ErrInvalidInput)
		})
	}
}

func TestExitStatus(t *testing.T) {
	require.Equal(t, subcommands.ExitSuccess, exitStatus(nil))
	require.Equal(t, subcommands.ExitUsageError, exitStatus(fmt.Errorf("bad: %w", investmate.ErrInvalidInput)))
	require.Equal(t, subcommands.ExitFailure, exitStatus(fmt.Errorf("login: %w", investmate.ErrWrongPassword)))
}

func TestExportReports(t *testing.T) {
	cfg := testConfig(t)
	p := investmate.NewPortfolioService(cfg, investmate.NewInvestor("a@x.com", "pw", "Ann"))
	require.NoError(t, p.Add(investmate.Asset{ID: "1", Name: "Gold", Value: "1000", Type: "metal"}))

	path, err := ExportFinancialReport(p, "xlsx")
	require.NoError(t, err)
	require.FileExists(t, path)
	require.Equal(t, ".csv", path[len(path)-4:])

	path, err = ExportComplianceReport(p)
	require.NoError(t, err)
	require.FileExists(t, path)
}
