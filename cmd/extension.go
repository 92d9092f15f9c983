package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

// Environment variables giving defaults to the global flags, and passed to
// extensions.
const (
	EnvUsersFile     = "INVESTMATE_USERS_FILE"
	EnvLedgerPattern = "INVESTMATE_LEDGER_PATTERN"
	EnvReportDir     = "INVESTMATE_REPORT_DIR"
	EnvCurrency      = "INVESTMATE_CURRENCY"
	EnvZakatRate     = "INVESTMATE_ZAKAT_RATE"
	EnvMatch         = "INVESTMATE_MATCH"
	EnvEmail         = "INVESTMATE_EMAIL"
	EnvVerbose       = "INVESTMATE_VERBOSE"

	// EnvPassword is only read, it is never passed to extensions.
	EnvPassword = "INVESTMATE_PASSWORD"
)

// extensionEnv returns the global configuration as environment variables.
func extensionEnv() []string {
	return []string{
		EnvUsersFile + "=" + *usersFile,
		EnvLedgerPattern + "=" + *ledgerPattern,
		EnvReportDir + "=" + *reportDir,
		EnvCurrency + "=" + *currency,
		EnvZakatRate + "=" + *zakatRate,
		EnvMatch + "=" + *matchMode,
		EnvEmail + "=" + *email,
		EnvVerbose + "=" + strconv.FormatBool(*Verbose),
	}
}

// RunExtension attempts to find and execute an external investmate-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "investmate-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		debugf("external command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	debugf("external command %q done", externalCmdName)
	return true, 0
}
