package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/investmate"
	"golang.org/x/term"
)

// App is the interactive menu: a welcome menu to register or log in, then the
// portfolio menu of the logged-in user.
//
// Every error is reported as a message and the menu goes on. Only the exit
// choice or the end of input leaves it.
type App struct {
	cfg       investmate.Config
	accounts  *investmate.AccountService
	portfolio *investmate.PortfolioService // nil when logged out
	reader    *bufio.Reader
	out       io.Writer
	terminal  bool // read passwords without echo
}

// NewApp returns a menu reading from r and writing to w.
func NewApp(cfg investmate.Config, r io.Reader, w io.Writer) *App {
	return &App{
		cfg:      cfg,
		accounts: investmate.NewAccountService(cfg),
		reader:   bufio.NewReader(r),
		out:      w,
	}
}

// RunMenu runs the interactive menu on the standard streams.
func RunMenu(cfg investmate.Config) {
	a := NewApp(cfg, os.Stdin, os.Stdout)
	a.terminal = term.IsTerminal(int(os.Stdin.Fd()))
	a.Run()
}

// Run loops until the user exits or the input ends.
func (a *App) Run() {
	fmt.Fprintln(a.out, "Welcome to InvestMate")
	for {
		var quit bool
		if a.portfolio == nil {
			quit = a.welcome()
		} else {
			quit = a.portfolioMenu()
		}
		if quit {
			fmt.Fprintln(a.out, "Goodbye!")
			return
		}
	}
}

// ask prompts for one trimmed line. It returns false when the input ended.
func (a *App) ask(prompt string) (string, bool) {
	s, ok := a.askLine(prompt)
	return strings.TrimSpace(s), ok
}

func (a *App) askLine(prompt string) (string, bool) {
	s, err := GetLine(a.reader, prompt, a.out)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			fmt.Fprintf(a.out, "Cannot read input: %v\n", err)
		}
		return "", false
	}
	return s, true
}

// askPassword reads the password untrimmed: spaces are part of it.
func (a *App) askPassword() (string, bool) {
	if !a.terminal {
		return a.askLine("Password")
	}
	pw, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot read password: %v\n", err)
		return "", false
	}
	return string(pw), true
}

func (a *App) welcome() (quit bool) {
	fmt.Fprint(a.out, "\n1. Register\n2. Login\n0. Exit\n")
	choice, ok := a.ask("Choose an option")
	if !ok {
		return true
	}
	switch choice {
	case "1":
		return !a.register()
	case "2":
		return !a.login()
	case "0":
		return true
	default:
		fmt.Fprintf(a.out, "Unknown option %q.\n", choice)
	}
	return false
}

func (a *App) register() bool {
	name, ok := a.ask("Full name")
	if !ok {
		return false
	}
	mail, ok := a.ask("Email")
	if !ok {
		return false
	}
	pw, ok := a.askPassword()
	if !ok {
		return false
	}
	err := a.accounts.Register(investmate.NewInvestor(mail, pw, name))
	switch {
	case err == nil:
		fmt.Fprintln(a.out, "Registration successful, you can now log in.")
	case errors.Is(err, investmate.ErrDuplicateKey):
		fmt.Fprintln(a.out, "This email is already registered.")
	case errors.Is(err, investmate.ErrInvalidInput):
		fmt.Fprintf(a.out, "Invalid registration: %v\n", err)
	default:
		fmt.Fprintf(a.out, "Registration failed: %v\n", err)
	}
	return true
}

func (a *App) login() bool {
	mail, ok := a.ask("Email")
	if !ok {
		return false
	}
	pw, ok := a.askPassword()
	if !ok {
		return false
	}
	user, err := a.accounts.Login(mail, pw)
	switch {
	case err == nil:
		a.portfolio = investmate.NewPortfolioService(a.cfg, user)
		fmt.Fprintf(a.out, "Welcome back, %s!\n", displayName(user))
	case errors.Is(err, investmate.ErrNotFound):
		fmt.Fprintln(a.out, "No account is registered with this email.")
	case errors.Is(err, investmate.ErrWrongPassword):
		fmt.Fprintln(a.out, "Wrong password.")
	default:
		fmt.Fprintf(a.out, "Login failed: %v\n", err)
	}
	return true
}

func (a *App) portfolioMenu() (quit bool) {
	fmt.Fprint(a.out, "\n1. Add investment\n2. Edit investment\n3. Remove investment\n4. List investments\n"+
		"5. Estimate zakat\n6. Export financial report\n7. Export compliance report\n0. Logout\n")
	choice, ok := a.ask("Choose an option")
	if !ok {
		return true
	}
	switch choice {
	case "1":
		ok = a.add()
	case "2":
		ok = a.edit()
	case "3":
		ok = a.remove()
	case "4":
		a.list()
	case "5":
		a.zakat()
	case "6":
		ok = a.financialReport()
	case "7":
		a.complianceReport()
	case "0":
		fmt.Fprintf(a.out, "Goodbye, %s.\n", displayName(a.portfolio.Owner()))
		a.portfolio = nil
	default:
		fmt.Fprintf(a.out, "Unknown option %q.\n", choice)
	}
	return !ok
}

// askAll prompts for each field in turn.
func (a *App) askAll(prompts ...string) ([]string, bool) {
	answers := make([]string, 0, len(prompts))
	for _, p := range prompts {
		s, ok := a.ask(p)
		if !ok {
			return nil, false
		}
		answers = append(answers, s)
	}
	return answers, true
}

func (a *App) add() bool {
	f, ok := a.askAll("Investment id", "Name", "Value", "Type")
	if !ok {
		return false
	}
	if err := a.portfolio.Add(investmate.Asset{ID: f[0], Name: f[1], Value: f[2], Type: f[3]}); err != nil {
		fmt.Fprintf(a.out, "Cannot add investment: %v\n", err)
		return true
	}
	fmt.Fprintln(a.out, "Investment added.")
	return true
}

func (a *App) edit() bool {
	f, ok := a.askAll("Id of the investment to edit", "New name", "New value", "New type")
	if !ok {
		return false
	}
	err := a.portfolio.Edit(f[0], f[1], f[2], f[3])
	switch {
	case err == nil:
		fmt.Fprintln(a.out, "Investment updated.")
	case errors.Is(err, investmate.ErrNotFound):
		fmt.Fprintf(a.out, "No investment with id %q.\n", f[0])
	default:
		fmt.Fprintf(a.out, "Cannot edit investment: %v\n", err)
	}
	return true
}

func (a *App) remove() bool {
	id, ok := a.ask("Id of the investment to remove")
	if !ok {
		return false
	}
	n, err := a.portfolio.Remove(id)
	switch {
	case err == nil:
		fmt.Fprintf(a.out, "%d investment(s) removed.\n", n)
	case errors.Is(err, investmate.ErrNotFound):
		fmt.Fprintf(a.out, "No investment with id %q.\n", id)
	default:
		fmt.Fprintf(a.out, "Cannot remove investment: %v\n", err)
	}
	return true
}

func (a *App) list() {
	assets, err := a.portfolio.Assets()
	if err != nil {
		fmt.Fprintf(a.out, "Cannot load investments: %v\n", err)
		return
	}
	if len(assets) == 0 {
		fmt.Fprintln(a.out, "No investments yet.")
		return
	}
	for _, as := range assets {
		fmt.Fprintf(a.out, "ID: %s | Name: %s | Value: %s | Type: %s\n", as.ID, as.Name, as.Value, as.Type)
	}
}

func (a *App) zakat() {
	est, err := a.portfolio.Zakat()
	if err != nil {
		fmt.Fprintf(a.out, "Cannot estimate zakat: %v\n", err)
		return
	}
	for _, s := range est.Skipped {
		fmt.Fprintf(a.out, "Skipped %s (%s): %q is not a number.\n", s.Name, s.ID, s.Value)
	}
	fmt.Fprintf(a.out, "Estimated zakat: %s\n", investmate.M(est.Total, a.portfolio.Currency()).Plain())
}

func (a *App) financialReport() bool {
	format, ok := a.ask("Format (pdf or csv)")
	if !ok {
		return false
	}
	path, err := ExportFinancialReport(a.portfolio, format)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot export financial report: %v\n", err)
		return true
	}
	fmt.Fprintf(a.out, "Financial report exported to %s\n", path)
	return true
}

func (a *App) complianceReport() {
	path, err := ExportComplianceReport(a.portfolio)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot export compliance report: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Compliance report exported to %s\n", path)
}

func displayName(u investmate.User) string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}
