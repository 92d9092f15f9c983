package investmate

import (
	"fmt"
	"log"
	"strings"
)

// OwnerPlaceholder is replaced by the owner key in a ledger file pattern.
const OwnerPlaceholder = "{owner}"

var ownerKeyReplacer = strings.NewReplacer("@", "_at_", "/", "_", "\\", "_", ":", "_")

// OwnerKey derives a file name safe key from an email.
//
// The email is lower-cased so that every spelling of an account opens the
// same ledger.
func OwnerKey(email string) string {
	return ownerKeyReplacer.Replace(normalizeEmail(email))
}

// LedgerPath returns the ledger file of email for the given pattern.
func LedgerPath(pattern, email string) string {
	return strings.ReplaceAll(pattern, OwnerPlaceholder, OwnerKey(email))
}

// Ledger is the investment file of one owner.
//
// Edits and removals load the whole file, change it in memory and rewrite it.
// Lines that are not touched are written back exactly as they were read.
type Ledger struct {
	owner string
	store *Store
	match MatchMode
}

// OpenLedger returns the ledger of email as configured in cfg.
func OpenLedger(cfg Config, email string) *Ledger {
	return &Ledger{
		owner: OwnerKey(email),
		store: NewStore(LedgerPath(cfg.LedgerPattern, email)),
		match: cfg.Match,
	}
}

// Owner returns the owner key of the ledger.
func (l *Ledger) Owner() string { return l.owner }

// Path returns the ledger file.
func (l *Ledger) Path() string { return l.store.Path() }

// Append adds a at the end of the ledger.
func (l *Ledger) Append(a Asset) error {
	line, err := EncodeAsset(a)
	if err != nil {
		return err
	}
	return l.store.Append(line)
}

// Assets returns every asset in insertion order.
// Lines that cannot be decoded are skipped.
func (l *Ledger) Assets() ([]Asset, error) {
	lines, err := l.store.LoadAll()
	if err != nil {
		return nil, err
	}
	assets := make([]Asset, 0, len(lines))
	for i, line := range lines {
		a, err := DecodeAsset(line)
		if err != nil {
			log.Printf("warning, skipping line %d of %s: %v", i+1, l.store.Path(), err)
			continue
		}
		assets = append(assets, a)
	}
	return assets, nil
}

// Overwrite replaces the content of the ledger with assets.
func (l *Ledger) Overwrite(assets []Asset) error {
	lines := make([]string, 0, len(assets))
	for _, a := range assets {
		line, err := EncodeAsset(a)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}
	return l.store.OverwriteAll(lines)
}

// Edit replaces name, value and type of the first asset matching id.
//
// The asset keeps its stored id and its position. If nothing matches, the
// file is left untouched and ErrNotFound is returned.
func (l *Ledger) Edit(id, name, value, typ string) error {
	lines, err := l.store.LoadAll()
	if err != nil {
		return err
	}
	for i, line := range lines {
		if !l.match.matches(id, line) {
			continue
		}
		storedID := id
		if key, ok := firstField(line); ok {
			storedID = key
		}
		updated, err := EncodeAsset(Asset{ID: storedID, Name: name, Value: value, Type: typ})
		if err != nil {
			return err
		}
		lines[i] = updated
		return l.store.OverwriteAll(lines)
	}
	return fmt.Errorf("asset %q in %s: %w", id, l.store.Path(), ErrNotFound)
}

// Remove deletes every asset matching id and returns how many were removed.
// If nothing matches, the file is left untouched and ErrNotFound is returned.
func (l *Ledger) Remove(id string) (int, error) {
	lines, err := l.store.LoadAll()
	if err != nil {
		return 0, err
	}
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if !l.match.matches(id, line) {
			kept = append(kept, line)
		}
	}
	removed := len(lines) - len(kept)
	if removed == 0 {
		return 0, fmt.Errorf("asset %q in %s: %w", id, l.store.Path(), ErrNotFound)
	}
	if err := l.store.OverwriteAll(kept); err != nil {
		return 0, err
	}
	return removed, nil
}
