package investmate

import (
	"fmt"
	"log"
	"strings"
)

// UserDirectory is the global, append-only file of accounts.
type UserDirectory struct {
	store *Store
}

// NewUserDirectory opens the directory stored at path.
func NewUserDirectory(path string) *UserDirectory {
	return &UserDirectory{store: NewStore(path)}
}

// EmailExists reports whether an account uses email, ignoring case.
//
// A directory that cannot be read is treated as not holding the email, so
// that a damaged or missing file never blocks a new registration.
func (d *UserDirectory) EmailExists(email string) bool {
	found, err := d.store.Exists(func(line string) bool {
		key, ok := firstField(line)
		return ok && sameEmail(key, email)
	})
	if err != nil {
		log.Printf("warning, cannot read user directory, assuming %q is not registered: %v", email, err)
		return false
	}
	return found
}

// FindByEmail returns the account registered with email.
// Lines that cannot be decoded are skipped.
func (d *UserDirectory) FindByEmail(email string) (User, error) {
	var user User
	_, found, err := d.store.Find(func(line string) bool {
		u, err := DecodeUser(line)
		if err != nil {
			if key, ok := firstField(line); ok && sameEmail(key, email) {
				log.Printf("warning, skipping unreadable account line in %s: %v", d.store.Path(), err)
			}
			return false
		}
		if !sameEmail(u.Email, email) {
			return false
		}
		user = u
		return true
	})
	if err != nil {
		return User{}, err
	}
	if !found {
		return User{}, fmt.Errorf("no account for %q: %w", email, ErrNotFound)
	}
	return user, nil
}

// Insert appends u to the directory. It does not check for duplicates.
func (d *UserDirectory) Insert(u User) error {
	line, err := EncodeUser(u)
	if err != nil {
		return err
	}
	return d.store.Append(line)
}

func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
