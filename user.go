package investmate

import (
	"fmt"
	"strings"
)

// Role tags the kind of account. Investors are the only role today.
type Role string

const RoleInvestor Role = "investor"

// User is an account of the user directory.
//
// The email is the identity of the account and is compared without regard to
// case. The password is kept and compared as plain text.
type User struct {
	Email    string `json:"email"`
	Password string `json:"-"`
	FullName string `json:"fullName"`
	Role     Role   `json:"role"`
}

// NewInvestor returns an investor account.
func NewInvestor(email, password, fullName string) User {
	return User{Email: email, Password: password, FullName: fullName, Role: RoleInvestor}
}

// Key returns the normalized email used to compare accounts and to name
// their ledger.
func (u User) Key() string { return normalizeEmail(u.Email) }

func normalizeEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

// EncodeUser returns the directory line of u: "email,password,fullName".
func EncodeUser(u User) (string, error) {
	return encodeRecord(u.Email, u.Password, u.FullName)
}

// DecodeUser parses a directory line.
//
// Older versions wrote the full name unescaped, so any field after the
// password belongs to the full name.
func DecodeUser(line string) (User, error) {
	fields, err := decodeRecord(line, 3)
	if err != nil {
		return User{}, err
	}
	if len(fields) < 3 {
		return User{}, fmt.Errorf("%w: user record %q has %d fields, want 3", ErrInvalidInput, line, len(fields))
	}
	return NewInvestor(fields[0], fields[1], joinTail(fields[2:])), nil
}
