package investmate

import (
	"fmt"
	"strings"
)

// AccountService registers and authenticates users.
type AccountService struct {
	users *UserDirectory
}

// NewAccountService returns the service over the directory configured in cfg.
func NewAccountService(cfg Config) *AccountService {
	return &AccountService{users: NewUserDirectory(cfg.UsersFile)}
}

// Register adds u to the directory.
//
// It fails with ErrDuplicateKey if the email is already registered (ignoring
// case, whatever the password and name), with ErrInvalidInput if the email is
// blank or a field cannot be stored, and with ErrStorage if the write fails.
func (s *AccountService) Register(u User) error {
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if s.users.EmailExists(u.Email) {
		return fmt.Errorf("email %q is already registered: %w", u.Email, ErrDuplicateKey)
	}
	if err := s.users.Insert(u); err != nil {
		return fmt.Errorf("cannot register %q: %w", u.Email, err)
	}
	return nil
}

// Login returns the account matching email and password.
//
// An unknown email fails with ErrNotFound, a wrong password with
// ErrWrongPassword.
func (s *AccountService) Login(email, password string) (User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return User{}, err
	}
	if u.Password != password {
		return User{}, fmt.Errorf("login %q: %w", email, ErrWrongPassword)
	}
	return u, nil
}
