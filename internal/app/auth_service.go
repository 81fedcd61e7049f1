package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"budget-tracker/internal/model"
	"budget-tracker/internal/pkg/jwtutil"
	"budget-tracker/internal/pkg/passwordhash"
	"budget-tracker/internal/pkg/passwordpolicy"
	"budget-tracker/internal/repository"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// Email and username duplicates are distinguished at signup time only.
	ErrEmailExists    = errors.New("user already exists with this email")
	ErrUsernameExists = errors.New("username already taken")
	// ErrInvalidCredential deliberately covers both an unknown email and a
	// wrong password so a caller cannot probe which accounts exist.
	ErrInvalidCredential = errors.New("invalid credentials")
)

// PolicyViolationError lists the password rules a signup candidate failed.
type PolicyViolationError struct {
	Unmet []string
}

func (e *PolicyViolationError) Error() string {
	return "password must include: " + strings.Join(e.Unmet, ", ")
}

// UserStore is the credential store consumed by AuthService. Satisfied by
// repository.UserRepository.
type UserStore interface {
	Create(user *model.User) error
	GetByEmail(email string) (*model.User, error)
	GetByUsername(username string) (*model.User, error)
	GetByID(id uint) (*model.User, error)
}

type AuthService struct {
	users         UserStore
	jwtSecret     string
	jwtExpiration time.Duration
}

type SignupInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	Token string
	User  *model.User
}

func NewAuthService(users UserStore, jwtSecret string, jwtExpiration time.Duration) *AuthService {
	return &AuthService{
		users:         users,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Signup registers a new user. First failure wins: the password policy runs
// before any store access, then email and username uniqueness, then the hash
// and the single insert. No token is issued; the client logs in separately.
func (s *AuthService) Signup(input SignupInput) error {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if username == "" || email == "" {
		return ErrInvalidInput
	}

	if unmet := passwordpolicy.Validate(input.Password); len(unmet) > 0 {
		return &PolicyViolationError{Unmet: unmet}
	}

	existingByEmail, err := s.users.GetByEmail(email)
	if err != nil {
		return err
	}
	if existingByEmail != nil {
		return ErrEmailExists
	}

	existingByName, err := s.users.GetByUsername(username)
	if err != nil {
		return err
	}
	if existingByName != nil {
		return ErrUsernameExists
	}

	hash, err := passwordhash.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			// A concurrent signup won the race between the existence checks
			// and the insert. Map the unique-index rejection to the same
			// responses the checks produce.
			if dup, lookupErr := s.users.GetByEmail(email); lookupErr == nil && dup != nil {
				return ErrEmailExists
			}
			return ErrUsernameExists
		}
		return err
	}
	return nil
}

// Login verifies credentials and issues a bearer token for the user.
func (s *AuthService) Login(input LoginInput) (*AuthResult, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || input.Password == "" {
		return nil, ErrInvalidCredential
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredential
	}

	if !passwordhash.Verify(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredential
	}

	token, err := jwtutil.GenerateToken(s.jwtSecret, s.jwtExpiration, user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) GetUserByID(id uint) (*model.User, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	return s.users.GetByID(id)
}
