package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	"budget-tracker/internal/model"
	"budget-tracker/internal/pkg/jwtutil"
	"budget-tracker/internal/repository"
)

// fakeUserStore is an in-memory UserStore for orchestration tests. createErr,
// when set, is returned by Create to simulate store-level failures.
type fakeUserStore struct {
	users     map[uint]*model.User
	nextID    uint
	createErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint]*model.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(user *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserStore) GetByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByUsername(username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByID(id uint) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

const testSecret = "test-secret"

func newTestAuthService(store UserStore) *AuthService {
	return NewAuthService(store, testSecret, 2*time.Hour)
}

func TestSignup_Success(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestAuthService(store)

	err := svc.Signup(SignupInput{Username: "alice", Email: "Alice@Example.com", Password: "Str0ng!pass"})
	if err != nil {
		t.Fatalf("Signup error: %v", err)
	}

	user, _ := store.GetByEmail("alice@example.com")
	if user == nil {
		t.Fatal("user was not persisted with a normalized email")
	}
	if user.PasswordHash == "" || user.PasswordHash == "Str0ng!pass" {
		t.Fatal("password was not hashed before persisting")
	}
}

func TestSignup_PolicyViolationListsAllRules(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestAuthService(store)

	err := svc.Signup(SignupInput{Username: "bob", Email: "bob@example.com", Password: "short"})
	var policyErr *PolicyViolationError
	if !errors.As(err, &policyErr) {
		t.Fatalf("expected PolicyViolationError, got %v", err)
	}

	msg := policyErr.Error()
	for _, rule := range []string{"at least 8 characters", "one uppercase letter", "one number", "one special character"} {
		if !strings.Contains(msg, rule) {
			t.Errorf("policy message %q is missing rule %q", msg, rule)
		}
	}
	if strings.Contains(msg, "one lowercase letter") {
		t.Errorf("policy message %q reports a rule the password meets", msg)
	}
	if len(store.users) != 0 {
		t.Fatal("policy failure must not persist a user")
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestAuthService(store)

	if err := svc.Signup(SignupInput{Username: "alice", Email: "dup@example.com", Password: "Str0ng!pass"}); err != nil {
		t.Fatalf("first Signup error: %v", err)
	}
	err := svc.Signup(SignupInput{Username: "other", Email: "dup@example.com", Password: "Str0ng!pass"})
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
	if len(store.users) != 1 {
		t.Fatalf("expected one persisted user, got %d", len(store.users))
	}
}

func TestSignup_DuplicateUsername(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestAuthService(store)

	if err := svc.Signup(SignupInput{Username: "alice", Email: "a@example.com", Password: "Str0ng!pass"}); err != nil {
		t.Fatalf("first Signup error: %v", err)
	}
	err := svc.Signup(SignupInput{Username: "alice", Email: "b@example.com", Password: "Str0ng!pass"})
	if !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
}

func TestSignup_InsertRaceMapsToUsernameExists(t *testing.T) {
	t.Parallel()

	// Both existence checks pass but the insert hits the unique index, as
	// when a concurrent signup with the same username lands first.
	store := newFakeUserStore()
	store.createErr = repository.ErrDuplicateEntry
	svc := newTestAuthService(store)

	err := svc.Signup(SignupInput{Username: "racer", Email: "racer@example.com", Password: "Str0ng!pass"})
	if !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestAuthService(store)
	if err := svc.Signup(SignupInput{Username: "alice", Email: "alice@example.com", Password: "Str0ng!pass"}); err != nil {
		t.Fatalf("Signup error: %v", err)
	}

	result, err := svc.Login(LoginInput{Email: "alice@example.com", Password: "Str0ng!pass"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}
	if result.User.Username != "alice" {
		t.Fatalf("unexpected user in result: %+v", result.User)
	}

	claims, err := jwtutil.ParseToken(testSecret, result.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != result.User.ID {
		t.Fatalf("token subject %d does not match user id %d", claims.UserID, result.User.ID)
	}
}

func TestLogin_FailuresAreUndifferentiated(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestAuthService(store)
	if err := svc.Signup(SignupInput{Username: "alice", Email: "alice@example.com", Password: "Str0ng!pass"}); err != nil {
		t.Fatalf("Signup error: %v", err)
	}

	_, wrongPassword := svc.Login(LoginInput{Email: "alice@example.com", Password: "Wr0ng!pass"})
	_, unknownEmail := svc.Login(LoginInput{Email: "nobody@example.com", Password: "Str0ng!pass"})

	if !errors.Is(wrongPassword, ErrInvalidCredential) {
		t.Fatalf("wrong password: expected ErrInvalidCredential, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, ErrInvalidCredential) {
		t.Fatalf("unknown email: expected ErrInvalidCredential, got %v", unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatal("failure messages must not reveal which field was wrong")
	}
}
