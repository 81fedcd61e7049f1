package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"budget-tracker/internal/app"
	"budget-tracker/internal/model"
	"budget-tracker/internal/transport/http/middleware"
)

const testSecret = "handler-test-secret"

// memoryUserStore implements app.UserStore for endpoint tests.
type memoryUserStore struct {
	users  map[uint]*model.User
	nextID uint
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: map[uint]*model.User{}, nextID: 1}
}

func (m *memoryUserStore) Create(user *model.User) error {
	user.ID = m.nextID
	m.nextID++
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *memoryUserStore) GetByEmail(email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memoryUserStore) GetByUsername(username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memoryUserStore) GetByID(id uint) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func newAuthRouter(store app.UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	authService := app.NewAuthService(store, testSecret, 2*time.Hour)
	authHandler := NewAuthHandler(authService)

	router := gin.New()
	router.POST("/api/auth/signup", authHandler.Signup)
	router.POST("/api/auth/login", authHandler.Login)
	router.GET("/api/protected", middleware.AuthJWT(testSecret), func(c *gin.Context) {
		userID, _ := middleware.UserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSignupEndpoint_Success(t *testing.T) {
	router := newAuthRouter(newMemoryUserStore())

	rec := postJSON(router, "/api/auth/signup", `{"username":"alice","email":"alice@example.com","password":"Str0ng!pass"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "token") {
		t.Fatal("signup must not return a token")
	}
}

func TestSignupEndpoint_WeakPasswordListsUnmetRules(t *testing.T) {
	store := newMemoryUserStore()
	router := newAuthRouter(store)

	rec := postJSON(router, "/api/auth/signup", `{"username":"bob","email":"bob@example.com","password":"short"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	body := rec.Body.String()
	for _, rule := range []string{"at least 8 characters", "one uppercase letter", "one number", "one special character"} {
		if !strings.Contains(body, rule) {
			t.Errorf("response %q is missing rule %q", body, rule)
		}
	}
	if strings.Contains(body, "one lowercase letter") {
		t.Errorf("response %q reports a rule the password meets", body)
	}
	if len(store.users) != 0 {
		t.Fatal("weak password must not persist a user")
	}
}

func TestSignupEndpoint_DuplicateEmail(t *testing.T) {
	store := newMemoryUserStore()
	router := newAuthRouter(store)

	first := postJSON(router, "/api/auth/signup", `{"username":"alice","email":"dup@example.com","password":"Str0ng!pass"}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("first signup: expected 201, got %d", first.Code)
	}
	second := postJSON(router, "/api/auth/signup", `{"username":"other","email":"dup@example.com","password":"Str0ng!pass"}`)
	if second.Code != http.StatusBadRequest {
		t.Fatalf("second signup: expected 400, got %d", second.Code)
	}
	if !strings.Contains(second.Body.String(), "already exists") {
		t.Fatalf("unexpected body: %s", second.Body.String())
	}
	if len(store.users) != 1 {
		t.Fatalf("expected one persisted user, got %d", len(store.users))
	}
}

func TestLoginEndpoint_FailuresAreIdentical(t *testing.T) {
	router := newAuthRouter(newMemoryUserStore())

	rec := postJSON(router, "/api/auth/signup", `{"username":"alice","email":"alice@example.com","password":"Str0ng!pass"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d", rec.Code)
	}

	wrongPassword := postJSON(router, "/api/auth/login", `{"email":"alice@example.com","password":"Wr0ng!pass"}`)
	unknownEmail := postJSON(router, "/api/auth/login", `{"email":"nobody@example.com","password":"Str0ng!pass"}`)

	if wrongPassword.Code != http.StatusBadRequest || unknownEmail.Code != http.StatusBadRequest {
		t.Fatalf("expected 400/400, got %d/%d", wrongPassword.Code, unknownEmail.Code)
	}
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Fatalf("login failure bodies differ:\n%s\n%s", wrongPassword.Body.String(), unknownEmail.Body.String())
	}
}

func TestLoginEndpoint_TokenReachesProtectedRoute(t *testing.T) {
	router := newAuthRouter(newMemoryUserStore())

	if rec := postJSON(router, "/api/auth/signup", `{"username":"alice","email":"alice@example.com","password":"Str0ng!pass"}`); rec.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d", rec.Code)
	}

	login := postJSON(router, "/api/auth/login", `{"email":"alice@example.com","password":"Str0ng!pass"}`)
	if login.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", login.Code, login.Body.String())
	}

	var envelope struct {
		Data struct {
			Token string `json:"token"`
			User  struct {
				ID       uint   `json:"id"`
				Username string `json:"username"`
				Email    string `json:"email"`
			} `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(login.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if envelope.Data.Token == "" {
		t.Fatal("login response has no token")
	}
	if strings.Contains(login.Body.String(), "password") {
		t.Fatal("login response leaks password material")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer "+envelope.Data.Token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("protected route: expected 200, got %d", rec.Code)
	}

	var protected struct {
		UserID uint `json:"user_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &protected); err != nil {
		t.Fatalf("decode protected response: %v", err)
	}
	if protected.UserID != envelope.Data.User.ID {
		t.Fatalf("identity downstream %d does not match token subject %d", protected.UserID, envelope.Data.User.ID)
	}
}

func TestProtectedRoute_WithoutToken(t *testing.T) {
	router := newAuthRouter(newMemoryUserStore())

	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
