package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/airport-ops/internal/domain"
	"github.com/Domenick1991/airport-ops/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthUseCase) Login(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthUseCase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newTestSessions() *session.Manager {
	return session.NewManager(session.NewMemoryStore(time.Hour), session.CookieConfig{Name: "airport_session", TTL: time.Hour})
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "airport_session" {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestAuthHandler_login(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService, newTestSessions())
	c, w := newTestContext("POST", "/login", `{"username":"admin","password":"secret1"}`)

	creds := domain.Credentials{Username: "admin", Password: "secret1"}
	mockService.On("Login", mock.Anything, creds).Return(&domain.User{ID: 1, Username: "admin", PasswordHash: "hash"}, nil)

	handler.login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"username":"admin"}`, w.Body.String())
	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.NotEmpty(t, cookie.Value)
}

func TestAuthHandler_login_InvalidCredentials(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService, newTestSessions())
	c, w := newTestContext("POST", "/login", `{"username":"admin","password":"wrong!!"}`)

	mockService.On("Login", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidCredentials)

	handler.login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Invalid username or password"}`, w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}

func TestAuthHandler_register_Duplicate(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService, newTestSessions())
	c, w := newTestContext("POST", "/register", `{"username":"admin","password":"secret1"}`)

	mockService.On("Register", mock.Anything, mock.Anything).Return(nil, domain.NewValidationError("username", "already exists"))

	handler.register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := newTestSessions()
	mockService := &MockAuthUseCase{}
	mockService.On("Login", mock.Anything, mock.Anything).Return(&domain.User{ID: 7, Username: "ops"}, nil)

	router := gin.New()
	router.POST("/login", NewAuthHandler(mockService, sessions).login)
	router.GET("/private", RequireSession(sessions), func(c *gin.Context) {
		id, _ := session.UserID(c)
		c.JSON(http.StatusOK, gin.H{"user": id})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/private", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String())

	login := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"username":"ops","password":"secret1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(login, req)
	require.Equal(t, http.StatusOK, login.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/private", nil)
	req.AddCookie(sessionCookie(t, login))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":7}`, w.Body.String())
}
