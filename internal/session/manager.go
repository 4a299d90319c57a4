package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const userIDKey = "session.userID"

type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Manager binds a Store to the session cookie of gin requests.
type Manager struct {
	store  Store
	cookie CookieConfig
}

func NewManager(store Store, cookie CookieConfig) *Manager {
	return &Manager{store: store, cookie: cookie}
}

// Start opens a session for the user and sets the cookie on the response.
func (m *Manager) Start(c *gin.Context, userID int64) error {
	token, err := m.store.Create(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookie.Name, token, int(m.cookie.TTL.Seconds()), "/", "", m.cookie.Secure, true)
	c.Set(userIDKey, userID)
	return nil
}

// End destroys the current session, if any, and expires the cookie.
func (m *Manager) End(c *gin.Context) error {
	token, err := c.Cookie(m.cookie.Name)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookie.Name, "", -1, "/", "", m.cookie.Secure, true)
	if err != nil || token == "" {
		return nil
	}
	return m.store.Destroy(c.Request.Context(), token)
}

// Resolve returns the user of the request's session. It caches the result on
// the context and returns ErrNotFound when there is no valid session.
func (m *Manager) Resolve(c *gin.Context) (int64, error) {
	if id, ok := UserID(c); ok {
		return id, nil
	}
	token, err := c.Cookie(m.cookie.Name)
	if err != nil || token == "" {
		return 0, ErrNotFound
	}
	id, err := m.store.Lookup(c.Request.Context(), token)
	if err != nil {
		return 0, err
	}
	c.Set(userIDKey, id)
	return id, nil
}

func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
