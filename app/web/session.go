package web

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"identity-dashboard/app/domain"
)

// SessionCookie is the signed session cookie name.
const SessionCookie = "dashboard_session"

// sessionKey stores the hydrated session on the echo context.
const sessionKey = "dashboard_session"

// Session is the authenticated dashboard user, as carried in the signed
// session cookie.
type Session struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	// ProjectID is the project the user's token is scoped to.
	ProjectID string `json:"project_id,omitempty"`
	Admin     bool   `json:"admin"`

	// DomainContext scopes admin listings to one domain; its name is kept
	// alongside so pages can show it without another lookup.
	DomainContext     string `json:"domain_context,omitempty"`
	DomainContextName string `json:"domain_context_name,omitempty"`
}

type sessionClaims struct {
	Session
	jwt.RegisteredClaims
}

// SessionManager signs and verifies the session cookie.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionManager creates a session manager. ttl bounds how long an issued
// cookie stays valid.
func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs the session and sets it as a cookie on the response.
func (m *SessionManager) Issue(c echo.Context, s Session) error {
	now := time.Now()
	claims := sessionClaims{
		Session: s,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session: %w", err)
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    signed,
		Path:     "/",
		Expires:  now.Add(m.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Read verifies the session cookie and returns the session it carries.
func (m *SessionManager) Read(c echo.Context) (*Session, error) {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionNotFound, err)
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", domain.ErrSessionExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSession, err)
	}
	if !token.Valid {
		return nil, domain.ErrInvalidSession
	}
	return &claims.Session, nil
}

// SetDomainContext reissues the session with a new admin domain context.
// Empty values clear the context.
func (m *SessionManager) SetDomainContext(c echo.Context, s Session, domainID, domainName string) error {
	s.DomainContext = domainID
	s.DomainContextName = domainName
	return m.Issue(c, s)
}

// Clear expires the session cookie.
func (m *SessionManager) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetSession stores the hydrated session on the request context.
func SetSession(c echo.Context, s *Session) {
	c.Set(sessionKey, s)
}

// GetSession returns the hydrated session, or nil when unauthenticated.
func GetSession(c echo.Context) *Session {
	s, _ := c.Get(sessionKey).(*Session)
	return s
}
