package draftmode

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	CookieName = "site_draft"
	defaultTTL = 12 * time.Hour
)

var ErrInvalidToken = errors.New("invalid draft token")

type claims struct {
	Exp int64 `json:"exp"`
}

// Manager turns preview sessions on and off with a signed cookie. A
// Manager without a secret never reports draft mode.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

type Option func(*Manager)

func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithSecureCookie sets the Secure attribute, for sites served over TLS.
func WithSecureCookie(secure bool) Option {
	return func(m *Manager) {
		m.secure = secure
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

func New(secret string, opts ...Option) *Manager {
	m := &Manager{
		secret: []byte(strings.TrimSpace(secret)),
		ttl:    defaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Available() bool {
	return m != nil && len(m.secret) > 0
}

// Enabled reports whether r carries a valid, unexpired draft cookie.
func (m *Manager) Enabled(r *http.Request) bool {
	if !m.Available() || r == nil {
		return false
	}

	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return false
	}

	return m.verify(cookie.Value) == nil
}

func (m *Manager) Enable(w http.ResponseWriter) error {
	if !m.Available() {
		return errors.New("draft mode requires a preview secret")
	}

	expires := m.now().Add(m.ttl)
	token, err := m.issue(claims{Exp: expires.Unix()})
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite(),
	})
	return nil
}

func (m *Manager) Disable(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite(),
	})
}

// sameSite allows the cookie inside the CMS admin iframe only when it
// can be Secure; browsers drop SameSite=None cookies without it.
func (m *Manager) sameSite() http.SameSite {
	if m.secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

// MatchesSecret compares a candidate against the preview secret in
// constant time.
func (m *Manager) MatchesSecret(candidate string) bool {
	if !m.Available() {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), m.secret) == 1
}

func (m *Manager) issue(c claims) (string, error) {
	payloadBytes, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal draft claims: %w", err)
	}
	payload := base64.RawURLEncoding.EncodeToString(payloadBytes)
	return payload + "." + m.sign(payload), nil
}

func (m *Manager) verify(token string) error {
	payload, signature, ok := strings.Cut(token, ".")
	if !ok {
		return ErrInvalidToken
	}

	if !hmac.Equal([]byte(signature), []byte(m.sign(payload))) {
		return ErrInvalidToken
	}

	decoded, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return ErrInvalidToken
	}

	var c claims
	if err := json.Unmarshal(decoded, &c); err != nil || c.Exp == 0 {
		return ErrInvalidToken
	}
	if m.now().Unix() >= c.Exp {
		return ErrInvalidToken
	}
	return nil
}

func (m *Manager) sign(payload string) string {
	sum := hmac.New(sha256.New, m.secret)
	_, _ = sum.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(sum.Sum(nil))
}
