// Package flash carries one-shot user messages across a redirect.  Pending
// messages travel in a cookie holding an HS256 JWT so that clients cannot
// forge them.
package flash

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// CookieName is the cookie that holds pending messages.
const CookieName = "flash"

const (
	Success = "success"
	Error   = "error"
)

// ttl bounds how long an unread message survives.
const ttl = 10 * time.Minute

const pendingKey = "flash.pending"

// Message is a single flashed message.
type Message struct {
	Category string `json:"c"`
	Text     string `json:"t"`
}

type claims struct {
	Messages []Message `json:"msgs"`
	jwt.RegisteredClaims
}

// Store signs and verifies flash cookies with a shared secret.
type Store struct {
	secret []byte
	secure bool
}

// NewStore returns a Store.  When secure is set cookies carry the Secure
// attribute.
func NewStore(secret string, secure bool) *Store {
	return &Store{secret: []byte(secret), secure: secure}
}

// Add queues a message for the next request that calls Pop.
func (s *Store) Add(c echo.Context, category, text string) error {
	msgs, _ := c.Get(pendingKey).([]Message)
	if msgs == nil {
		msgs = s.read(c.Request())
	}
	msgs = append(msgs, Message{Category: category, Text: text})
	c.Set(pendingKey, msgs)

	token, err := s.sign(msgs, time.Now().UTC())
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Success queues a success message.  Signing errors are dropped since a lost
// flash must never fail the request.
func (s *Store) Success(c echo.Context, text string) { _ = s.Add(c, Success, text) }

// Error queues an error message.
func (s *Store) Error(c echo.Context, text string) { _ = s.Add(c, Error, text) }

// Pop returns the pending messages and clears the cookie.  Tampered or
// expired cookies yield no messages.
func (s *Store) Pop(c echo.Context) []Message {
	if _, err := c.Cookie(CookieName); err != nil {
		return nil
	}
	msgs := s.read(c.Request())
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return msgs
}

// Pending reports whether r carries a flash cookie.  The page cache uses it to
// skip requests whose response depends on the cookie.
func Pending(r *http.Request) bool {
	ck, err := r.Cookie(CookieName)
	return err == nil && ck.Value != ""
}

func (s *Store) sign(msgs []Message, now time.Time) (string, error) {
	cl := claims{
		Messages: msgs,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(s.secret)
}

func (s *Store) read(r *http.Request) []Message {
	ck, err := r.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return nil
	}
	msgs, err := s.parse(ck.Value)
	if err != nil {
		return nil
	}
	return msgs
}

func (s *Store) parse(token string) ([]Message, error) {
	var cl claims
	t, err := jwt.ParseWithClaims(token, &cl, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !t.Valid {
		return nil, errors.New("flash: invalid token")
	}
	return cl.Messages, nil
}
