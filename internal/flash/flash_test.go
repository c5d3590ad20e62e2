package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func flashCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == CookieName {
			return ck
		}
	}
	t.Fatalf("no %s cookie set", CookieName)
	return nil
}

func TestAddThenPop(t *testing.T) {
	s := NewStore("secret", false)

	c, rec := newContext()
	s.Success(c, "Venue The Musical Hop was successfully listed!")
	s.Error(c, "second")
	ck := flashCookie(t, rec)
	assert.True(t, ck.HttpOnly)

	c2, rec2 := newContext(ck)
	assert.True(t, Pending(c2.Request()))
	msgs := s.Pop(c2)
	assert.Equal(t, []Message{
		{Category: Success, Text: "Venue The Musical Hop was successfully listed!"},
		{Category: Error, Text: "second"},
	}, msgs)
	assert.Equal(t, -1, flashCookie(t, rec2).MaxAge)
}

func TestPopWithoutCookie(t *testing.T) {
	c, rec := newContext()
	assert.Nil(t, NewStore("secret", false).Pop(c))
	assert.Empty(t, rec.Result().Cookies())
	assert.False(t, Pending(c.Request()))
}

func TestPopRejectsForeignSignature(t *testing.T) {
	c, rec := newContext()
	NewStore("other", false).Success(c, "forged")

	c2, _ := newContext(flashCookie(t, rec))
	assert.Empty(t, NewStore("secret", false).Pop(c2))
}

func TestExpiredToken(t *testing.T) {
	s := NewStore("secret", false)
	token, err := s.sign([]Message{{Category: Success, Text: "old"}}, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = s.parse(token)
	assert.Error(t, err)
}

func TestAddAppendsToIncomingCookie(t *testing.T) {
	s := NewStore("secret", false)
	c, rec := newContext()
	s.Success(c, "first")

	c2, rec2 := newContext(flashCookie(t, rec))
	s.Error(c2, "second")

	msgs, err := s.parse(flashCookie(t, rec2).Value)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}
