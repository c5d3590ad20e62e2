package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"
)

// AdminGuard protects mutation routes with HTTP basic auth.  The password is
// checked against a bcrypt hash.  An empty user or hash disables the guard.
func AdminGuard(user, passwordHash string) echo.MiddlewareFunc {
	if user == "" || passwordHash == "" {
		return passThrough
	}
	return echomw.BasicAuthWithConfig(echomw.BasicAuthConfig{
		Realm: "venue-booking",
		Validator: func(u, p string, _ echo.Context) (bool, error) {
			userOK := subtle.ConstantTimeCompare([]byte(u), []byte(user)) == 1
			return userOK && VerifyPassword(passwordHash, p), nil
		},
	})
}

// HashPassword returns a bcrypt hash using the given cost.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares a bcrypt hash and a plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
