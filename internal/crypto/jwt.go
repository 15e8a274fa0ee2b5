package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims represents the JWT claims for an authenticated user. Malformed,
// forged, and expired tokens are deliberately indistinguishable to callers.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// GenerateToken creates a signed JWT for the given user identity.
func GenerateToken(userID int64, email, name, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "learnx",
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
		Email:  email,
		Name:   name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a token string, returning the claims if
// valid. All failure modes map to ErrInvalidToken.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	return validateToken(tokenString, secret)
}

// ValidateTokenAt is ValidateToken with an injectable clock, for expiry tests.
func ValidateTokenAt(tokenString, secret string, now func() time.Time) (*Claims, error) {
	return validateToken(tokenString, secret, jwt.WithTimeFunc(now))
}

func validateToken(tokenString, secret string, opts ...jwt.ParserOption) (*Claims, error) {
	opts = append(opts, jwt.WithIssuer("learnx"))
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
