package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers every token failure mode. Callers must not learn
// whether the signature, structure or expiry was at fault.
var ErrInvalidToken = errors.New("invalid token")

type accessClaims struct {
	jwt.RegisteredClaims
}

// GenerateToken creates a signed access token carrying the seller ID as
// subject and an absolute expiry.
func GenerateToken(secret, algorithm string, sellerID uuid.UUID, ttl time.Duration) (string, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return "", errors.New("unknown signing algorithm: " + algorithm)
	}

	claims := &accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sellerID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry and returns the embedded seller
// ID. Only tokens signed with the configured algorithm are accepted.
func ParseToken(secret, algorithm, tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{algorithm}))
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	sellerID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return sellerID, nil
}
