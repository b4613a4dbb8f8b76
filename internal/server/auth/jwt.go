// Package auth issues and verifies the signed bearer tokens that carry a
// caller's identity between requests.
package auth

import (
	"errors"
	"time"

	"github.com/dmarques/despesas/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload: the registered claims plus the identity of
// the user the token was issued for.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"uid"`
	UserName string `json:"name"`
}

// Identity is the verified identity extracted from a token.
type Identity struct {
	UserID   int64
	UserName string
}

// GenerateToken signs an HS256 token binding the user id and display name.
// A non-positive validity produces a token without an expiration claim.
func GenerateToken(userID int64, userName string, secretKey []byte, validity time.Duration) (string, error) {
	claims := Claims{
		UserID:   userID,
		UserName: userName,
	}
	if validity > 0 {
		claims.RegisteredClaims = jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and payload shape of a token and returns
// the identity it carries. Expired tokens yield common.ErrTokenExpired; any
// other failure yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	// The identity claim has a fixed schema; a token without it is not ours.
	if claims.UserID <= 0 || claims.UserName == "" {
		return nil, common.ErrInvalidToken
	}

	return &Identity{UserID: claims.UserID, UserName: claims.UserName}, nil
}
