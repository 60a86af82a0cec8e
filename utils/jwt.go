package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the caller identity plus their active roles. Resource-level
// decisions (links, ownership) still go through authz against the database.
type Claims struct {
	UserID uint     `json:"userId"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for the user.
func GenerateToken(userID uint, roles []string, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
