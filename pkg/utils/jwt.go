package utils

import (
	"time"

	"github.com/Umar-Zak/lyospot/pkg/errs"
	"github.com/golang-jwt/jwt"
)

// TokenClaims is the decoded payload of an x-auth-token header, trusted for
// the duration of one request.
type TokenClaims struct {
	ID        string
	Email     string
	Name      string
	IsAdmin   bool
	HasStore  bool
	StoreName string
}

func CreateJWTToken(user TokenClaims, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["_id"] = user.ID
	claims["email"] = user.Email
	claims["name"] = user.Name
	claims["isAdmin"] = user.IsAdmin
	claims["hasStore"] = user.HasStore
	claims["storeName"] = user.StoreName
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}

func VerifyJWTToken(tokenString string, jwtSecretKey string) (TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrForbidden
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return TokenClaims{}, errs.ErrForbidden
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, errs.ErrForbidden
	}

	user := TokenClaims{}
	user.ID, _ = claims["_id"].(string)
	user.Email, _ = claims["email"].(string)
	user.Name, _ = claims["name"].(string)
	user.IsAdmin, _ = claims["isAdmin"].(bool)
	user.HasStore, _ = claims["hasStore"].(bool)
	user.StoreName, _ = claims["storeName"].(string)

	return user, nil
}
