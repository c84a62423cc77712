package middleware

import (
	pkgdto "github.com/Umar-Zak/lyospot/pkg/dto"
	"github.com/Umar-Zak/lyospot/pkg/errs"
	"github.com/Umar-Zak/lyospot/pkg/utils"
	"github.com/labstack/echo/v4"
)

const userContextKey = "user"

// Auth verifies the x-auth-token header and stores the decoded claims on the
// context. A missing token is 401, a bad or expired one is 403.
func Auth(jwtSecretKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get("x-auth-token")
			if token == "" {
				return pkgdto.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			claims, err := utils.VerifyJWTToken(token, jwtSecretKey)
			if err != nil {
				return pkgdto.WriteErrorResponse(c, errs.ErrForbidden, nil)
			}

			c.Set(userContextKey, claims)

			return next(c)
		}
	}
}

// Admin rejects requests whose attached claims lack the admin flag. It must
// run after Auth.
func Admin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(userContextKey).(utils.TokenClaims)
		if !ok || !claims.IsAdmin {
			return pkgdto.WriteErrorResponse(c, errs.ErrForbidden, nil)
		}

		return next(c)
	}
}

// TokenUser returns the claims attached by Auth.
func TokenUser(c echo.Context) (utils.TokenClaims, bool) {
	claims, ok := c.Get(userContextKey).(utils.TokenClaims)
	return claims, ok
}
