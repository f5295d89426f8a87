package server

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/assetrack/assetrack/internal/config"
)

var (
	AppEnv  = os.Getenv(config.ENV_KEY_APP_ENV)
	isLocal = AppEnv == "local"
)

// AuthMiddleware verifies the bearer token and stashes the acting user in
// the request context so write paths can attribute history entries.
func (s *Server) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if isLocal {
			// local development trusts the X-Actor header
			actor := c.Request().Header.Get(config.HEADER_KEY_X_ACTOR)
			oc := c.Request().Context()
			nc := context.WithValue(oc, config.CTX_KEY_ACTOR_ID, actor)
			nc = context.WithValue(nc, config.CTX_KEY_ACTOR_NAME, actor)
			c.SetRequest(c.Request().WithContext(nc))
			return next(c)
		}

		auth := c.Request().Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			return c.JSON(401, map[string]string{"error": "Authorization header is required"})
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(strings.TrimPrefix(auth, "Bearer "), claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(os.Getenv(config.ENV_KEY_JWT_SECRET)), nil
		})
		if err != nil || !token.Valid {
			return c.JSON(401, map[string]string{"error": "invalid token"})
		}

		sub, _ := claims.GetSubject()
		name, _ := claims["name"].(string)

		oc := c.Request().Context()
		nc := context.WithValue(oc, config.CTX_KEY_ACTOR_ID, sub)
		nc = context.WithValue(nc, config.CTX_KEY_ACTOR_NAME, name)
		c.SetRequest(c.Request().WithContext(nc))

		return next(c)
	}
}
