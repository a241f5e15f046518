package middleware // middleware contains reusable HTTP middleware functions

import (
    "net/http"
    "strings"

    "github.com/golang-jwt/jwt/v5"
    "github.com/labstack/echo/v4"
)

// JWTAuth returns an Echo middleware that validates a Bearer access
// token and injects the token's subject (the username) into the
// request context under "user_id".  The provided secret must match
// the one used when issuing tokens.  Handlers on protected routes
// read the identity from the request context; an absent or invalid
// token is rejected with 401 before any booking work happens.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            // Parse with HS256 only; any other signing method is rejected.
            tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
                if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                    return nil, echo.ErrUnauthorized
                }
                return []byte(secret), nil
            })
            if err != nil || !tok.Valid {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }

            claims, ok := tok.Claims.(jwt.MapClaims)
            if !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
            }
            sub, _ := claims["sub"].(string)
            if sub == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
            }
            c.Set("user_id", sub)
            return next(c)
        }
    }
}

// ParseSubject extracts the subject from a raw bearer token without
// requiring one.  It returns "" when the token is absent or invalid.
// Used by the whoami endpoint, which reports a null identity instead
// of rejecting unauthenticated callers.
func ParseSubject(c echo.Context, secret string) string {
    auth := c.Request().Header.Get("Authorization")
    if !strings.HasPrefix(auth, "Bearer ") {
        return ""
    }
    raw := strings.TrimPrefix(auth, "Bearer ")
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, echo.ErrUnauthorized
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return ""
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return ""
    }
    sub, _ := claims["sub"].(string)
    return sub
}
