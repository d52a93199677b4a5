package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// OwnerKey is the gin context key under which the resolved owner id is stored.
const OwnerKey = "owner_id"

// Identity resolves the owning identity for each request and stores it in
// the context. When a JWT secret is configured and the request carries a
// bearer token, the token's subject is the owner; otherwise the configured
// default owner is used. The default keeps the legacy single-tenant
// behavior while letting every downstream call take an explicit identity.
func Identity(jwtSecret, defaultOwnerID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := defaultOwnerID

		if jwtSecret != "" {
			if sub := subjectFromBearer(c, jwtSecret); sub != "" {
				owner = sub
			}
		}

		c.Set(OwnerKey, owner)
		c.Next()
	}
}

// Owner returns the owner id resolved by Identity, or "" outside it.
func Owner(c *gin.Context) string {
	owner, _ := c.Get(OwnerKey)
	s, _ := owner.(string)
	return s
}

func subjectFromBearer(c *gin.Context, secret string) string {
	header := c.GetHeader("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		return ""
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		zap.L().Warn("invalid bearer token, falling back to default owner", zap.Error(err))
		return ""
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}
