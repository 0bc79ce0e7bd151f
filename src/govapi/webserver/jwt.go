package webserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTMiddleware validates platform identity tokens and stores the
// member id on the context. Token issuance belongs to the identity
// subsystem; this engine only verifies.
func JWTMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := c.GetHeader("Authorization")
		if !strings.HasPrefix(bearer, "Bearer ") {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		token, err := jwt.Parse(bearer[7:], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		var memberID uint64
		switch sub := claims["sub"].(type) {
		case string:
			memberID, _ = strconv.ParseUint(sub, 10, 64)
		case float64:
			memberID = uint64(sub)
		}
		if memberID == 0 {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set("memberID", memberID)
		c.Next()
	}
}

func memberID(c *gin.Context) uint64 {
	v, _ := c.Get("memberID")
	id, _ := v.(uint64)
	return id
}
