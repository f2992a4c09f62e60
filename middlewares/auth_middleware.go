package middlewares

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthenticateAccessToken guards routes with the access_token cookie.
func AuthenticateAccessToken() gin.HandlerFunc {
	return authenticateTokenCookie("access", "ACCESS_TOKEN_SECRET")
}

// AuthenticateRefreshToken guards the token refresh route with the
// refresh_token cookie.
func AuthenticateRefreshToken() gin.HandlerFunc {
	return authenticateTokenCookie("refresh", "REFRESH_TOKEN_SECRET")
}

func authenticateTokenCookie(tokenType, secretEnv string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(tokenType + "_token")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": tokenType + " token not in cookie"})
			return
		}

		secret := []byte(os.Getenv(secretEnv))
		if len(secret) == 0 {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: " + secretEnv + " not set"})
			return
		}

		// HS256 only
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired " + tokenType + " token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}

		userEmail, _ := claims["userEmail"].(string)
		if userEmail == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "userEmail claim missing"})
			return
		}

		c.Set("userEmail", userEmail)

		c.Next()
	}
}
