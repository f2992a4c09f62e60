package utils

import (
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultAccessExpHours  = 1
	defaultRefreshExpHours = 72
)

func GenerateAccessToken(userEmail string) (string, error) {
	return generateToken(userEmail, "ACCESS_TOKEN_SECRET", AccessTokenMaxAge())
}

func GenerateRefreshToken(userEmail string) (string, error) {
	return generateToken(userEmail, "REFRESH_TOKEN_SECRET", RefreshTokenMaxAge())
}

// AccessTokenMaxAge is the access token lifetime in seconds, also used for
// its cookie.
func AccessTokenMaxAge() int {
	return expHours("ACCESS_TOKEN_EXP_HOURS", defaultAccessExpHours) * 3600
}

// RefreshTokenMaxAge is the refresh token lifetime in seconds, also used for
// its cookie.
func RefreshTokenMaxAge() int {
	return expHours("REFRESH_TOKEN_EXP_HOURS", defaultRefreshExpHours) * 3600
}

func generateToken(userEmail, secretEnv string, maxAgeSeconds int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userEmail": userEmail,
		"exp":       time.Now().Add(time.Duration(maxAgeSeconds) * time.Second).Unix(),
	})

	return token.SignedString([]byte(os.Getenv(secretEnv)))
}

func expHours(env string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(env)); err == nil && v > 0 {
		return v
	}
	return def
}
