package utils

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
)

var JwtSecret []byte

func init() {
	// It's okay if the .env file isn't found; environment variables may be set elsewhere
	if err := godotenv.Load(); err != nil {
		Log.Infof("No .env file found: %v", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "backoffice-dev-secret"
		Log.Warn("JWT_SECRET is not set, using development default")
	}

	JwtSecret = []byte(secret)
}

// GenerateAccessToken creates a new JWT access token for a staff user.
func GenerateAccessToken(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(12 * time.Hour).Unix(),
	})

	return token.SignedString(JwtSecret)
}

// ExtractUserIDFromToken pulls the user id out of a Bearer authorization header.
func ExtractUserIDFromToken(authHeader string) (uint, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, errors.New("invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		return JwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	userIDFloat, ok := claims["user_id"].(float64) // JWT numeric values are float64
	if !ok {
		return 0, errors.New("invalid user ID in token")
	}

	return uint(userIDFloat), nil
}
