package middleware

import (
	"fmt"
	"strings"
	"studytrack/config"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// AuthCookieName is the session cookie carrying the access token
const AuthCookieName = "st-access-token"

// GenerateJWT generates a JWT token for the user
func GenerateJWT(userID uint, name, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"name":   name,
		"email":  email,
		"iat":    time.Now().Unix(),                     // issued at
		"exp":    time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// extractToken pulls the access token from the session cookie or the
// Authorization header. The cookie wins; any cookie with an auth-related
// prefix is inspected so older cookie names keep working.
func extractToken(c *fiber.Ctx) string {
	if token := c.Cookies(AuthCookieName); token != "" {
		return token
	}

	var token string
	c.Request().Header.VisitAllCookie(func(key, value []byte) {
		name := string(key)
		if token == "" && (strings.HasPrefix(name, "st-") || strings.Contains(name, "access-token")) {
			token = string(value)
		}
	})
	if token != "" {
		return token
	}

	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[len("Bearer "):]
	}
	return ""
}

// parseToken validates the token and returns the user ID from its claims
func parseToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Check if the token method is valid
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		jwtSecret := []byte(config.AppConfig.JWTKey)
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return 0, fmt.Errorf("invalid token payload")
	}

	userID := claims["userId"].(float64) // JWT claims are typically stored as `float64`, so cast it
	return uint(userID), nil
}

// JWTMiddleware is a middleware to check for a valid session token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	tokenString := extractToken(c)
	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Missing session token!",
		})
	}

	userID, err := parseToken(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid or expired token",
		})
	}

	// Set the user ID in the request context
	c.Locals("userId", userID)

	// If valid, continue to the next handler
	return c.Next()
}

// OptionalJWTMiddleware resolves the identity when a session token is present
// and continues as guest otherwise. Handlers behind it must treat a missing
// "userId" local as an unauthenticated actor.
func OptionalJWTMiddleware(c *fiber.Ctx) error {
	tokenString := extractToken(c)
	if tokenString == "" {
		return c.Next()
	}

	userID, err := parseToken(tokenString)
	if err != nil {
		// A stale cookie is not an error for guest-permitted routes
		return c.Next()
	}

	c.Locals("userId", userID)
	return c.Next()
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
