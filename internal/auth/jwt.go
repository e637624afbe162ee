package auth

import (
	"net/http" // Request type for header extraction
	"strings"  // String manipulation
	"time"     // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// bearerPrefix is the scheme expected in the Authorization header
const bearerPrefix = "Bearer "

// JWT Claims
type Claims struct {
	ClientID             uint `json:"client_id"` // Custom claim for the client identity
	jwt.RegisteredClaims      // Standard JWT claims
}

// GenerateToken creates a signed JWT for a given client ID
func GenerateToken(clientID uint, secret string) (string, error) {
	// Set token claims
	claims := Claims{
		ClientID: clientID, // Custom claim for the client identity
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)), // Token expires in 24 hours
			IssuedAt:  jwt.NewNumericDate(time.Now()),                     // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseToken parses and validates a JWT token string. Malformed, expired
// and badly signed tokens all come back as an error; no distinction is made.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil // Return claims if valid
	}
	// Return error if token is invalid
	return nil, jwt.ErrSignatureInvalid
}

// ExtractToken pulls the bearer token out of the Authorization header.
// A missing header or a non-bearer scheme yields "": an absent credential,
// not an error.
func ExtractToken(r *http.Request) string {
	header := r.Header.Get("Authorization") // Get Authorization header
	if header == "" || !strings.HasPrefix(header, bearerPrefix) {
		return "" // No credential presented
	}
	return strings.TrimPrefix(header, bearerPrefix) // Extract the token string
}
