package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/hatynka/storefront/internal/pkg/models"
)

// ErrMissingCustomer is returned when a valid token carries no customer id
var ErrMissingCustomer = errors.New("token has no customer_id claim")

// GenerateToken issues a customer token signed with the configured secret
func GenerateToken(customerID uuid.UUID, email string, cfg models.JWTConfig) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(cfg.Expiration) * time.Minute).Unix()

	claims := jwt.MapClaims{
		"customer_id": customerID.String(),
		"email":       email,
		"exp":         expiresAt,
		"iss":         cfg.Issuer,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, secret string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return &claims, nil
}

// CustomerID validates tokenString and extracts the customer id claim
func CustomerID(tokenString, secret string) (uuid.UUID, error) {
	claims, err := ValidateToken(tokenString, secret)
	if err != nil {
		return uuid.Nil, err
	}

	raw, ok := (*claims)["customer_id"].(string)
	if !ok || raw == "" {
		return uuid.Nil, ErrMissingCustomer
	}
	return uuid.Parse(raw)
}
