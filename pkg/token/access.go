package token

import (
	"errors"
	"fmt"
	"game_roulette/internal/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateAccessToken - HS256 токен ведущего со сроком жизни ttl
func GenerateAccessToken(role string, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := model.HostClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.HostClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.HostClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*model.HostClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
