package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// HostClaims - claims токена ведущего
type HostClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

const RoleHost = "host"

// AuthData - результат входа ведущего
type AuthData struct {
	AccessToken string
	ExpiresIn   int64
}
