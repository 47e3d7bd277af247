package auth

import (
	"context"
	"errors"
	"game_roulette/internal/config"
	"game_roulette/internal/model"
	"game_roulette/internal/service"
	"game_roulette/pkg/pass"
	"game_roulette/pkg/token"

	"github.com/rs/zerolog/log"
)

var ErrInvalidPassword = errors.New("invalid password")

type serv struct {
	hostConfig config.HostConfig
	jwtConfig  config.JWTConfig
}

// NewAuthService - вход ведущего по паролю из HOST_PASSWORD_HASH
func NewAuthService(hostConfig config.HostConfig, jwtConfig config.JWTConfig) service.AuthService {
	return &serv{
		hostConfig: hostConfig,
		jwtConfig:  jwtConfig,
	}
}

// Login - проверка пароля и выдача access токена.
// Если пароль ведущего не задан, токен выдается без проверки
func (s *serv) Login(_ context.Context, password string) (*model.AuthData, error) {
	// Верификация пароля
	if s.hostConfig.Enabled() && !pass.VerifyPassword(s.hostConfig.PasswordHash(), password) {
		log.Warn().Msg("host login with wrong password")
		return nil, ErrInvalidPassword
	}

	// Создать access токен
	ttl := s.jwtConfig.AccessTokenDuration()
	accessToken, err := token.GenerateAccessToken(model.RoleHost, s.jwtConfig.AccessTokenSecretKey(), ttl)
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken: accessToken,
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}

// Verify - проверка токена ведущего
func (s *serv) Verify(accessToken string) (*model.HostClaims, error) {
	claims, err := token.VerifyToken(accessToken, s.jwtConfig.AccessTokenSecretKey())
	if err != nil {
		return nil, err
	}
	if claims.Role != model.RoleHost {
		return nil, errors.New("not a host token")
	}
	return claims, nil
}

func (s *serv) Enabled() bool {
	return s.hostConfig.Enabled()
}
