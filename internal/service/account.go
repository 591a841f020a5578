package service

import (
	"context"
	"crypto/subtle"

	"github.com/dchest/uniuri"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/millbrook-logistics/dispatchd/internal/app/appconfig"
	"github.com/millbrook-logistics/dispatchd/internal/constant"
	"github.com/millbrook-logistics/dispatchd/internal/model/types"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/apperr"
	"github.com/millbrook-logistics/dispatchd/internal/pkg/fiberstore"
)

// Account issues and validates staff session tokens. Tokens live in redis
// so every API replica sees the same sessions.
type Account struct {
	config *appconfig.Config
	store  *fiberstore.Redis
}

func NewAccount(config *appconfig.Config, client *redis.Client) *Account {
	return &Account{
		config: config,
		store:  fiberstore.NewRedis(client, constant.SessionKeyPrefix),
	}
}

// Login checks the shared staff access key and, on success, issues a fresh
// session token with the configured TTL.
func (s *Account) Login(ctx context.Context, accessKey string) (*types.LoginResponse, error) {
	if s.config.AccessKey == "" {
		return nil, apperr.ErrUnauthorized.Msg("login is disabled: no access key configured")
	}
	if subtle.ConstantTimeCompare([]byte(accessKey), []byte(s.config.AccessKey)) != 1 {
		return nil, apperr.ErrUnauthorized.Msg("invalid access key")
	}

	token := uniuri.NewLen(32)
	if err := s.store.Set(token, []byte("1"), s.config.SessionTTL); err != nil {
		log.Error().Err(err).Msg("failed to persist session token")
		return nil, err
	}

	return &types.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.config.SessionTTL.Seconds()),
	}, nil
}

// Logout revokes a session token. Revoking an unknown token is a no-op.
func (s *Account) Logout(ctx context.Context, token string) error {
	return s.store.Delete(token)
}

// Valid implements middlewares.SessionValidator.
func (s *Account) Valid(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	b, err := s.store.Get(token)
	if err != nil {
		log.Warn().Err(err).Msg("failed to look up session token")
		return false
	}
	return b != nil
}
