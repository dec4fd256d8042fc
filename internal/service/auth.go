package service

import (
	"context"
	"time"

	"github.com/jasimjamil/course-feedbig-system/internal/lib/password"
	"github.com/jasimjamil/course-feedbig-system/internal/model"
	"github.com/jasimjamil/course-feedbig-system/internal/repository"
)

// AuthService registers and authenticates users against stored argon2id hashes.
type AuthService struct {
	users  *repository.UserRepository
	hasher *password.Hasher
	obs    observer
}

func newAuthService(users *repository.UserRepository, hasher *password.Hasher, obs observer) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		obs:    obs,
	}
}

// RegisterUser hashes plaintext with a fresh salt and stores the user.
// A taken username surfaces as CONFLICT.
func (s *AuthService) RegisterUser(ctx context.Context, username, plaintext, role string) (id int64, err error) {
	defer func(start time.Time) { s.obs.done(ctx, "register_user", start, err) }(time.Now())

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return 0, err
	}

	id, err = s.users.Create(ctx, username, hash, role)
	if err != nil {
		return 0, err
	}

	s.obs.log.Info().Int64("user_id", id).Str("role", role).Msg("registered user")
	return id, nil
}

// AuthenticateUser returns the user when plaintext matches the stored hash.
// Unknown usernames are NOT_FOUND, wrong passwords UNAUTHORIZED.
func (s *AuthService) AuthenticateUser(ctx context.Context, username, plaintext string) (user *model.User, err error) {
	defer func(start time.Time) { s.obs.done(ctx, "authenticate_user", start, err) }(time.Now())

	user, err = s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err = s.hasher.Verify(plaintext, user.PasswordHash); err != nil {
		s.obs.log.Warn().Int64("user_id", user.ID).Msg("authentication failed")
		return nil, err
	}

	return user, nil
}
