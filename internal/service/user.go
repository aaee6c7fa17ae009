package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db"
)

type UserService struct {
	users UserRepository
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{
		users: users,
	}
}

func (s *UserService) GetMe(ctx context.Context, userID uint64) (*db.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, userNotFound(err)
	}
	return user, nil
}

func (s *UserService) EditUser(ctx context.Context, userID uint64, patch db.UserPatch) (*db.User, error) {
	user, err := s.users.UpdateUser(ctx, userID, patch)
	if err != nil {
		return nil, userNotFound(err)
	}
	return user, nil
}

func userNotFound(err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
