package services

import (
	"context"
	"errors"

	"hospitalflow/models"
	"hospitalflow/repositories"
	"hospitalflow/utils"
)

// AuthService authenticates against the static seeded staff accounts.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, errors.New("invalid username or password")
	}
	if !utils.CheckPassword(user.Password, password) {
		return nil, errors.New("invalid username or password")
	}
	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}
