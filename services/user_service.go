package services

import (
	"context"
	"errors"

	"github.com/indunissanka/qbread/auth"
	"github.com/indunissanka/qbread/logger"
	"github.com/indunissanka/qbread/models"
	"github.com/indunissanka/qbread/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// FindOrCreateFromProfile upserts the local user for a LINE profile. First
// login creates the user with role "user"; claims are taken verbatim.
func (s *UserService) FindOrCreateFromProfile(ctx context.Context, profile *auth.Profile) (*models.User, error) {
	user, err := s.users.FindByLineID(ctx, profile.UserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	lineID := profile.UserID
	user = &models.User{
		LineID:      &lineID,
		DisplayName: profile.DisplayName,
		Role:        models.RoleUser,
	}
	if profile.PictureURL != "" {
		user.Picture = &profile.PictureURL
	}
	if profile.Email != "" {
		user.Email = &profile.Email
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Log.Info("Created new user from LINE profile",
		zap.Uint("user_id", user.ID),
		zap.String("display_name", user.DisplayName),
	)
	return user, nil
}
