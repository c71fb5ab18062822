package repository

import (
	"context"

	"github.com/indunissanka/qbread/models"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	return &user, err
}

func (r *userRepository) FindByLineID(ctx context.Context, lineID string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("line_id = ?", lineID).First(&user).Error
	return &user, err
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}
