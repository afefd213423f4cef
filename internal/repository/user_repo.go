package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/jihoon-lab/coinboard-api/internal/models"
)

// UserRepository manages member persistence.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id uint) (models.User, error)
	List(ctx context.Context, search string) ([]models.User, error)
	UpdateRole(ctx context.Context, id uint, role string) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository constructs a user repository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", strings.TrimSpace(email)).First(&user).Error
	return user, err
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	return user, err
}

func (r *userRepository) List(ctx context.Context, search string) ([]models.User, error) {
	query := r.db.WithContext(ctx).Model(&models.User{})

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(nickname) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}

	var users []models.User
	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id uint, role string) error {
	return r.updateColumn(ctx, id, "role", role)
}

func (r *userRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.updateColumn(ctx, id, "status", status)
}

func (r *userRepository) updateColumn(ctx context.Context, id uint, column, value string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}
