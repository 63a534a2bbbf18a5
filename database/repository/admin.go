// database/repository/admin.go
package repository

import (
	"errors"
	"fmt"

	"lansdowne360/models"

	"gorm.io/gorm"
)

// AdminUserRepository defines the interface for admin account access.
type AdminUserRepository interface {
	Create(user *models.AdminUser) error
	// GetByEmail returns nil, nil when no account matches.
	GetByEmail(email string) (*models.AdminUser, error)
}

// GormAdminUserRepo implements AdminUserRepository using GORM.
type GormAdminUserRepo struct {
	db *gorm.DB
}

// NewGormAdminUserRepo creates a new admin user repository.
func NewGormAdminUserRepo(db *gorm.DB) AdminUserRepository {
	return &GormAdminUserRepo{db: db}
}

func (repo *GormAdminUserRepo) Create(user *models.AdminUser) error {
	if err := repo.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}

func (repo *GormAdminUserRepo) GetByEmail(email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := repo.db.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admin user %s: %w", email, err)
	}
	return &user, nil
}
