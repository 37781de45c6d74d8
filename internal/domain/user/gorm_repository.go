// internal/domain/user/gorm_repository.go
package user

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// GormRepository is the postgres-backed Repository used in production
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a gorm-backed user repository
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// FindByEmail returns the user with the exact email, or ErrUserNotFound
func (r *GormRepository) FindByEmail(email string) (*User, error) {
	var u User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}
	return &u, nil
}

// FindByID returns the user with the given id, or ErrUserNotFound
func (r *GormRepository) FindByID(id string) (*User, error) {
	var u User
	if err := r.db.Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user by id: %w", err)
	}
	return &u, nil
}

// Insert stores a new user record
func (r *GormRepository) Insert(u *User) error {
	if err := r.db.Create(u).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
