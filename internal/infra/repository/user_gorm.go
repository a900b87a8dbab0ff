package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainauth "github.com/navaja-app/barbershop-api/internal/domain/auth"
	"github.com/navaja-app/barbershop-api/internal/httperr"
	"github.com/navaja-app/barbershop-api/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("user_not_found", "Usuario no encontrado.")
		}
		return nil, httperr.ErrTransient("storage_error", "Error de almacenamiento.")
	}
	return &user, nil
}

func (r *UserGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("user_not_found", "Usuario no encontrado.")
		}
		return nil, httperr.ErrTransient("storage_error", "Error de almacenamiento.")
	}
	return &user, nil
}

func (r *UserGormRepository) Create(
	ctx context.Context,
	user *models.User,
) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return httperr.ErrTransient("storage_error", "Error de almacenamiento.")
	}
	return nil
}

func (r *UserGormRepository) EmailExists(
	ctx context.Context,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, httperr.ErrTransient("storage_error", "Error de almacenamiento.")
	}
	return count > 0, nil
}

// Compile-time check
var _ domainauth.UserRepository = (*UserGormRepository)(nil)
