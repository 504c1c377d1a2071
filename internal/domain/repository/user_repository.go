package repository

import "github.com/sppg-mbg/inventaris-api/internal/domain/entity"

// UserRepository port persistensi pengguna.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
}
