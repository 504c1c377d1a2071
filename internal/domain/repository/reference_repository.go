package repository

import "github.com/sppg-mbg/inventaris-api/internal/domain/entity"

// CategoryRepository port lookup kategori bahan.
type CategoryRepository interface {
	Create(c *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
}

// UnitRepository port lookup satuan.
type UnitRepository interface {
	Create(u *entity.Unit) error
	GetByID(id string) (*entity.Unit, error)
	List() ([]*entity.Unit, error)
}
