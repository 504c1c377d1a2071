package repository

import (
	"github.com/shopspring/decimal"
	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
)

// MaterialFilter filter listing bahan.
type MaterialFilter struct {
	Keyword    string // cocok di kode atau nama
	KategoriID string
	Limit      int
	Offset     int
}

// MaterialRepository port persistensi untuk Material.
type MaterialRepository interface {
	Create(m *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	GetByKode(kode string) (*entity.Material, error)
	// UpdateThresholds hanya ambang dan keterangan yang boleh berubah
	// setelah bahan direferensikan transaksi.
	UpdateThresholds(id string, stokMinimum, stokMaksimum decimal.Decimal, keterangan string) error
	Deactivate(id string) error
	ListActive(filter MaterialFilter) ([]*entity.Material, error)
}
