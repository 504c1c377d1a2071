package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sppg-mbg/inventaris-api/internal/domain"
	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
)

// ReferenceUseCase lookup dan pendaftaran referensi kategori/satuan.
type ReferenceUseCase struct {
	categoryRepo repository.CategoryRepository
	unitRepo     repository.UnitRepository
}

// NewReferenceUseCase membangun usecase referensi.
func NewReferenceUseCase(categoryRepo repository.CategoryRepository, unitRepo repository.UnitRepository) *ReferenceUseCase {
	return &ReferenceUseCase{categoryRepo: categoryRepo, unitRepo: unitRepo}
}

// ListCategories semua kategori bahan.
func (uc *ReferenceUseCase) ListCategories() ([]*entity.Category, error) {
	return uc.categoryRepo.List()
}

// ListUnits semua satuan.
func (uc *ReferenceUseCase) ListUnits() ([]*entity.Unit, error) {
	return uc.unitRepo.List()
}

// CreateCategory mendaftarkan kategori baru.
func (uc *ReferenceUseCase) CreateCategory(nama, keterangan string) (*entity.Category, error) {
	nama = strings.TrimSpace(nama)
	if nama == "" {
		return nil, fmt.Errorf("%w: nama kategori wajib diisi", domain.ErrInvalidInput)
	}
	c := &entity.Category{
		ID:         uuid.NewString(),
		Nama:       nama,
		Keterangan: strings.TrimSpace(keterangan),
		CreatedAt:  time.Now(),
	}
	if err := uc.categoryRepo.Create(c); err != nil {
		return nil, fmt.Errorf("create kategori: %w", err)
	}
	return c, nil
}

// CreateUnit mendaftarkan satuan baru.
func (uc *ReferenceUseCase) CreateUnit(nama string) (*entity.Unit, error) {
	nama = strings.TrimSpace(nama)
	if nama == "" {
		return nil, fmt.Errorf("%w: nama satuan wajib diisi", domain.ErrInvalidInput)
	}
	u := &entity.Unit{
		ID:        uuid.NewString(),
		Nama:      nama,
		CreatedAt: time.Now(),
	}
	if err := uc.unitRepo.Create(u); err != nil {
		return nil, fmt.Errorf("create satuan: %w", err)
	}
	return u, nil
}
