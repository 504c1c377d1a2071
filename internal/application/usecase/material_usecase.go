// Package usecase berisi usecase CRUD master data: bahan, monitoring
// kualitas, dan referensi kategori/satuan.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sppg-mbg/inventaris-api/internal/application/dto"
	"github.com/sppg-mbg/inventaris-api/internal/domain"
	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
	"github.com/sppg-mbg/inventaris-api/internal/domain/stock"
)

// MaterialUseCase CRUD bahan. Penciptaan bahan sekaligus menanam baris
// stok 0 (dikerjakan repositori dalam satu transaksi).
type MaterialUseCase struct {
	materialRepo repository.MaterialRepository
	stockRepo    repository.StockRepository
	reportRepo   repository.ReportRepository
}

// NewMaterialUseCase membangun usecase bahan.
func NewMaterialUseCase(
	materialRepo repository.MaterialRepository,
	stockRepo repository.StockRepository,
	reportRepo repository.ReportRepository,
) *MaterialUseCase {
	return &MaterialUseCase{
		materialRepo: materialRepo,
		stockRepo:    stockRepo,
		reportRepo:   reportRepo,
	}
}

// Create mendaftarkan bahan baru berstatus aktif dengan stok awal 0.
func (uc *MaterialUseCase) Create(req dto.CreateMaterialRequest) (*dto.MaterialDTO, error) {
	kode := strings.TrimSpace(req.Kode)
	nama := strings.TrimSpace(req.Nama)
	if kode == "" || nama == "" || req.KategoriID == "" || req.SatuanID == "" {
		return nil, fmt.Errorf("%w: kode, nama, kategori, dan satuan wajib diisi", domain.ErrInvalidInput)
	}
	if req.StokMinimum.IsNegative() || req.StokMaksimum.IsNegative() {
		return nil, fmt.Errorf("%w: ambang stok tidak boleh negatif", domain.ErrInvalidInput)
	}
	if req.StokMaksimum.IsPositive() && req.StokMaksimum.LessThan(req.StokMinimum) {
		return nil, fmt.Errorf("%w: stok maksimum lebih kecil dari minimum", domain.ErrInvalidInput)
	}

	if existing, err := uc.materialRepo.GetByKode(kode); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: kode bahan %s sudah terdaftar", domain.ErrDuplicate, kode)
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("create bahan: %w", err)
	}

	now := time.Now()
	m := &entity.Material{
		ID:             uuid.NewString(),
		Kode:           kode,
		Nama:           nama,
		KategoriID:     req.KategoriID,
		SatuanID:       req.SatuanID,
		StokMinimum:    req.StokMinimum,
		StokMaksimum:   req.StokMaksimum,
		BeratPerUnit:   req.BeratPerUnit,
		KaloriPerUnit:  req.KaloriPerUnit,
		ProteinPerUnit: req.ProteinPerUnit,
		Keterangan:     strings.TrimSpace(req.Keterangan),
		Status:         entity.MaterialStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.materialRepo.Create(m); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("%w: kode bahan %s sudah terdaftar", domain.ErrDuplicate, kode)
		}
		return nil, fmt.Errorf("create bahan: %w", err)
	}
	out := materialToDTO(m, decimal.Zero)
	return &out, nil
}

// GetByID bahan plus stok berjalannya.
func (uc *MaterialUseCase) GetByID(id string) (*dto.MaterialDTO, error) {
	m, err := uc.materialRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	level, err := uc.stockRepo.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get bahan %s: stok: %w", id, err)
	}
	jumlah := decimal.Zero
	if level != nil {
		jumlah = level.Jumlah
	}
	out := materialToDTO(m, jumlah)
	return &out, nil
}

// List bahan aktif plus statistik ringkas (jumlah kritis, total stok).
func (uc *MaterialUseCase) List(ctx context.Context, filter repository.MaterialFilter) (*dto.MaterialListDTO, error) {
	materials, err := uc.materialRepo.ListActive(filter)
	if err != nil {
		return nil, fmt.Errorf("list bahan: %w", err)
	}
	rows, err := uc.reportRepo.StockRows(ctx, repository.StockReportFilter{})
	if err != nil {
		return nil, fmt.Errorf("list bahan: stok: %w", err)
	}
	levels := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		levels[r.MaterialID] = r.StokSekarang
	}

	out := &dto.MaterialListDTO{Items: []dto.MaterialDTO{}, TotalStok: decimal.Zero}
	for _, m := range materials {
		jumlah := levels[m.ID]
		out.Items = append(out.Items, materialToDTO(m, jumlah))
		out.TotalStok = out.TotalStok.Add(jumlah)
		if stock.Classify(jumlah, m.StokMinimum) == stock.StatusKritis {
			out.StokKritis++
		}
	}
	return out, nil
}

// UpdateThresholds mengubah ambang stok dan keterangan. Field lain
// dikunci supaya transaksi historis tetap bermakna.
func (uc *MaterialUseCase) UpdateThresholds(id string, req dto.UpdateThresholdsRequest) error {
	if req.StokMinimum.IsNegative() || req.StokMaksimum.IsNegative() {
		return fmt.Errorf("%w: ambang stok tidak boleh negatif", domain.ErrInvalidInput)
	}
	if req.StokMaksimum.IsPositive() && req.StokMaksimum.LessThan(req.StokMinimum) {
		return fmt.Errorf("%w: stok maksimum lebih kecil dari minimum", domain.ErrInvalidInput)
	}
	if _, err := uc.materialRepo.GetByID(id); err != nil {
		return err
	}
	return uc.materialRepo.UpdateThresholds(id, req.StokMinimum, req.StokMaksimum, strings.TrimSpace(req.Keterangan))
}

// Deactivate soft delete: bahan hilang dari listing dan menolak transaksi
// baru, riwayatnya tetap utuh.
func (uc *MaterialUseCase) Deactivate(id string) error {
	if _, err := uc.materialRepo.GetByID(id); err != nil {
		return err
	}
	return uc.materialRepo.Deactivate(id)
}

func materialToDTO(m *entity.Material, stokSekarang decimal.Decimal) dto.MaterialDTO {
	return dto.MaterialDTO{
		ID:             m.ID,
		Kode:           m.Kode,
		Nama:           m.Nama,
		KategoriID:     m.KategoriID,
		SatuanID:       m.SatuanID,
		StokMinimum:    m.StokMinimum,
		StokMaksimum:   m.StokMaksimum,
		BeratPerUnit:   m.BeratPerUnit,
		KaloriPerUnit:  m.KaloriPerUnit,
		ProteinPerUnit: m.ProteinPerUnit,
		Keterangan:     m.Keterangan,
		Status:         m.Status,
		StokSekarang:   stokSekarang,
	}
}
