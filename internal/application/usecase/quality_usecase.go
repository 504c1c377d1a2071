package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sppg-mbg/inventaris-api/internal/application/dto"
	"github.com/sppg-mbg/inventaris-api/internal/domain"
	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
)

// QualityUseCase mencatat dan menampilkan monitoring kualitas gudang.
// Catatan monitoring tidak pernah menyentuh baris stok.
type QualityUseCase struct {
	qualityRepo  repository.QualityCheckRepository
	materialRepo repository.MaterialRepository
}

// NewQualityUseCase membangun usecase monitoring kualitas.
func NewQualityUseCase(qualityRepo repository.QualityCheckRepository, materialRepo repository.MaterialRepository) *QualityUseCase {
	return &QualityUseCase{qualityRepo: qualityRepo, materialRepo: materialRepo}
}

var validPhysical = map[string]bool{entity.PhysicalGood: true, entity.PhysicalDamaged: true}
var validPackaging = map[string]bool{entity.PackagingIntact: true, entity.PackagingDamaged: true}
var validExpiryStatus = map[string]bool{
	entity.ExpiryStatusSafe:    true,
	entity.ExpiryStatusWarning: true,
	entity.ExpiryStatusExpired: true,
}

// Create mencatat satu inspeksi. Bahan harus terdaftar, boleh nonaktif:
// bahan lama di gudang tetap layak diinspeksi.
func (uc *QualityUseCase) Create(req dto.CreateQualityCheckRequest) (*dto.QualityCheckDTO, error) {
	if req.BahanID == "" || strings.TrimSpace(req.Petugas) == "" {
		return nil, fmt.Errorf("%w: bahan dan petugas wajib diisi", domain.ErrInvalidInput)
	}
	if !validPhysical[req.KondisiFisik] {
		return nil, fmt.Errorf("%w: kondisi fisik tidak dikenal: %s", domain.ErrInvalidInput, req.KondisiFisik)
	}
	if !validPackaging[req.KondisiKemasan] {
		return nil, fmt.Errorf("%w: kondisi kemasan tidak dikenal: %s", domain.ErrInvalidInput, req.KondisiKemasan)
	}
	if !validExpiryStatus[req.StatusKadaluarsa] {
		return nil, fmt.Errorf("%w: status kadaluarsa tidak dikenal: %s", domain.ErrInvalidInput, req.StatusKadaluarsa)
	}
	if _, err := uc.materialRepo.GetByID(req.BahanID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: bahan %s", domain.ErrNotFound, req.BahanID)
		}
		return nil, fmt.Errorf("create monitoring: %w", err)
	}

	tanggal := req.TanggalCheck
	if tanggal.IsZero() {
		tanggal = time.Now()
	}
	qc := &entity.QualityCheck{
		ID:               uuid.NewString(),
		MaterialID:       req.BahanID,
		TanggalCheck:     tanggal,
		SuhuGudang:       req.SuhuGudang,
		KelembabanGudang: req.KelembabanGudang,
		KondisiFisik:     req.KondisiFisik,
		KondisiKemasan:   req.KondisiKemasan,
		StatusKadaluarsa: req.StatusKadaluarsa,
		Petugas:          strings.TrimSpace(req.Petugas),
		Catatan:          strings.TrimSpace(req.Catatan),
		CreatedAt:        time.Now(),
	}
	if err := uc.qualityRepo.Create(qc); err != nil {
		return nil, fmt.Errorf("create monitoring: %w", err)
	}
	out := qualityToDTO(qc)
	return &out, nil
}

// List monitoring kualitas, terbaru dulu.
func (uc *QualityUseCase) List(filter repository.QualityFilter) ([]dto.QualityCheckDTO, error) {
	records, err := uc.qualityRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("list monitoring: %w", err)
	}
	out := make([]dto.QualityCheckDTO, 0, len(records))
	for _, qc := range records {
		out = append(out, qualityToDTO(qc))
	}
	return out, nil
}

func qualityToDTO(qc *entity.QualityCheck) dto.QualityCheckDTO {
	return dto.QualityCheckDTO{
		ID:               qc.ID,
		BahanID:          qc.MaterialID,
		TanggalCheck:     qc.TanggalCheck,
		SuhuGudang:       qc.SuhuGudang,
		KelembabanGudang: qc.KelembabanGudang,
		KondisiFisik:     qc.KondisiFisik,
		KondisiKemasan:   qc.KondisiKemasan,
		StatusKadaluarsa: qc.StatusKadaluarsa,
		Petugas:          qc.Petugas,
	}
}
