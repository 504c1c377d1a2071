package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sppg-mbg/inventaris-api/internal/application/dto"
	"github.com/sppg-mbg/inventaris-api/internal/application/usecase"
	"github.com/sppg-mbg/inventaris-api/internal/domain"
	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
)

type memMaterialRepo struct {
	byID   map[string]*entity.Material
	byKode map[string]*entity.Material
}

func newMemMaterialRepo() *memMaterialRepo {
	return &memMaterialRepo{
		byID:   make(map[string]*entity.Material),
		byKode: make(map[string]*entity.Material),
	}
}

func (r *memMaterialRepo) Create(m *entity.Material) error {
	if _, ok := r.byKode[m.Kode]; ok {
		return domain.ErrDuplicate
	}
	cp := *m
	r.byID[m.ID] = &cp
	r.byKode[m.Kode] = &cp
	return nil
}

func (r *memMaterialRepo) GetByID(id string) (*entity.Material, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *memMaterialRepo) GetByKode(kode string) (*entity.Material, error) {
	m, ok := r.byKode[kode]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *memMaterialRepo) UpdateThresholds(id string, min, maks decimal.Decimal, ket string) error {
	m, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.StokMinimum, m.StokMaksimum, m.Keterangan = min, maks, ket
	return nil
}

func (r *memMaterialRepo) Deactivate(id string) error {
	m, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.Status = entity.MaterialStatusInactive
	return nil
}

func (r *memMaterialRepo) ListActive(_ repository.MaterialFilter) ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range r.byID {
		if m.IsActive() {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memStockReadRepo struct {
	levels map[string]decimal.Decimal
}

func (r *memStockReadRepo) Get(materialID string) (*entity.StockLevel, error) {
	return &entity.StockLevel{
		MaterialID: materialID,
		Jumlah:     r.levels[materialID],
		LastUpdate: time.Now(),
	}, nil
}

func (r *memStockReadRepo) GetForUpdate(materialID string) (*entity.StockLevel, error) {
	return r.Get(materialID)
}

func (r *memStockReadRepo) Upsert(level *entity.StockLevel) error {
	r.levels[level.MaterialID] = level.Jumlah
	return nil
}

// stubReportRepo hanya StockRows yang berarti; metode lain tidak dipanggil
// oleh MaterialUseCase.
type stubReportRepo struct {
	repository.ReportRepository
	rows []repository.StockRow
}

func (r *stubReportRepo) StockRows(_ context.Context, _ repository.StockReportFilter) ([]repository.StockRow, error) {
	return r.rows, nil
}

func validCreateReq() dto.CreateMaterialRequest {
	return dto.CreateMaterialRequest{
		Kode:        "BRS-001",
		Nama:        "Beras Premium",
		KategoriID:  "kat-1",
		SatuanID:    "sat-kg",
		StokMinimum: decimal.NewFromInt(20),
	}
}

func TestMaterialCreate_Sukses(t *testing.T) {
	repo := newMemMaterialRepo()
	uc := usecase.NewMaterialUseCase(repo, &memStockReadRepo{levels: map[string]decimal.Decimal{}}, &stubReportRepo{})

	out, err := uc.Create(validCreateReq())
	require.NoError(t, err)
	assert.Equal(t, entity.MaterialStatusActive, out.Status)
	assert.True(t, out.StokSekarang.IsZero(), "bahan baru harus mulai dengan stok 0")
}

func TestMaterialCreate_KodeDuplikat(t *testing.T) {
	repo := newMemMaterialRepo()
	uc := usecase.NewMaterialUseCase(repo, &memStockReadRepo{levels: map[string]decimal.Decimal{}}, &stubReportRepo{})

	_, err := uc.Create(validCreateReq())
	require.NoError(t, err)
	_, err = uc.Create(validCreateReq())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestMaterialCreate_ValidasiInput(t *testing.T) {
	uc := usecase.NewMaterialUseCase(newMemMaterialRepo(), &memStockReadRepo{levels: map[string]decimal.Decimal{}}, &stubReportRepo{})

	cases := []struct {
		name   string
		mutate func(*dto.CreateMaterialRequest)
	}{
		{"kode kosong", func(r *dto.CreateMaterialRequest) { r.Kode = " " }},
		{"nama kosong", func(r *dto.CreateMaterialRequest) { r.Nama = "" }},
		{"kategori kosong", func(r *dto.CreateMaterialRequest) { r.KategoriID = "" }},
		{"minimum negatif", func(r *dto.CreateMaterialRequest) { r.StokMinimum = decimal.NewFromInt(-1) }},
		{"maksimum di bawah minimum", func(r *dto.CreateMaterialRequest) {
			r.StokMinimum = decimal.NewFromInt(50)
			r.StokMaksimum = decimal.NewFromInt(10)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateReq()
			tc.mutate(&req)
			_, err := uc.Create(req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestMaterialList_StatistikKritis(t *testing.T) {
	repo := newMemMaterialRepo()
	require.NoError(t, repo.Create(&entity.Material{
		ID: "m-1", Kode: "BRS-001", Nama: "Beras",
		StokMinimum: decimal.NewFromInt(20), Status: entity.MaterialStatusActive,
	}))
	require.NoError(t, repo.Create(&entity.Material{
		ID: "m-2", Kode: "MNY-001", Nama: "Minyak",
		StokMinimum: decimal.NewFromInt(10), Status: entity.MaterialStatusActive,
	}))

	reportRepo := &stubReportRepo{rows: []repository.StockRow{
		{MaterialID: "m-1", StokSekarang: decimal.NewFromInt(15)}, // <= min: kritis
		{MaterialID: "m-2", StokSekarang: decimal.NewFromInt(100)},
	}}
	uc := usecase.NewMaterialUseCase(repo, &memStockReadRepo{levels: map[string]decimal.Decimal{}}, reportRepo)

	out, err := uc.List(context.Background(), repository.MaterialFilter{})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 1, out.StokKritis)
	assert.True(t, decimal.NewFromInt(115).Equal(out.TotalStok))
}

func TestMaterialDeactivate_HilangDariListing(t *testing.T) {
	repo := newMemMaterialRepo()
	require.NoError(t, repo.Create(&entity.Material{
		ID: "m-1", Kode: "BRS-001", Nama: "Beras", Status: entity.MaterialStatusActive,
	}))
	uc := usecase.NewMaterialUseCase(repo, &memStockReadRepo{levels: map[string]decimal.Decimal{}}, &stubReportRepo{})

	require.NoError(t, uc.Deactivate("m-1"))

	out, err := uc.List(context.Background(), repository.MaterialFilter{})
	require.NoError(t, err)
	assert.Empty(t, out.Items, "bahan nonaktif tidak boleh muncul di listing")

	// Riwayat tetap bisa diambil lewat GetByID.
	m, err := uc.GetByID("m-1")
	require.NoError(t, err)
	assert.Equal(t, entity.MaterialStatusInactive, m.Status)
}

func TestMaterialUpdateThresholds_TidakDitemukan(t *testing.T) {
	uc := usecase.NewMaterialUseCase(newMemMaterialRepo(), &memStockReadRepo{levels: map[string]decimal.Decimal{}}, &stubReportRepo{})

	err := uc.UpdateThresholds("tidak-ada", dto.UpdateThresholdsRequest{
		StokMinimum: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
