package ledger_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sppg-mbg/inventaris-api/internal/application/dto"
	"github.com/sppg-mbg/inventaris-api/internal/application/ledger"
	"github.com/sppg-mbg/inventaris-api/internal/domain"
	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store in-memory: meniru semantik transaksi DB — mutasi terserialisasi
// seperti kunci baris, dan error mengembalikan stok ke keadaan semula.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	materials map[string]*entity.Material
	stocks    map[string]*entity.StockLevel
	receipts  []*entity.Receipt
	issues    []*entity.Issue

	failUpsert bool // simulasi PersistenceFailure saat menulis stok
}

func newMemStore() *memStore {
	return &memStore{
		materials: map[string]*entity.Material{},
		stocks:    map[string]*entity.StockLevel{},
	}
}

func (s *memStore) addMaterial(id string, min, max string, status string) {
	s.materials[id] = &entity.Material{
		ID:           id,
		Kode:         "BHN-" + id,
		Nama:         "Bahan " + id,
		SatuanID:     "kg",
		StokMinimum:  decimal.RequireFromString(min),
		StokMaksimum: decimal.RequireFromString(max),
		Status:       status,
	}
}

func (s *memStore) setStock(materialID, jumlah string) {
	s.stocks[materialID] = &entity.StockLevel{
		MaterialID: materialID,
		Jumlah:     decimal.RequireFromString(jumlah),
	}
}

func (s *memStore) balance(materialID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.stocks[materialID]; ok {
		return l.Jumlah
	}
	return decimal.Zero
}

// Run meniru TxRunner: satu mutasi in-flight pada satu waktu, snapshot
// stok dipulihkan jika fn gagal (rollback).
func (s *memStore) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	receiptRepo repository.ReceiptRepository,
	issueRepo repository.IssueRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]entity.StockLevel, len(s.stocks))
	for k, v := range s.stocks {
		snapshot[k] = *v
	}
	nReceipts, nIssues := len(s.receipts), len(s.issues)

	err := fn(&memStockRepo{s: s}, &memReceiptRepo{s: s}, &memIssueRepo{s: s})
	if err != nil {
		for k := range s.stocks {
			if old, ok := snapshot[k]; ok {
				v := old
				s.stocks[k] = &v
			} else {
				delete(s.stocks, k)
			}
		}
		s.receipts = s.receipts[:nReceipts]
		s.issues = s.issues[:nIssues]
		return err
	}
	return nil
}

type memMaterialRepo struct{ s *memStore }

func (r *memMaterialRepo) Create(*entity.Material) error { return nil }
func (r *memMaterialRepo) GetByID(id string) (*entity.Material, error) {
	m, ok := r.s.materials[id]
	if !ok {
		return nil, nil
	}
	return m, nil
}
func (r *memMaterialRepo) GetByKode(string) (*entity.Material, error) { return nil, nil }
func (r *memMaterialRepo) UpdateThresholds(string, decimal.Decimal, decimal.Decimal, string) error {
	return nil
}
func (r *memMaterialRepo) Deactivate(string) error { return nil }
func (r *memMaterialRepo) ListActive(repository.MaterialFilter) ([]*entity.Material, error) {
	return nil, nil
}

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) Get(materialID string) (*entity.StockLevel, error) {
	return r.GetForUpdate(materialID)
}
func (r *memStockRepo) GetForUpdate(materialID string) (*entity.StockLevel, error) {
	if l, ok := r.s.stocks[materialID]; ok {
		cp := *l
		return &cp, nil
	}
	return &entity.StockLevel{MaterialID: materialID, Jumlah: decimal.Zero}, nil
}
func (r *memStockRepo) Upsert(level *entity.StockLevel) error {
	if r.s.failUpsert {
		return errors.New("koneksi database terputus")
	}
	cp := *level
	r.s.stocks[level.MaterialID] = &cp
	return nil
}

type memReceiptRepo struct{ s *memStore }

func (r *memReceiptRepo) Create(rec *entity.Receipt) error {
	r.s.receipts = append(r.s.receipts, rec)
	return nil
}
func (r *memReceiptRepo) GetByID(string) (*entity.Receipt, error) { return nil, nil }
func (r *memReceiptRepo) List(repository.ReceiptFilter) ([]*entity.Receipt, error) {
	return r.s.receipts, nil
}
func (r *memReceiptRepo) ListApprovedWithExpiryUpTo(time.Time, int) ([]*entity.Receipt, error) {
	return nil, nil
}
func (r *memReceiptRepo) CountCreatedOn(day time.Time) (int, error) {
	n := 0
	for _, rec := range r.s.receipts {
		if rec.CreatedAt.Format("20060102") == day.Format("20060102") {
			n++
		}
	}
	return n, nil
}

type memIssueRepo struct{ s *memStore }

func (r *memIssueRepo) Create(i *entity.Issue) error {
	r.s.issues = append(r.s.issues, i)
	return nil
}
func (r *memIssueRepo) GetByID(string) (*entity.Issue, error) { return nil, nil }
func (r *memIssueRepo) List(repository.IssueFilter) ([]*entity.Issue, error) {
	return r.s.issues, nil
}
func (r *memIssueRepo) CountCreatedOn(day time.Time) (int, error) {
	n := 0
	for _, i := range r.s.issues {
		if i.CreatedAt.Format("20060102") == day.Format("20060102") {
			n++
		}
	}
	return n, nil
}

func newUseCase(s *memStore) *ledger.LedgerUseCase {
	return ledger.NewLedgerUseCase(s, &memMaterialRepo{s: s})
}

func qty(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// ApplyReceipt
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyReceipt_MenambahSaldoEksak(t *testing.T) {
	s := newMemStore()
	s.addMaterial("beras", "20", "0", entity.MaterialStatusActive)
	s.setStock("beras", "10.5")
	uc := newUseCase(s)

	res, err := uc.ApplyReceipt(context.Background(), "u1", dto.CreateReceiptRequest{
		BahanID: "beras", Jumlah: qty("0.1"), HargaSatuan: qty("12000"),
	})
	require.NoError(t, err)

	// 10.5 + 0.1 harus tepat 10.6, bukan aproksimasi float
	assert.True(t, res.SaldoBaru.Equal(qty("10.6")), "saldo baru %s", res.SaldoBaru)
	assert.True(t, s.balance("beras").Equal(qty("10.6")))
	assert.False(t, res.OverMaximum)

	require.Len(t, s.receipts, 1)
	rec := s.receipts[0]
	assert.Equal(t, entity.ReceiptStatusApproved, rec.Status)
	assert.True(t, rec.TotalHarga.Equal(qty("0.1").Mul(qty("12000"))))
}

// Dua penerimaan 10 dan 15 berurutan: saldo akhir = awal + 25, dan jumlah
// kuantitas di log penerimaan = 25.
func TestApplyReceipt_DuaPenerimaanBerurutan(t *testing.T) {
	s := newMemStore()
	s.addMaterial("telur", "5", "0", entity.MaterialStatusActive)
	s.setStock("telur", "3")
	uc := newUseCase(s)

	_, err := uc.ApplyReceipt(context.Background(), "u1", dto.CreateReceiptRequest{BahanID: "telur", Jumlah: qty("10")})
	require.NoError(t, err)
	_, err = uc.ApplyReceipt(context.Background(), "u1", dto.CreateReceiptRequest{BahanID: "telur", Jumlah: qty("15")})
	require.NoError(t, err)

	assert.True(t, s.balance("telur").Equal(qty("28")))

	sum := decimal.Zero
	for _, rec := range s.receipts {
		sum = sum.Add(rec.Jumlah)
	}
	assert.True(t, sum.Equal(qty("25")))
}

func TestApplyReceipt_PeringatanLewatiStokMaksimum(t *testing.T) {
	s := newMemStore()
	s.addMaterial("minyak", "10", "100", entity.MaterialStatusActive)
	s.setStock("minyak", "90")
	uc := newUseCase(s)

	res, err := uc.ApplyReceipt(context.Background(), "u1", dto.CreateReceiptRequest{BahanID: "minyak", Jumlah: qty("20")})
	require.NoError(t, err)

	// Advisory saja: penerimaan tetap sukses, saldo naik tanpa batas
	assert.True(t, res.OverMaximum)
	assert.True(t, res.SaldoBaru.Equal(qty("110")))
}

func TestApplyReceipt_NomorDokumenOtomatis(t *testing.T) {
	s := newMemStore()
	s.addMaterial("gula", "5", "0", entity.MaterialStatusActive)
	uc := newUseCase(s)

	res1, err := uc.ApplyReceipt(context.Background(), "u1", dto.CreateReceiptRequest{BahanID: "gula", Jumlah: qty("1")})
	require.NoError(t, err)
	res2, err := uc.ApplyReceipt(context.Background(), "u1", dto.CreateReceiptRequest{BahanID: "gula", Jumlah: qty("1")})
	require.NoError(t, err)

	prefix := "TRM-" + time.Now().Format("20060102") + "-"
	assert.Equal(t, prefix+"001", res1.NoPenerimaan)
	assert.Equal(t, prefix+"002", res2.NoPenerimaan)
}

func TestApplyReceipt_ValidasiSebelumStore(t *testing.T) {
	s := newMemStore()
	s.addMaterial("aktif", "5", "0", entity.MaterialStatusActive)
	s.addMaterial("mati", "5", "0", entity.MaterialStatusInactive)
	uc := newUseCase(s)

	cases := []struct {
		name    string
		in      dto.CreateReceiptRequest
		wantErr error
	}{
		{"jumlah nol", dto.CreateReceiptRequest{BahanID: "aktif", Jumlah: qty("0")}, domain.ErrInvalidQuantity},
		{"jumlah negatif", dto.CreateReceiptRequest{BahanID: "aktif", Jumlah: qty("-3")}, domain.ErrInvalidQuantity},
		{"harga negatif", dto.CreateReceiptRequest{BahanID: "aktif", Jumlah: qty("1"), HargaSatuan: qty("-1")}, domain.ErrInvalidInput},
		{"bahan tidak dikenal", dto.CreateReceiptRequest{BahanID: "ghaib", Jumlah: qty("1")}, domain.ErrNotFound},
		{"bahan nonaktif", dto.CreateReceiptRequest{BahanID: "mati", Jumlah: qty("1")}, domain.ErrMaterialInactive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.ApplyReceipt(context.Background(), "u1", tc.in)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
	// Tidak ada event maupun mutasi stok yang sempat tercatat
	assert.Empty(t, s.receipts)
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyIssue
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyIssue_MengurangiSaldoEksak(t *testing.T) {
	s := newMemStore()
	s.addMaterial("beras", "20", "0", entity.MaterialStatusActive)
	s.setStock("beras", "100")
	uc := newUseCase(s)

	res, err := uc.ApplyIssue(context.Background(), "u1", dto.CreateIssueRequest{
		BahanID: "beras", Jumlah: qty("85"), JenisTujuan: entity.DestSekolah, NamaTujuan: "SDN 1",
	})
	require.NoError(t, err)

	assert.True(t, res.SaldoBaru.Equal(qty("15")))
	assert.True(t, s.balance("beras").Equal(qty("15")))

	require.Len(t, s.issues, 1)
	assert.Equal(t, entity.IssueStatusDispatched, s.issues[0].Status)
}

// Pengeluaran 50 saat saldo 30 gagal dengan stok tidak cukup; saldo tetap 30.
func TestApplyIssue_StokTidakCukup(t *testing.T) {
	s := newMemStore()
	s.addMaterial("beras", "20", "0", entity.MaterialStatusActive)
	s.setStock("beras", "30")
	uc := newUseCase(s)

	_, err := uc.ApplyIssue(context.Background(), "u1", dto.CreateIssueRequest{BahanID: "beras", Jumlah: qty("50")})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, s.balance("beras").Equal(qty("30")), "saldo tidak boleh berubah")
	assert.Empty(t, s.issues, "event pengeluaran tidak boleh tercatat")
}

// Batas persis: mengeluarkan seluruh saldo diperbolehkan (perbandingan
// eksak, bukan float), saldo berakhir tepat nol.
func TestApplyIssue_SeluruhSaldo(t *testing.T) {
	s := newMemStore()
	s.addMaterial("beras", "20", "0", entity.MaterialStatusActive)
	s.setStock("beras", "30.7")
	uc := newUseCase(s)

	res, err := uc.ApplyIssue(context.Background(), "u1", dto.CreateIssueRequest{BahanID: "beras", Jumlah: qty("30.7")})
	require.NoError(t, err)
	assert.True(t, res.SaldoBaru.IsZero())

	// Retry setelah habis harus gagal
	_, err = uc.ApplyIssue(context.Background(), "u1", dto.CreateIssueRequest{BahanID: "beras", Jumlah: qty("0.001")})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestApplyIssue_TujuanDiluarKosakataJadiLainnya(t *testing.T) {
	s := newMemStore()
	s.addMaterial("beras", "20", "0", entity.MaterialStatusActive)
	s.setStock("beras", "10")
	uc := newUseCase(s)

	_, err := uc.ApplyIssue(context.Background(), "u1", dto.CreateIssueRequest{
		BahanID: "beras", Jumlah: qty("1"), JenisTujuan: "pabrik",
	})
	require.NoError(t, err)
	require.Len(t, s.issues, 1)
	assert.Equal(t, entity.DestLainnya, s.issues[0].JenisTujuan)
}

func TestApplyIssue_GagalPersistMengembalikanStok(t *testing.T) {
	s := newMemStore()
	s.addMaterial("beras", "20", "0", entity.MaterialStatusActive)
	s.setStock("beras", "50")
	s.failUpsert = true
	uc := newUseCase(s)

	_, err := uc.ApplyIssue(context.Background(), "u1", dto.CreateIssueRequest{BahanID: "beras", Jumlah: qty("10")})
	require.Error(t, err)
	// Kegagalan store bukan error aturan bisnis
	assert.NotErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, s.balance("beras").Equal(qty("50")), "rollback harus memulihkan saldo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Properti konkurensi: N pengeluaran paralel terhadap satu bahan dengan
// total melebihi saldo → paling banyak floor(saldo/q) yang sukses, sisanya
// ErrInsufficientStock, saldo akhir tidak pernah negatif.
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyIssue_Konkuren(t *testing.T) {
	s := newMemStore()
	s.addMaterial("beras", "0", "0", entity.MaterialStatusActive)
	s.setStock("beras", "100")
	uc := newUseCase(s)

	const n = 20
	req := qty("15") // 20×15 = 300, saldo hanya 100 → maksimal 6 sukses

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.ApplyIssue(context.Background(), "u1", dto.CreateIssueRequest{
				BahanID: "beras", Jumlah: req,
			})
		}(i)
	}
	wg.Wait()

	sukses, gagal := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			sukses++
		case errors.Is(err, domain.ErrInsufficientStock):
			gagal++
		default:
			t.Fatalf("error tak terduga: %v", err)
		}
	}

	assert.Equal(t, 6, sukses, "floor(100/15) = 6 pengeluaran yang boleh lolos")
	assert.Equal(t, n-6, gagal)

	sisa := s.balance("beras")
	assert.True(t, sisa.GreaterThanOrEqual(decimal.Zero), "saldo akhir %s tidak boleh negatif", sisa)
	assert.True(t, sisa.Equal(qty("10")), "100 - 6×15 = 10, dapat %s", sisa)
	assert.Len(t, s.issues, 6, "hanya pengeluaran sukses yang tercatat")
}
