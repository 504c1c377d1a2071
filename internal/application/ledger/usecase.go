// Package ledger berisi satu-satunya jalur mutasi stok: penerimaan
// menambah, pengeluaran mengurangi dengan penjagaan kecukupan. Semua
// aritmetika memakai decimal eksak, tidak pernah float biner.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sppg-mbg/inventaris-api/internal/application/dto"
	"github.com/sppg-mbg/inventaris-api/internal/domain"
	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
)

// LedgerUseCase menerapkan penerimaan dan pengeluaran terhadap stok secara
// transaksional dengan kunci baris (SELECT FOR UPDATE): mutasi untuk bahan
// yang sama terserialisasi, bahan berbeda jalan paralel.
type LedgerUseCase struct {
	txRunner     TxRunner
	materialRepo repository.MaterialRepository
}

// NewLedgerUseCase membangun usecase ledger.
func NewLedgerUseCase(txRunner TxRunner, materialRepo repository.MaterialRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, materialRepo: materialRepo}
}

// validateMaterial menolak input sebelum menyentuh store: jumlah harus
// positif, bahan harus ada dan aktif.
func (uc *LedgerUseCase) validateMaterial(materialID string, jumlah decimal.Decimal) (*entity.Material, error) {
	if jumlah.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}
	if materialID == "" {
		return nil, domain.ErrInvalidInput
	}
	m, err := uc.materialRepo.GetByID(materialID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if !m.IsActive() {
		return nil, domain.ErrMaterialInactive
	}
	return m, nil
}

// ApplyReceipt mencatat penerimaan dan menaikkan stok dalam satu
// transaksi. Tidak ada jalur error untuk arah ini selain validasi input;
// melewati stok maksimum hanya menghasilkan flag advisory OverMaximum.
func (uc *LedgerUseCase) ApplyReceipt(ctx context.Context, userID string, in dto.CreateReceiptRequest) (*dto.ReceiptResultDTO, error) {
	if in.HargaSatuan.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	m, err := uc.validateMaterial(in.BahanID, in.Jumlah)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tanggal := in.Tanggal
	if tanggal.IsZero() {
		tanggal = now
	}
	kondisi := in.Kondisi
	if kondisi == "" {
		kondisi = entity.ReceiptConditionGood
	}

	var result dto.ReceiptResultDTO
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		receiptRepo repository.ReceiptRepository,
		_ repository.IssueRepository,
	) error {
		// Kunci baris stok agar tidak ada mutasi lain untuk bahan ini
		// yang melihat keadaan antara.
		level, err := stockRepo.GetForUpdate(m.ID)
		if err != nil {
			return err
		}
		level.Jumlah = level.Jumlah.Add(in.Jumlah)
		level.SatuanID = m.SatuanID
		level.LastUpdate = now
		if err := stockRepo.Upsert(level); err != nil {
			return err
		}

		noPenerimaan := in.NoPenerimaan
		if noPenerimaan == "" {
			noPenerimaan, err = nextReceiptNumber(receiptRepo, now)
			if err != nil {
				return err
			}
		}

		rec := &entity.Receipt{
			ID:                uuid.New().String(),
			NoPenerimaan:      noPenerimaan,
			Tanggal:           tanggal,
			MaterialID:        m.ID,
			Jumlah:            in.Jumlah,
			SatuanID:          m.SatuanID,
			HargaSatuan:       in.HargaSatuan,
			TotalHarga:        in.Jumlah.Mul(in.HargaSatuan),
			Supplier:          in.Supplier,
			NoBatch:           in.NoBatch,
			TanggalProduksi:   in.TanggalProduksi,
			TanggalKadaluarsa: in.TanggalKadaluarsa,
			Kondisi:           kondisi,
			Penerima:          in.Penerima,
			Catatan:           in.Catatan,
			Status:            entity.ReceiptStatusApproved,
			CreatedAt:         now,
			CreatedBy:         userID,
		}
		if err := receiptRepo.Create(rec); err != nil {
			return err
		}

		result = dto.ReceiptResultDTO{
			NoPenerimaan: noPenerimaan,
			SaldoBaru:    level.Jumlah,
			OverMaximum:  m.StokMaksimum.GreaterThan(decimal.Zero) && level.Jumlah.GreaterThan(m.StokMaksimum),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ApplyIssue mencatat pengeluaran dan menurunkan stok. Cek kecukupan dan
// decrement satu unit logis di dalam transaksi: permintaan melebihi saldo
// gagal dengan ErrInsufficientStock tanpa efek parsial dan aman di-retry
// setelah stok berubah.
func (uc *LedgerUseCase) ApplyIssue(ctx context.Context, userID string, in dto.CreateIssueRequest) (*dto.IssueResultDTO, error) {
	m, err := uc.validateMaterial(in.BahanID, in.Jumlah)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tanggal := in.Tanggal
	if tanggal.IsZero() {
		tanggal = now
	}

	var result dto.IssueResultDTO
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.ReceiptRepository,
		issueRepo repository.IssueRepository,
	) error {
		level, err := stockRepo.GetForUpdate(m.ID)
		if err != nil {
			return err
		}
		// Perbandingan decimal eksak; jumlah == saldo tepat masih lolos.
		if level.Jumlah.LessThan(in.Jumlah) {
			return domain.ErrInsufficientStock
		}
		level.Jumlah = level.Jumlah.Sub(in.Jumlah)
		level.SatuanID = m.SatuanID
		level.LastUpdate = now
		if err := stockRepo.Upsert(level); err != nil {
			return err
		}

		noPengeluaran := in.NoPengeluaran
		if noPengeluaran == "" {
			noPengeluaran, err = nextIssueNumber(issueRepo, now)
			if err != nil {
				return err
			}
		}

		iss := &entity.Issue{
			ID:            uuid.New().String(),
			NoPengeluaran: noPengeluaran,
			Tanggal:       tanggal,
			MaterialID:    m.ID,
			Jumlah:        in.Jumlah,
			SatuanID:      m.SatuanID,
			Tujuan:        in.Tujuan,
			JenisTujuan:   entity.NormalizeDestination(in.JenisTujuan),
			NamaTujuan:    in.NamaTujuan,
			AlamatTujuan:  in.AlamatTujuan,
			Penerima:      in.Penerima,
			Catatan:       in.Catatan,
			Status:        entity.IssueStatusDispatched,
			CreatedAt:     now,
			CreatedBy:     userID,
		}
		if err := issueRepo.Create(iss); err != nil {
			return err
		}

		result = dto.IssueResultDTO{NoPengeluaran: noPengeluaran, SaldoBaru: level.Jumlah}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// nextReceiptNumber TRM-YYYYMMDD-NNN berdasarkan jumlah dokumen hari itu.
func nextReceiptNumber(repo repository.ReceiptRepository, day time.Time) (string, error) {
	count, err := repo.CountCreatedOn(day)
	if err != nil {
		return "", fmt.Errorf("nomor penerimaan: %w", err)
	}
	return fmt.Sprintf("TRM-%s-%03d", day.Format("20060102"), count+1), nil
}

// nextIssueNumber KLR-YYYYMMDD-NNN.
func nextIssueNumber(repo repository.IssueRepository, day time.Time) (string, error) {
	count, err := repo.CountCreatedOn(day)
	if err != nil {
		return "", fmt.Errorf("nomor pengeluaran: %w", err)
	}
	return fmt.Sprintf("KLR-%s-%03d", day.Format("20060102"), count+1), nil
}
