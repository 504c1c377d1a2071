package ledger

import (
	"fmt"
	"time"

	"github.com/sppg-mbg/inventaris-api/internal/application/dto"
	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
)

// QueryUseCase listing transaksi ledger. Read-only, di luar transaksi
// mutasi, memakai repositori yang terikat pool.
type QueryUseCase struct {
	receiptRepo repository.ReceiptRepository
	issueRepo   repository.IssueRepository
}

// NewQueryUseCase membangun usecase listing ledger.
func NewQueryUseCase(receiptRepo repository.ReceiptRepository, issueRepo repository.IssueRepository) *QueryUseCase {
	return &QueryUseCase{receiptRepo: receiptRepo, issueRepo: issueRepo}
}

// ListReceipts penerimaan, terbaru dulu.
func (uc *QueryUseCase) ListReceipts(filter repository.ReceiptFilter) ([]dto.ReceiptDTO, error) {
	records, err := uc.receiptRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("list penerimaan: %w", err)
	}
	out := make([]dto.ReceiptDTO, 0, len(records))
	for _, r := range records {
		out = append(out, receiptToDTO(r))
	}
	return out, nil
}

// GetReceipt satu penerimaan berdasarkan ID.
func (uc *QueryUseCase) GetReceipt(id string) (*dto.ReceiptDTO, error) {
	r, err := uc.receiptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	out := receiptToDTO(r)
	return &out, nil
}

// ListIssues pengeluaran, terbaru dulu.
func (uc *QueryUseCase) ListIssues(filter repository.IssueFilter) ([]dto.IssueDTO, error) {
	records, err := uc.issueRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("list pengeluaran: %w", err)
	}
	out := make([]dto.IssueDTO, 0, len(records))
	for _, i := range records {
		out = append(out, issueToDTO(i))
	}
	return out, nil
}

// GetIssue satu pengeluaran berdasarkan ID.
func (uc *QueryUseCase) GetIssue(id string) (*dto.IssueDTO, error) {
	i, err := uc.issueRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	out := issueToDTO(i)
	return &out, nil
}

// NextReceiptNumber nomor dokumen yang akan dipakai penerimaan
// berikutnya hari ini. Indikatif untuk form; nomor final tetap
// dihitung ulang di dalam transaksi.
func (uc *QueryUseCase) NextReceiptNumber() (string, error) {
	return nextReceiptNumber(uc.receiptRepo, time.Now())
}

// NextIssueNumber nomor dokumen pengeluaran berikutnya hari ini.
func (uc *QueryUseCase) NextIssueNumber() (string, error) {
	return nextIssueNumber(uc.issueRepo, time.Now())
}

func receiptToDTO(r *entity.Receipt) dto.ReceiptDTO {
	return dto.ReceiptDTO{
		ID:                r.ID,
		NoPenerimaan:      r.NoPenerimaan,
		Tanggal:           r.Tanggal,
		BahanID:           r.MaterialID,
		Jumlah:            r.Jumlah,
		HargaSatuan:       r.HargaSatuan,
		TotalHarga:        r.TotalHarga,
		Supplier:          r.Supplier,
		NoBatch:           r.NoBatch,
		TanggalKadaluarsa: r.TanggalKadaluarsa,
		Kondisi:           r.Kondisi,
		Status:            r.Status,
	}
}

func issueToDTO(i *entity.Issue) dto.IssueDTO {
	return dto.IssueDTO{
		ID:            i.ID,
		NoPengeluaran: i.NoPengeluaran,
		Tanggal:       i.Tanggal,
		BahanID:       i.MaterialID,
		Jumlah:        i.Jumlah,
		JenisTujuan:   i.JenisTujuan,
		NamaTujuan:    i.NamaTujuan,
		Penerima:      i.Penerima,
		Status:        i.Status,
	}
}
