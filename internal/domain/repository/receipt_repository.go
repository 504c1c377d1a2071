package repository

import (
	"time"

	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
)

// ReceiptFilter filter listing penerimaan.
type ReceiptFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    string
	Limit     int
	Offset    int
}

// ReceiptRepository port persistensi untuk event penerimaan (append-only).
type ReceiptRepository interface {
	Create(r *entity.Receipt) error
	GetByID(id string) (*entity.Receipt, error)
	List(filter ReceiptFilter) ([]*entity.Receipt, error)
	// ListApprovedWithExpiryUpTo penerimaan disetujui dengan tanggal
	// kadaluarsa <= end, bahan kandidat untuk peringatan dini.
	ListApprovedWithExpiryUpTo(end time.Time, limit int) ([]*entity.Receipt, error)
	// CountCreatedOn jumlah penerimaan yang dibuat pada tanggal tersebut,
	// untuk penomoran dokumen TRM-YYYYMMDD-NNN.
	CountCreatedOn(day time.Time) (int, error)
}
