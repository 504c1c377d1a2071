package repository

import (
	"time"

	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
)

// IssueFilter filter listing pengeluaran.
type IssueFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	Status      string
	JenisTujuan string
	Limit       int
	Offset      int
}

// IssueRepository port persistensi untuk event pengeluaran (append-only).
type IssueRepository interface {
	Create(i *entity.Issue) error
	GetByID(id string) (*entity.Issue, error)
	List(filter IssueFilter) ([]*entity.Issue, error)
	// CountCreatedOn untuk penomoran dokumen KLR-YYYYMMDD-NNN.
	CountCreatedOn(day time.Time) (int, error)
}
