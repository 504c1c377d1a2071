package repository

import (
	"time"

	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
)

// QualityFilter filter listing monitoring kualitas.
type QualityFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	MaterialID string
	Limit      int
	Offset     int
}

// QualityCheckRepository port persistensi untuk catatan monitoring
// kualitas. Read-only terhadap stok.
type QualityCheckRepository interface {
	Create(qc *entity.QualityCheck) error
	List(filter QualityFilter) ([]*entity.QualityCheck, error)
	ListRecent(limit int) ([]*entity.QualityCheck, error)
}
