package postgres

import (
	"context"
	"fmt"

	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
)

var _ repository.QualityCheckRepository = (*QualityRepo)(nil)

// QualityRepo implementasi QualityCheckRepository di atas PostgreSQL.
type QualityRepo struct {
	q Querier
}

// NewQualityRepository membangun adapter monitoring kualitas.
func NewQualityRepository(q Querier) *QualityRepo {
	return &QualityRepo{q: q}
}

const qualityColumns = `id, bahan_id, tanggal_check, suhu_gudang, kelembaban_gudang,
	kondisi_fisik, kondisi_kemasan, status_kadaluarsa, petugas, catatan, created_at`

// Create menyimpan catatan monitoring.
func (r *QualityRepo) Create(qc *entity.QualityCheck) error {
	query := `
		INSERT INTO monitoring_kualitas (` + qualityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		qc.ID, qc.MaterialID, qc.TanggalCheck, qc.SuhuGudang, qc.KelembabanGudang,
		qc.KondisiFisik, qc.KondisiKemasan, qc.StatusKadaluarsa, qc.Petugas, qc.Catatan,
		qc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert monitoring: %w", err)
	}
	return nil
}

// List monitoring terbaru dulu, filter opsional tanggal/bahan.
func (r *QualityRepo) List(filter repository.QualityFilter) ([]*entity.QualityCheck, error) {
	query := `SELECT ` + qualityColumns + ` FROM monitoring_kualitas WHERE 1=1`
	var args []any
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND tanggal_check >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND tanggal_check <= $%d", len(args))
	}
	if filter.MaterialID != "" {
		args = append(args, filter.MaterialID)
		query += fmt.Sprintf(" AND bahan_id = $%d", len(args))
	}
	query += " ORDER BY tanggal_check DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return r.list(query, args...)
}

// ListRecent n catatan terakhir untuk widget dashboard.
func (r *QualityRepo) ListRecent(limit int) ([]*entity.QualityCheck, error) {
	query := `SELECT ` + qualityColumns + ` FROM monitoring_kualitas ORDER BY tanggal_check DESC LIMIT $1`
	return r.list(query, limit)
}

func (r *QualityRepo) list(query string, args ...any) ([]*entity.QualityCheck, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list monitoring: %w", err)
	}
	defer rows.Close()

	var out []*entity.QualityCheck
	for rows.Next() {
		var qc entity.QualityCheck
		if err := rows.Scan(
			&qc.ID, &qc.MaterialID, &qc.TanggalCheck, &qc.SuhuGudang, &qc.KelembabanGudang,
			&qc.KondisiFisik, &qc.KondisiKemasan, &qc.StatusKadaluarsa, &qc.Petugas, &qc.Catatan,
			&qc.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan monitoring: %w", err)
		}
		out = append(out, &qc)
	}
	return out, rows.Err()
}
