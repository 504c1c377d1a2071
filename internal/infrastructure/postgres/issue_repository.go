package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sppg-mbg/inventaris-api/internal/domain"
	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
)

var _ repository.IssueRepository = (*IssueRepo)(nil)

// IssueRepo implementasi IssueRepository di atas PostgreSQL.
// Pengeluaran append-only: hanya INSERT dan SELECT.
type IssueRepo struct {
	q Querier
}

// NewIssueRepository membangun adapter pengeluaran.
func NewIssueRepository(q Querier) *IssueRepo {
	return &IssueRepo{q: q}
}

const issueColumns = `id, no_pengeluaran, tanggal, bahan_id, jumlah, satuan_id, tujuan,
	jenis_tujuan, nama_tujuan, alamat_tujuan, penerima, catatan, status, created_at, created_by`

// Create menyimpan event pengeluaran.
func (r *IssueRepo) Create(iss *entity.Issue) error {
	query := `
		INSERT INTO pengeluaran (` + issueColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		iss.ID, iss.NoPengeluaran, iss.Tanggal, iss.MaterialID, iss.Jumlah, iss.SatuanID,
		iss.Tujuan, iss.JenisTujuan, iss.NamaTujuan, iss.AlamatTujuan, iss.Penerima,
		iss.Catatan, iss.Status, iss.CreatedAt, iss.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pengeluaran: %w", err)
	}
	return nil
}

// GetByID mengambil satu pengeluaran.
func (r *IssueRepo) GetByID(id string) (*entity.Issue, error) {
	query := `SELECT ` + issueColumns + ` FROM pengeluaran WHERE id = $1`
	var iss entity.Issue
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&iss.ID, &iss.NoPengeluaran, &iss.Tanggal, &iss.MaterialID, &iss.Jumlah, &iss.SatuanID,
		&iss.Tujuan, &iss.JenisTujuan, &iss.NamaTujuan, &iss.AlamatTujuan, &iss.Penerima,
		&iss.Catatan, &iss.Status, &iss.CreatedAt, &iss.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get pengeluaran: %w", err)
	}
	return &iss, nil
}

// List pengeluaran terbaru dulu, filter opsional tanggal/status/tujuan.
func (r *IssueRepo) List(filter repository.IssueFilter) ([]*entity.Issue, error) {
	query := `SELECT ` + issueColumns + ` FROM pengeluaran WHERE 1=1`
	var args []any
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND tanggal >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND tanggal <= $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.JenisTujuan != "" {
		args = append(args, filter.JenisTujuan)
		query += fmt.Sprintf(" AND jenis_tujuan = $%d", len(args))
	}
	query += " ORDER BY tanggal DESC, created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pengeluaran: %w", err)
	}
	defer rows.Close()

	var out []*entity.Issue
	for rows.Next() {
		var iss entity.Issue
		if err := rows.Scan(
			&iss.ID, &iss.NoPengeluaran, &iss.Tanggal, &iss.MaterialID, &iss.Jumlah, &iss.SatuanID,
			&iss.Tujuan, &iss.JenisTujuan, &iss.NamaTujuan, &iss.AlamatTujuan, &iss.Penerima,
			&iss.Catatan, &iss.Status, &iss.CreatedAt, &iss.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan pengeluaran: %w", err)
		}
		out = append(out, &iss)
	}
	return out, rows.Err()
}

// CountCreatedOn jumlah pengeluaran yang dibuat pada tanggal tersebut,
// dasar penomoran KLR-YYYYMMDD-NNN.
func (r *IssueRepo) CountCreatedOn(day time.Time) (int, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM pengeluaran WHERE created_at >= $1 AND created_at < $2`,
		start, end,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pengeluaran: %w", err)
	}
	return n, nil
}
