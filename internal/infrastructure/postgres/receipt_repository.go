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

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementasi ReceiptRepository di atas PostgreSQL.
// Penerimaan append-only: hanya INSERT dan SELECT.
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository membangun adapter penerimaan.
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

const receiptColumns = `id, no_penerimaan, tanggal, bahan_id, jumlah, satuan_id, harga_satuan,
	total_harga, supplier, no_batch, tanggal_produksi, tanggal_kadaluarsa, kondisi, penerima,
	catatan, status, created_at, created_by`

// Create menyimpan event penerimaan.
func (r *ReceiptRepo) Create(rec *entity.Receipt) error {
	query := `
		INSERT INTO penerimaan (` + receiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.NoPenerimaan, rec.Tanggal, rec.MaterialID, rec.Jumlah, rec.SatuanID,
		rec.HargaSatuan, rec.TotalHarga, rec.Supplier, rec.NoBatch, rec.TanggalProduksi,
		rec.TanggalKadaluarsa, rec.Kondisi, rec.Penerima, rec.Catatan, rec.Status,
		rec.CreatedAt, rec.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert penerimaan: %w", err)
	}
	return nil
}

// GetByID mengambil satu penerimaan.
func (r *ReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM penerimaan WHERE id = $1`
	var rec entity.Receipt
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.NoPenerimaan, &rec.Tanggal, &rec.MaterialID, &rec.Jumlah, &rec.SatuanID,
		&rec.HargaSatuan, &rec.TotalHarga, &rec.Supplier, &rec.NoBatch, &rec.TanggalProduksi,
		&rec.TanggalKadaluarsa, &rec.Kondisi, &rec.Penerima, &rec.Catatan, &rec.Status,
		&rec.CreatedAt, &rec.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get penerimaan: %w", err)
	}
	return &rec, nil
}

// List penerimaan terbaru dulu, filter opsional rentang tanggal/status.
func (r *ReceiptRepo) List(filter repository.ReceiptFilter) ([]*entity.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM penerimaan WHERE 1=1`
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
	query += " ORDER BY tanggal DESC, created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return r.list(query, args...)
}

// ListApprovedWithExpiryUpTo kandidat peringatan kadaluarsa: penerimaan
// disetujui dengan tanggal_kadaluarsa terisi dan <= end.
func (r *ReceiptRepo) ListApprovedWithExpiryUpTo(end time.Time, limit int) ([]*entity.Receipt, error) {
	query := `
		SELECT ` + receiptColumns + ` FROM penerimaan
		WHERE status = $1 AND tanggal_kadaluarsa IS NOT NULL AND tanggal_kadaluarsa <= $2
		ORDER BY tanggal_kadaluarsa ASC
		LIMIT $3`
	return r.list(query, entity.ReceiptStatusApproved, end, limit)
}

// CountCreatedOn jumlah penerimaan yang dibuat pada tanggal tersebut,
// dasar penomoran TRM-YYYYMMDD-NNN.
func (r *ReceiptRepo) CountCreatedOn(day time.Time) (int, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM penerimaan WHERE created_at >= $1 AND created_at < $2`,
		start, end,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count penerimaan: %w", err)
	}
	return n, nil
}

func (r *ReceiptRepo) list(query string, args ...any) ([]*entity.Receipt, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list penerimaan: %w", err)
	}
	defer rows.Close()

	var out []*entity.Receipt
	for rows.Next() {
		var rec entity.Receipt
		if err := rows.Scan(
			&rec.ID, &rec.NoPenerimaan, &rec.Tanggal, &rec.MaterialID, &rec.Jumlah, &rec.SatuanID,
			&rec.HargaSatuan, &rec.TotalHarga, &rec.Supplier, &rec.NoBatch, &rec.TanggalProduksi,
			&rec.TanggalKadaluarsa, &rec.Kondisi, &rec.Penerima, &rec.Catatan, &rec.Status,
			&rec.CreatedAt, &rec.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan penerimaan: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}
