package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sppg-mbg/inventaris-api/internal/domain"
	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementasi MaterialRepository di atas PostgreSQL.
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository membangun adapter persistensi bahan.
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

const materialColumns = `id, kode, nama, kategori_id, satuan_id, stok_minimum, stok_maksimum,
	berat_per_unit, kalori_per_unit, protein_per_unit, keterangan, status, created_at, updated_at`

// Create menyimpan bahan baru sekaligus baris stok 0 dalam satu statement
// (CTE), sehingga keduanya atomik juga tanpa transaksi eksplisit.
func (r *MaterialRepo) Create(m *entity.Material) error {
	query := `
		WITH b AS (
			INSERT INTO bahan (` + materialColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING id, satuan_id
		)
		INSERT INTO stok (bahan_id, jumlah, satuan_id, last_update)
		SELECT id, 0, satuan_id, now() FROM b`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Kode, m.Nama, m.KategoriID, m.SatuanID, m.StokMinimum, m.StokMaksimum,
		m.BeratPerUnit, m.KaloriPerUnit, m.ProteinPerUnit, m.Keterangan, m.Status,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bahan: %w", err)
	}
	return nil
}

// GetByID mengambil bahan berdasarkan ID.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM bahan WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByKode mengambil bahan berdasarkan kode.
func (r *MaterialRepo) GetByKode(kode string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM bahan WHERE kode = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, kode))
}

func (r *MaterialRepo) scanOne(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	err := row.Scan(
		&m.ID, &m.Kode, &m.Nama, &m.KategoriID, &m.SatuanID, &m.StokMinimum, &m.StokMaksimum,
		&m.BeratPerUnit, &m.KaloriPerUnit, &m.ProteinPerUnit, &m.Keterangan, &m.Status,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get bahan: %w", err)
	}
	return &m, nil
}

// UpdateThresholds mengubah ambang stok dan keterangan saja.
func (r *MaterialRepo) UpdateThresholds(id string, stokMinimum, stokMaksimum decimal.Decimal, keterangan string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE bahan SET stok_minimum = $2, stok_maksimum = $3, keterangan = $4, updated_at = now() WHERE id = $1`,
		id, stokMinimum, stokMaksimum, keterangan,
	)
	if err != nil {
		return fmt.Errorf("update ambang bahan: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate soft delete: status jadi nonaktif, riwayat transaksi utuh.
func (r *MaterialRepo) Deactivate(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE bahan SET status = $2, updated_at = now() WHERE id = $1`,
		id, entity.MaterialStatusInactive,
	)
	if err != nil {
		return fmt.Errorf("nonaktifkan bahan: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListActive bahan aktif, filter opsional kata kunci dan kategori.
func (r *MaterialRepo) ListActive(filter repository.MaterialFilter) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM bahan WHERE status = $1`
	args := []any{entity.MaterialStatusActive}
	if filter.Keyword != "" {
		args = append(args, "%"+filter.Keyword+"%")
		query += fmt.Sprintf(" AND (kode ILIKE $%d OR nama ILIKE $%d)", len(args), len(args))
	}
	if filter.KategoriID != "" {
		args = append(args, filter.KategoriID)
		query += fmt.Sprintf(" AND kategori_id = $%d", len(args))
	}
	query += " ORDER BY nama ASC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bahan: %w", err)
	}
	defer rows.Close()

	var out []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(
			&m.ID, &m.Kode, &m.Nama, &m.KategoriID, &m.SatuanID, &m.StokMinimum, &m.StokMaksimum,
			&m.BeratPerUnit, &m.KaloriPerUnit, &m.ProteinPerUnit, &m.Keterangan, &m.Status,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan bahan: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
