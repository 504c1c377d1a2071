package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sppg-mbg/inventaris-api/internal/domain"
	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)
var _ repository.UnitRepository = (*UnitRepo)(nil)

// CategoryRepo implementasi CategoryRepository di atas PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository membangun adapter kategori bahan.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) Create(c *entity.Category) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO kategori_bahan (id, nama, keterangan, created_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Nama, c.Keterangan, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert kategori: %w", err)
	}
	return nil
}

func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nama, keterangan, created_at FROM kategori_bahan WHERE id = $1`, id,
	).Scan(&c.ID, &c.Nama, &c.Keterangan, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get kategori: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepo) List() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nama, keterangan, created_at FROM kategori_bahan ORDER BY nama ASC`)
	if err != nil {
		return nil, fmt.Errorf("list kategori: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Nama, &c.Keterangan, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan kategori: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// UnitRepo implementasi UnitRepository di atas PostgreSQL.
type UnitRepo struct {
	q Querier
}

// NewUnitRepository membangun adapter satuan.
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

func (r *UnitRepo) Create(u *entity.Unit) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO satuan (id, nama, created_at) VALUES ($1, $2, $3)`,
		u.ID, u.Nama, u.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert satuan: %w", err)
	}
	return nil
}

func (r *UnitRepo) GetByID(id string) (*entity.Unit, error) {
	var u entity.Unit
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nama, created_at FROM satuan WHERE id = $1`, id,
	).Scan(&u.ID, &u.Nama, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get satuan: %w", err)
	}
	return &u, nil
}

func (r *UnitRepo) List() ([]*entity.Unit, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nama, created_at FROM satuan ORDER BY nama ASC`)
	if err != nil {
		return nil, fmt.Errorf("list satuan: %w", err)
	}
	defer rows.Close()

	var out []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.Nama, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan satuan: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}
