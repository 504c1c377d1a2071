package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementasi StockRepository di atas PostgreSQL.
type StockRepo struct {
	q Querier
}

// NewStockRepository membangun adapter baris stok.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get membaca baris stok tanpa kunci. Bahan tanpa baris stok dilaporkan
// sebagai level 0 supaya pemanggil tidak perlu membedakan keduanya.
func (r *StockRepo) Get(materialID string) (*entity.StockLevel, error) {
	return r.get(materialID, false)
}

// GetForUpdate membaca baris stok dengan SELECT FOR UPDATE. Mutasi bahan
// yang sama di transaksi lain menunggu sampai transaksi ini selesai.
func (r *StockRepo) GetForUpdate(materialID string) (*entity.StockLevel, error) {
	return r.get(materialID, true)
}

func (r *StockRepo) get(materialID string, forUpdate bool) (*entity.StockLevel, error) {
	query := `SELECT bahan_id, jumlah, satuan_id, last_update FROM stok WHERE bahan_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var level entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, materialID).Scan(
		&level.MaterialID, &level.Jumlah, &level.SatuanID, &level.LastUpdate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLevel{
				MaterialID: materialID,
				Jumlah:     decimal.Zero,
				LastUpdate: time.Now(),
			}, nil
		}
		return nil, fmt.Errorf("get stok: %w", err)
	}
	return &level, nil
}

// Upsert menulis saldo baru baris stok.
func (r *StockRepo) Upsert(level *entity.StockLevel) error {
	query := `
		INSERT INTO stok (bahan_id, jumlah, satuan_id, last_update)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (bahan_id) DO UPDATE SET jumlah = $2, satuan_id = $3, last_update = $4`
	_, err := r.q.Exec(context.Background(), query,
		level.MaterialID, level.Jumlah, level.SatuanID, level.LastUpdate,
	)
	if err != nil {
		return fmt.Errorf("upsert stok: %w", err)
	}
	return nil
}
