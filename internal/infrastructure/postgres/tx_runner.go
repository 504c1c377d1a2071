package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sppg-mbg/inventaris-api/internal/application/ledger"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner menjalankan callback ledger dalam satu transaksi PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner membangun runner di atas pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run memulai transaksi, menjalankan fn dengan repositori yang terikat
// tx, lalu Commit atau Rollback. Kunci baris yang diambil GetForUpdate
// lepas bersama transaksi, sehingga per bahan hanya ada satu mutasi
// berjalan pada satu waktu.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	receiptRepo repository.ReceiptRepository,
	issueRepo repository.IssueRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stockRepo := NewStockRepository(tx)
	receiptRepo := NewReceiptRepository(tx)
	issueRepo := NewIssueRepository(tx)

	if err := fn(stockRepo, receiptRepo, issueRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
