package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier irisan API pgx yang dipakai repositori. Dipenuhi oleh
// *pgxpool.Pool maupun pgx.Tx, sehingga repositori yang sama bisa jalan
// langsung di pool atau terikat transaksi lewat TxRunner.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
