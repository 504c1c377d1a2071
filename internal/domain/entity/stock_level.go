package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevel merepresentasikan stok berjalan satu bahan (tabel stok).
// Satu baris per bahan aktif; Jumlah tidak pernah negatif. Hanya
// ledger (ApplyReceipt/ApplyIssue) yang boleh mengubahnya.
type StockLevel struct {
	MaterialID string
	Jumlah     decimal.Decimal
	SatuanID   string
	LastUpdate time.Time
}
