package repository

import "github.com/sppg-mbg/inventaris-api/internal/domain/entity"

// StockRepository port baca/tulis baris stok per bahan. Mutasi selalu
// lewat transaksi ledger agar cek kecukupan dan decrement atomik.
type StockRepository interface {
	Get(materialID string) (*entity.StockLevel, error)
	// GetForUpdate mengunci baris stok (SELECT FOR UPDATE) sehingga
	// mutasi untuk bahan yang sama terserialisasi.
	GetForUpdate(materialID string) (*entity.StockLevel, error)
	Upsert(level *entity.StockLevel) error
}
