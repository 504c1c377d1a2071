package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status bahan. Bahan tidak pernah dihapus, hanya dinonaktifkan.
const (
	MaterialStatusActive   = "aktif"
	MaterialStatusInactive = "nonaktif"
)

// Material merepresentasikan bahan pangan yang dilacak di gudang (tabel bahan).
// Setelah direferensikan oleh transaksi hanya ambang stok dan keterangan yang
// boleh diubah.
type Material struct {
	ID            string
	Kode          string // kode unik, mis. BHN-001
	Nama          string
	KategoriID    string
	SatuanID      string
	StokMinimum   decimal.Decimal
	StokMaksimum  decimal.Decimal // 0 = tanpa batas atas
	BeratPerUnit  decimal.Decimal // kg per unit satuan
	KaloriPerUnit decimal.Decimal
	ProteinPerUnit decimal.Decimal
	Keterangan    string
	Status        string // aktif, nonaktif
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActive melaporkan apakah bahan masih boleh menerima transaksi.
func (m *Material) IsActive() bool {
	return m.Status == MaterialStatusActive
}
