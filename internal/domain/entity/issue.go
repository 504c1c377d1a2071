package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status pengeluaran. "dikirim" diset saat pembuatan; "diterima" disiapkan
// untuk konfirmasi penerima namun belum ada transisi di desain saat ini.
const (
	IssueStatusDraft      = "draft"
	IssueStatusDispatched = "dikirim"
	IssueStatusReceived   = "diterima"
)

// Jenis tujuan distribusi. Kosakata tetap; nilai di luar daftar
// dinormalisasi ke "lainnya".
const (
	DestSekolah    = "sekolah"
	DestPosyandu   = "posyandu"
	DestPuskesmas  = "puskesmas"
	DestRumahSakit = "rumah_sakit"
	DestLainnya    = "lainnya"
)

// DestinationTypes daftar jenis tujuan dalam urutan tampil tetap,
// dipakai laporan distribusi agar urutan kolom konsisten.
var DestinationTypes = []string{DestSekolah, DestPosyandu, DestPuskesmas, DestRumahSakit, DestLainnya}

// NormalizeDestination mengembalikan jenis tujuan yang dikenal, atau
// "lainnya" untuk nilai di luar kosakata.
func NormalizeDestination(jenis string) string {
	switch jenis {
	case DestSekolah, DestPosyandu, DestPuskesmas, DestRumahSakit, DestLainnya:
		return jenis
	}
	return DestLainnya
}

// Issue adalah catatan pengeluaran barang yang mengurangi stok (tabel
// pengeluaran). Append-only: tidak pernah diubah setelah dibuat.
type Issue struct {
	ID            string
	NoPengeluaran string // KLR-YYYYMMDD-NNN
	Tanggal       time.Time
	MaterialID    string
	Jumlah        decimal.Decimal
	SatuanID      string
	Tujuan        string
	JenisTujuan   string // sekolah, posyandu, puskesmas, rumah_sakit, lainnya
	NamaTujuan    string
	AlamatTujuan  string
	Penerima      string
	Catatan       string
	Status        string // draft, dikirim, diterima
	CreatedAt     time.Time
	CreatedBy     string
}
