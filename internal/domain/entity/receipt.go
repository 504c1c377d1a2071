package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status penerimaan. Diset saat pembuatan dan tidak ditransisikan lagi;
// alur approval penuh belum ada di desain saat ini.
const (
	ReceiptStatusDraft    = "draft"
	ReceiptStatusApproved = "disetujui"
)

// Kondisi bahan saat diterima.
const (
	ReceiptConditionGood    = "baik"
	ReceiptConditionDamaged = "rusak"
)

// Receipt adalah catatan penerimaan barang yang menambah stok (tabel
// penerimaan). Append-only: tidak pernah diubah setelah dibuat.
type Receipt struct {
	ID               string
	NoPenerimaan     string // TRM-YYYYMMDD-NNN
	Tanggal          time.Time
	MaterialID       string
	Jumlah           decimal.Decimal
	SatuanID         string
	HargaSatuan      decimal.Decimal
	TotalHarga       decimal.Decimal // Jumlah × HargaSatuan
	Supplier         string
	NoBatch          string
	TanggalProduksi  *time.Time
	TanggalKadaluarsa *time.Time
	Kondisi          string
	Penerima         string
	Catatan          string
	Status           string // draft, disetujui
	CreatedAt        time.Time
	CreatedBy        string
}
