// Package stock berisi logika domain murni untuk status stok dan
// peringatan kadaluarsa. Satu implementasi dipakai oleh dashboard,
// laporan dan kedua jalur export agar klasifikasi tidak pernah berbeda
// antar tampilan.
package stock

import "github.com/shopspring/decimal"

// Status klasifikasi stok terhadap ambang minimum bahan.
type Status string

const (
	StatusKritis Status = "kritis" // stok <= minimum
	StatusRendah Status = "rendah" // minimum < stok <= minimum*1.5
	StatusAman   Status = "aman"
)

var lowFactor = decimal.NewFromFloat(1.5)

// Classify mengklasifikasikan stok berjalan terhadap stok minimum.
// Batas inklusif: stok == minimum → kritis, stok == minimum*1.5 → rendah.
func Classify(current, minimum decimal.Decimal) Status {
	if current.LessThanOrEqual(minimum) {
		return StatusKritis
	}
	if current.LessThanOrEqual(minimum.Mul(lowFactor)) {
		return StatusRendah
	}
	return StatusAman
}

// Label teks tampilan untuk laporan dan export (huruf kapital).
func (s Status) Label() string {
	switch s {
	case StatusKritis:
		return "KRITIS"
	case StatusRendah:
		return "RENDAH"
	default:
		return "AMAN"
	}
}
