package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Hasil inspeksi kualitas.
const (
	PhysicalGood    = "baik"
	PhysicalDamaged = "rusak"

	PackagingIntact  = "utuh"
	PackagingDamaged = "rusak"

	ExpiryStatusSafe    = "aman"
	ExpiryStatusWarning = "mendekati"
	ExpiryStatusExpired = "kadaluarsa"
)

// QualityCheck adalah catatan monitoring kualitas gudang (tabel
// monitoring_kualitas). Hanya input analitik; tidak pernah mengubah stok.
type QualityCheck struct {
	ID               string
	MaterialID       string
	TanggalCheck     time.Time
	SuhuGudang       *decimal.Decimal // °C, nil jika tidak diukur
	KelembabanGudang *decimal.Decimal // %, nil jika tidak diukur
	KondisiFisik     string
	KondisiKemasan   string
	StatusKadaluarsa string
	Petugas          string
	Catatan          string
	CreatedAt        time.Time
}
