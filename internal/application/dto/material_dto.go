package dto

import "github.com/shopspring/decimal"

// CreateMaterialRequest body POST /api/materials. Baris stok awal 0
// dibuat dalam transaksi yang sama.
type CreateMaterialRequest struct {
	Kode           string          `json:"kode"`
	Nama           string          `json:"nama"`
	KategoriID     string          `json:"kategori_id"`
	SatuanID       string          `json:"satuan_id"`
	StokMinimum    decimal.Decimal `json:"stok_minimum"`
	StokMaksimum   decimal.Decimal `json:"stok_maksimum"`
	BeratPerUnit   decimal.Decimal `json:"berat_per_unit"`
	KaloriPerUnit  decimal.Decimal `json:"kalori_per_unit"`
	ProteinPerUnit decimal.Decimal `json:"protein_per_unit"`
	Keterangan     string          `json:"keterangan"`
}

// UpdateThresholdsRequest body PUT /api/materials/:id/thresholds.
type UpdateThresholdsRequest struct {
	StokMinimum  decimal.Decimal `json:"stok_minimum"`
	StokMaksimum decimal.Decimal `json:"stok_maksimum"`
	Keterangan   string          `json:"keterangan"`
}

// MaterialDTO representasi bahan plus stok berjalan di listing.
type MaterialDTO struct {
	ID             string          `json:"id"`
	Kode           string          `json:"kode"`
	Nama           string          `json:"nama"`
	KategoriID     string          `json:"kategori_id"`
	SatuanID       string          `json:"satuan_id"`
	StokMinimum    decimal.Decimal `json:"stok_minimum"`
	StokMaksimum   decimal.Decimal `json:"stok_maksimum"`
	BeratPerUnit   decimal.Decimal `json:"berat_per_unit"`
	KaloriPerUnit  decimal.Decimal `json:"kalori_per_unit"`
	ProteinPerUnit decimal.Decimal `json:"protein_per_unit"`
	Keterangan     string          `json:"keterangan"`
	Status         string          `json:"status"`
	StokSekarang   decimal.Decimal `json:"stok_sekarang"`
}

// MaterialListDTO listing bahan plus statistik ringkas halaman master.
type MaterialListDTO struct {
	Items      []MaterialDTO   `json:"items"`
	StokKritis int             `json:"stok_kritis"`
	TotalStok  decimal.Decimal `json:"total_stok"`
}
