package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateQualityCheckRequest body POST /api/quality-checks.
type CreateQualityCheckRequest struct {
	BahanID          string           `json:"bahan_id"`
	TanggalCheck     time.Time        `json:"tanggal_check"`
	SuhuGudang       *decimal.Decimal `json:"suhu_gudang"`
	KelembabanGudang *decimal.Decimal `json:"kelembaban_gudang"`
	KondisiFisik     string           `json:"kondisi_fisik"`
	KondisiKemasan   string           `json:"kondisi_kemasan"`
	StatusKadaluarsa string           `json:"status_kadaluarsa"`
	Petugas          string           `json:"petugas"`
	Catatan          string           `json:"catatan"`
}

// QualityCheckDTO representasi catatan monitoring di listing/dashboard.
type QualityCheckDTO struct {
	ID               string           `json:"id"`
	BahanID          string           `json:"bahan_id"`
	TanggalCheck     time.Time        `json:"tanggal_check"`
	SuhuGudang       *decimal.Decimal `json:"suhu_gudang"`
	KelembabanGudang *decimal.Decimal `json:"kelembaban_gudang"`
	KondisiFisik     string           `json:"kondisi_fisik"`
	KondisiKemasan   string           `json:"kondisi_kemasan"`
	StatusKadaluarsa string           `json:"status_kadaluarsa"`
	Petugas          string           `json:"petugas"`
}
