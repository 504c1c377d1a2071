package dto

import "github.com/shopspring/decimal"

// DashboardDTO respons GET /api/dashboard: KPI utama plus widget
// peringatan dini dan distribusi.
type DashboardDTO struct {
	TotalBahan      int             `json:"total_bahan"`
	TotalStok       decimal.Decimal `json:"total_stok"`
	PenerimaanBulan decimal.Decimal `json:"penerimaan_bulan_ini"`
	PengeluaranBulan decimal.Decimal `json:"pengeluaran_bulan_ini"`

	BahanHampirHabis []LowStockDTO      `json:"bahan_hampir_habis"`
	MendekatiKadaluarsa []ExpiryWarningDTO `json:"mendekati_kadaluarsa"`
	StokPerKategori  []CategoryStockDTO `json:"stok_per_kategori"`
	DistribusiPerTujuan []DestinationSummaryDTO `json:"distribusi_per_tujuan"`
	MonitoringTerbaru []QualityCheckDTO `json:"monitoring_terbaru"`

	PeriodeLabel string `json:"periode_label"` // mis. "Agustus 2026"
}

// LowStockDTO widget bahan hampir habis.
type LowStockDTO struct {
	NamaBahan   string          `json:"nama_bahan"`
	Jumlah      decimal.Decimal `json:"jumlah"`
	StokMinimum decimal.Decimal `json:"stok_minimum"`
	NamaSatuan  string          `json:"nama_satuan"`
}

// ExpiryWarningDTO widget penerimaan mendekati kadaluarsa.
type ExpiryWarningDTO struct {
	NoPenerimaan       string          `json:"no_penerimaan"`
	BahanID            string          `json:"bahan_id"`
	Jumlah             decimal.Decimal `json:"jumlah"`
	TanggalKadaluarsa  string          `json:"tanggal_kadaluarsa"`
	HariMenujuKadaluarsa int           `json:"hari_menuju_kadaluarsa"`
}

// CategoryStockDTO total stok per kategori.
type CategoryStockDTO struct {
	NamaKategori string          `json:"nama_kategori"`
	TotalStok    decimal.Decimal `json:"total_stok"`
}
