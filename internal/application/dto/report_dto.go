package dto

import "github.com/shopspring/decimal"

// StockReportRowDTO satu baris laporan stok dengan klasifikasi.
type StockReportRowDTO struct {
	BahanID      string          `json:"bahan_id"`
	Kode         string          `json:"kode"`
	Nama         string          `json:"nama"`
	NamaKategori string          `json:"nama_kategori"`
	NamaSatuan   string          `json:"nama_satuan"`
	StokSekarang decimal.Decimal `json:"stok_sekarang"`
	StokMinimum  decimal.Decimal `json:"stok_minimum"`
	StatusStok   string          `json:"status_stok"` // kritis, rendah, aman
}

// StockReportDTO laporan stok lengkap: baris + ringkasan.
type StockReportDTO struct {
	Rows         []StockReportRowDTO `json:"rows"`
	JumlahKritis int                 `json:"jumlah_kritis"`
	JumlahRendah int                 `json:"jumlah_rendah"`
	TotalStok    decimal.Decimal     `json:"total_stok"`
	// TotalNilai estimasi nilai persediaan: Σ(stok × harga rata-rata
	// penerimaan berharga). Bahan tanpa penerimaan berharga dihitung 0.
	TotalNilai decimal.Decimal `json:"total_nilai"`
}

// DestinationSummaryDTO ringkasan distribusi per jenis tujuan.
type DestinationSummaryDTO struct {
	JenisTujuan     string          `json:"jenis_tujuan"`
	Label           string          `json:"label"`
	JumlahTransaksi int             `json:"jumlah_transaksi"`
	TotalJumlah     decimal.Decimal `json:"total_jumlah"`
}

// DistributionReportDTO laporan distribusi: baris non-draft + ringkasan
// per jenis tujuan dengan kosakata tetap.
type DistributionReportDTO struct {
	Rows            []DistributionRowDTO    `json:"rows"`
	PerTujuan       []DestinationSummaryDTO `json:"per_tujuan"`
	TotalTransaksi  int                     `json:"total_transaksi"`
	TotalJumlah     decimal.Decimal         `json:"total_jumlah"`
}

// DistributionRowDTO satu baris laporan distribusi.
type DistributionRowDTO struct {
	Tanggal       string          `json:"tanggal"`
	NoPengeluaran string          `json:"no_pengeluaran"`
	KodeBahan     string          `json:"kode_bahan"`
	NamaBahan     string          `json:"nama_bahan"`
	Jumlah        decimal.Decimal `json:"jumlah"`
	NamaSatuan    string          `json:"nama_satuan"`
	JenisTujuan   string          `json:"jenis_tujuan"`
	NamaTujuan    string          `json:"nama_tujuan"`
	Penerima      string          `json:"penerima"`
	Status        string          `json:"status"`
}

// ChartDataDTO pasangan label/nilai untuk grafik dashboard.
type ChartDataDTO struct {
	Labels []string          `json:"labels"`
	Values []decimal.Decimal `json:"values"`
}
