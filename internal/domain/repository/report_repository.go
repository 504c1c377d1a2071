package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockRow satu baris laporan stok: bahan + stok berjalan, hasil join
// bahan/stok/kategori/satuan dalam satu query (snapshot konsisten).
type StockRow struct {
	MaterialID   string
	Kode         string
	Nama         string
	NamaKategori string
	NamaSatuan   string
	StokSekarang decimal.Decimal
	StokMinimum  decimal.Decimal
	StokMaksimum decimal.Decimal
}

// DistributionRow satu baris laporan distribusi: pengeluaran + info bahan.
type DistributionRow struct {
	Tanggal       time.Time
	NoPengeluaran string
	KodeBahan     string
	NamaBahan     string
	Jumlah        decimal.Decimal
	NamaSatuan    string
	JenisTujuan   string
	NamaTujuan    string
	AlamatTujuan  string
	Penerima      string
	Catatan       string
	Status        string
}

// CategoryStockRow total stok per kategori untuk grafik dashboard.
type CategoryStockRow struct {
	NamaKategori string
	TotalStok    decimal.Decimal
}

// DestinationCountRow jumlah transaksi dan kuantitas per jenis tujuan.
type DestinationCountRow struct {
	JenisTujuan     string
	JumlahTransaksi int
	TotalJumlah     decimal.Decimal
}

// LowStockRow baris widget "bahan hampir habis" di dashboard.
type LowStockRow struct {
	NamaBahan   string
	Jumlah      decimal.Decimal
	StokMinimum decimal.Decimal
	NamaSatuan  string
}

// MonthlyTotalRow total penerimaan per bulan (1..12) untuk grafik tahunan.
type MonthlyTotalRow struct {
	Bulan int
	Total decimal.Decimal
}

// StockReportFilter filter laporan stok.
type StockReportFilter struct {
	KategoriID   string
	OnlyBelowMin bool
}

// DistributionReportFilter filter laporan distribusi (hanya non-draft).
type DistributionReportFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	JenisTujuan string
}

// ReportRepository query read-only untuk laporan, dashboard dan export.
// Setiap metode satu statement SQL sehingga export membaca snapshot
// konsisten tanpa mencampur baris sebelum/sesudah mutasi.
type ReportRepository interface {
	StockRows(ctx context.Context, filter StockReportFilter) ([]StockRow, error)
	// AvgUnitPrices harga satuan rata-rata per bahan dari penerimaan
	// dengan harga_satuan > 0. Bahan tanpa penerimaan berharga tidak
	// muncul di map (nilainya dihitung 0 oleh agregator).
	AvgUnitPrices(ctx context.Context) (map[string]decimal.Decimal, error)
	DistributionRows(ctx context.Context, filter DistributionReportFilter) ([]DistributionRow, error)

	CountActiveMaterials(ctx context.Context) (int, error)
	TotalStock(ctx context.Context) (decimal.Decimal, error)
	SumApprovedReceipts(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	SumDispatchedIssues(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	LowStocks(ctx context.Context, limit int) ([]LowStockRow, error)
	StockPerCategory(ctx context.Context) ([]CategoryStockRow, error)
	DistributionPerDestination(ctx context.Context) ([]DestinationCountRow, error)
	MonthlyReceiptTotals(ctx context.Context, year int) ([]MonthlyTotalRow, error)
}
