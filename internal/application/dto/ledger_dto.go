package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReceiptRequest body POST /api/receipts. NoPenerimaan kosong berarti
// nomor dokumen digenerate otomatis (TRM-YYYYMMDD-NNN).
type CreateReceiptRequest struct {
	NoPenerimaan      string          `json:"no_penerimaan"`
	Tanggal           time.Time       `json:"tanggal"`
	BahanID           string          `json:"bahan_id"`
	Jumlah            decimal.Decimal `json:"jumlah"`
	HargaSatuan       decimal.Decimal `json:"harga_satuan"`
	Supplier          string          `json:"supplier"`
	NoBatch           string          `json:"no_batch"`
	TanggalProduksi   *time.Time      `json:"tanggal_produksi"`
	TanggalKadaluarsa *time.Time      `json:"tanggal_kadaluarsa"`
	Kondisi           string          `json:"kondisi"`
	Penerima          string          `json:"penerima"`
	Catatan           string          `json:"catatan"`
}

// ReceiptResultDTO respons sukses penerimaan: saldo baru plus peringatan
// advisory bila melewati stok maksimum.
type ReceiptResultDTO struct {
	NoPenerimaan string          `json:"no_penerimaan"`
	SaldoBaru    decimal.Decimal `json:"saldo_baru"`
	OverMaximum  bool            `json:"over_maximum"`
}

// CreateIssueRequest body POST /api/issues.
type CreateIssueRequest struct {
	NoPengeluaran string          `json:"no_pengeluaran"`
	Tanggal       time.Time       `json:"tanggal"`
	BahanID       string          `json:"bahan_id"`
	Jumlah        decimal.Decimal `json:"jumlah"`
	Tujuan        string          `json:"tujuan"`
	JenisTujuan   string          `json:"jenis_tujuan"`
	NamaTujuan    string          `json:"nama_tujuan"`
	AlamatTujuan  string          `json:"alamat_tujuan"`
	Penerima      string          `json:"penerima"`
	Catatan       string          `json:"catatan"`
}

// IssueResultDTO respons sukses pengeluaran.
type IssueResultDTO struct {
	NoPengeluaran string          `json:"no_pengeluaran"`
	SaldoBaru     decimal.Decimal `json:"saldo_baru"`
}

// ReceiptDTO representasi penerimaan di listing.
type ReceiptDTO struct {
	ID                string          `json:"id"`
	NoPenerimaan      string          `json:"no_penerimaan"`
	Tanggal           time.Time       `json:"tanggal"`
	BahanID           string          `json:"bahan_id"`
	Jumlah            decimal.Decimal `json:"jumlah"`
	HargaSatuan       decimal.Decimal `json:"harga_satuan"`
	TotalHarga        decimal.Decimal `json:"total_harga"`
	Supplier          string          `json:"supplier"`
	NoBatch           string          `json:"no_batch"`
	TanggalKadaluarsa *time.Time      `json:"tanggal_kadaluarsa"`
	Kondisi           string          `json:"kondisi"`
	Status            string          `json:"status"`
}

// IssueDTO representasi pengeluaran di listing.
type IssueDTO struct {
	ID            string          `json:"id"`
	NoPengeluaran string          `json:"no_pengeluaran"`
	Tanggal       time.Time       `json:"tanggal"`
	BahanID       string          `json:"bahan_id"`
	Jumlah        decimal.Decimal `json:"jumlah"`
	JenisTujuan   string          `json:"jenis_tujuan"`
	NamaTujuan    string          `json:"nama_tujuan"`
	Penerima      string          `json:"penerima"`
	Status        string          `json:"status"`
}
