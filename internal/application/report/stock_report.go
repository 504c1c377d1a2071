// Package report berisi agregasi read-side: klasifikasi stok dan
// ringkasan distribusi. Dashboard, halaman laporan dan kedua export
// memakai fungsi yang sama sehingga tidak ada drift antar tampilan.
package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sppg-mbg/inventaris-api/internal/application/dto"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
	"github.com/sppg-mbg/inventaris-api/internal/domain/stock"
)

// StockReportUseCase membangun laporan stok dari snapshot repositori.
type StockReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewStockReportUseCase membangun usecase laporan stok.
func NewStockReportUseCase(reportRepo repository.ReportRepository) *StockReportUseCase {
	return &StockReportUseCase{reportRepo: reportRepo}
}

// Get mengambil baris stok dan harga rata-rata dalam konteks yang sama
// lalu mengagregasinya. Setiap sumber satu statement SQL (snapshot).
func (uc *StockReportUseCase) Get(ctx context.Context, filter repository.StockReportFilter) (*dto.StockReportDTO, error) {
	rows, err := uc.reportRepo.StockRows(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("laporan stok: %w", err)
	}
	prices, err := uc.reportRepo.AvgUnitPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("laporan stok: harga rata-rata: %w", err)
	}
	report := AggregateStock(rows, prices)
	return &report, nil
}

// AggregateStock fungsi murni: klasifikasi per baris + ringkasan.
// Nilai persediaan = Σ(stok × harga rata-rata); bahan tanpa harga
// menyumbang 0 nilai tapi tetap masuk hitungan baris.
func AggregateStock(rows []repository.StockRow, avgPrices map[string]decimal.Decimal) dto.StockReportDTO {
	out := dto.StockReportDTO{
		Rows:       make([]dto.StockReportRowDTO, 0, len(rows)),
		TotalStok:  decimal.Zero,
		TotalNilai: decimal.Zero,
	}

	for _, r := range rows {
		status := stock.Classify(r.StokSekarang, r.StokMinimum)
		switch status {
		case stock.StatusKritis:
			out.JumlahKritis++
		case stock.StatusRendah:
			out.JumlahRendah++
		}
		out.TotalStok = out.TotalStok.Add(r.StokSekarang)
		if harga, ok := avgPrices[r.MaterialID]; ok {
			out.TotalNilai = out.TotalNilai.Add(r.StokSekarang.Mul(harga))
		}
		out.Rows = append(out.Rows, dto.StockReportRowDTO{
			BahanID:      r.MaterialID,
			Kode:         r.Kode,
			Nama:         r.Nama,
			NamaKategori: r.NamaKategori,
			NamaSatuan:   r.NamaSatuan,
			StokSekarang: r.StokSekarang,
			StokMinimum:  r.StokMinimum,
			StatusStok:   string(status),
		})
	}

	// Urutan tampil: kritis dulu, lalu rendah, lalu aman; di dalam
	// status urut nama.
	rank := map[string]int{string(stock.StatusKritis): 0, string(stock.StatusRendah): 1, string(stock.StatusAman): 2}
	sort.SliceStable(out.Rows, func(i, j int) bool {
		if rank[out.Rows[i].StatusStok] != rank[out.Rows[j].StatusStok] {
			return rank[out.Rows[i].StatusStok] < rank[out.Rows[j].StatusStok]
		}
		return out.Rows[i].Nama < out.Rows[j].Nama
	})

	return out
}
