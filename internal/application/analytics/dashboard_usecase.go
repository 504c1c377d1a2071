// Package analytics berisi usecase dashboard dan data grafik. Semua
// konsultasi read-only; konsistensi eventual cukup untuk tampilan.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sppg-mbg/inventaris-api/internal/application/dto"
	"github.com/sppg-mbg/inventaris-api/internal/application/report"
	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
	"github.com/sppg-mbg/inventaris-api/internal/domain/stock"
)

const (
	dashboardLowStockLimit = 5
	dashboardExpiryLimit   = 5
	dashboardQualityLimit  = 5
)

// DashboardUseCase merangkum KPI gudang: total bahan/stok, pergerakan
// bulan berjalan, peringatan stok rendah dan kadaluarsa, grafik kategori
// dan distribusi, plus monitoring kualitas terbaru.
type DashboardUseCase struct {
	reportRepo  repository.ReportRepository
	receiptRepo repository.ReceiptRepository
	qualityRepo repository.QualityCheckRepository
}

// NewDashboardUseCase membangun usecase dashboard.
func NewDashboardUseCase(
	reportRepo repository.ReportRepository,
	receiptRepo repository.ReceiptRepository,
	qualityRepo repository.QualityCheckRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		reportRepo:  reportRepo,
		receiptRepo: receiptRepo,
		qualityRepo: qualityRepo,
	}
}

// GetSummary membangun DashboardDTO. Query independen dijalankan paralel
// lewat goroutine + channel seperti kebanyakan widget read-only.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardDTO, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	type countResult struct {
		n   int
		err error
	}
	type sumResult struct {
		v   decimal.Decimal
		err error
	}
	type lowResult struct {
		rows []repository.LowStockRow
		err  error
	}
	type catResult struct {
		rows []repository.CategoryStockRow
		err  error
	}
	type destResult struct {
		rows []repository.DestinationCountRow
		err  error
	}

	countCh := make(chan countResult, 1)
	stockCh := make(chan sumResult, 1)
	inCh := make(chan sumResult, 1)
	outCh := make(chan sumResult, 1)
	lowCh := make(chan lowResult, 1)
	catCh := make(chan catResult, 1)
	destCh := make(chan destResult, 1)

	go func() {
		n, err := uc.reportRepo.CountActiveMaterials(ctx)
		countCh <- countResult{n, err}
	}()
	go func() {
		v, err := uc.reportRepo.TotalStock(ctx)
		stockCh <- sumResult{v, err}
	}()
	go func() {
		v, err := uc.reportRepo.SumApprovedReceipts(ctx, monthStart, monthEnd)
		inCh <- sumResult{v, err}
	}()
	go func() {
		v, err := uc.reportRepo.SumDispatchedIssues(ctx, monthStart, monthEnd)
		outCh <- sumResult{v, err}
	}()
	go func() {
		rows, err := uc.reportRepo.LowStocks(ctx, dashboardLowStockLimit)
		lowCh <- lowResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.StockPerCategory(ctx)
		catCh <- catResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.DistributionPerDestination(ctx)
		destCh <- destResult{rows, err}
	}()

	count := <-countCh
	totalStock := <-stockCh
	monthIn := <-inCh
	monthOut := <-outCh
	low := <-lowCh
	perCategory := <-catCh
	perDest := <-destCh

	for _, err := range []error{count.err, totalStock.err, monthIn.err, monthOut.err, low.err, perCategory.err, perDest.err} {
		if err != nil {
			return nil, fmt.Errorf("dashboard: %w", err)
		}
	}

	expiring, err := uc.expiryWarnings(now)
	if err != nil {
		return nil, fmt.Errorf("dashboard: kadaluarsa: %w", err)
	}
	quality, err := uc.qualityRepo.ListRecent(dashboardQualityLimit)
	if err != nil {
		return nil, fmt.Errorf("dashboard: monitoring: %w", err)
	}

	out := &dto.DashboardDTO{
		TotalBahan:          count.n,
		TotalStok:           totalStock.v,
		PenerimaanBulan:     monthIn.v,
		PengeluaranBulan:    monthOut.v,
		MendekatiKadaluarsa: expiring,
		PeriodeLabel:        monthLabel(now),
	}
	for _, r := range low.rows {
		out.BahanHampirHabis = append(out.BahanHampirHabis, dto.LowStockDTO{
			NamaBahan:   r.NamaBahan,
			Jumlah:      r.Jumlah,
			StokMinimum: r.StokMinimum,
			NamaSatuan:  r.NamaSatuan,
		})
	}
	for _, r := range perCategory.rows {
		out.StokPerKategori = append(out.StokPerKategori, dto.CategoryStockDTO{
			NamaKategori: r.NamaKategori,
			TotalStok:    r.TotalStok,
		})
	}
	for _, r := range perDest.rows {
		out.DistribusiPerTujuan = append(out.DistribusiPerTujuan, dto.DestinationSummaryDTO{
			JenisTujuan:     r.JenisTujuan,
			Label:           report.DestinationLabel(r.JenisTujuan),
			JumlahTransaksi: r.JumlahTransaksi,
			TotalJumlah:     r.TotalJumlah,
		})
	}
	for _, qc := range quality {
		out.MonitoringTerbaru = append(out.MonitoringTerbaru, dto.QualityCheckDTO{
			ID:               qc.ID,
			BahanID:          qc.MaterialID,
			TanggalCheck:     qc.TanggalCheck,
			SuhuGudang:       qc.SuhuGudang,
			KelembabanGudang: qc.KelembabanGudang,
			KondisiFisik:     qc.KondisiFisik,
			KondisiKemasan:   qc.KondisiKemasan,
			StatusKadaluarsa: qc.StatusKadaluarsa,
			Petugas:          qc.Petugas,
		})
	}
	return out, nil
}

// expiryWarnings kandidat dari repositori disaring dan diurutkan oleh
// stock.ExpiryWindow, implementasi jendela yang sama dengan laporan.
func (uc *DashboardUseCase) expiryWarnings(now time.Time) ([]dto.ExpiryWarningDTO, error) {
	end := now.AddDate(0, 0, stock.DefaultExpiryWindowDays)
	candidates, err := uc.receiptRepo.ListApprovedWithExpiryUpTo(end, 200)
	if err != nil {
		return nil, err
	}
	records := make([]entity.Receipt, 0, len(candidates))
	for _, r := range candidates {
		records = append(records, *r)
	}

	var out []dto.ExpiryWarningDTO
	for r := range stock.ExpiryWindow(now, records, stock.DefaultExpiryWindowDays) {
		out = append(out, dto.ExpiryWarningDTO{
			NoPenerimaan:         r.NoPenerimaan,
			BahanID:              r.MaterialID,
			Jumlah:               r.Jumlah,
			TanggalKadaluarsa:    r.TanggalKadaluarsa.Format("2006-01-02"),
			HariMenujuKadaluarsa: stock.DaysUntilExpiry(now, *r.TanggalKadaluarsa),
		})
		if len(out) == dashboardExpiryLimit {
			break
		}
	}
	return out, nil
}

// StokPerKategoriChart data grafik batang stok per kategori.
func (uc *DashboardUseCase) StokPerKategoriChart(ctx context.Context) (*dto.ChartDataDTO, error) {
	rows, err := uc.reportRepo.StockPerCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("grafik stok per kategori: %w", err)
	}
	chart := &dto.ChartDataDTO{Labels: []string{}, Values: []decimal.Decimal{}}
	for _, r := range rows {
		chart.Labels = append(chart.Labels, r.NamaKategori)
		chart.Values = append(chart.Values, r.TotalStok)
	}
	return chart, nil
}

var monthLabels = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var monthShortLabels = [...]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// PenerimaanPerBulanChart total penerimaan disetujui per bulan tahun
// berjalan, selalu 12 bucket.
func (uc *DashboardUseCase) PenerimaanPerBulanChart(ctx context.Context) (*dto.ChartDataDTO, error) {
	rows, err := uc.reportRepo.MonthlyReceiptTotals(ctx, time.Now().Year())
	if err != nil {
		return nil, fmt.Errorf("grafik penerimaan per bulan: %w", err)
	}
	chart := &dto.ChartDataDTO{
		Labels: monthShortLabels[:],
		Values: make([]decimal.Decimal, 12),
	}
	for i := range chart.Values {
		chart.Values[i] = decimal.Zero
	}
	for _, r := range rows {
		if r.Bulan >= 1 && r.Bulan <= 12 {
			chart.Values[r.Bulan-1] = r.Total
		}
	}
	return chart, nil
}

// monthLabel label periode, mis. "Agustus 2026".
func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", monthLabels[t.Month()-1], t.Year())
}
