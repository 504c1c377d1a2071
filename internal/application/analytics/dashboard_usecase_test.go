package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sppg-mbg/inventaris-api/internal/application/analytics"
	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
)

// fakeReportRepo nilai kaleng untuk semua query dashboard.
type fakeReportRepo struct {
	repository.ReportRepository
	activeCount int
	totalStock  decimal.Decimal
	monthIn     decimal.Decimal
	monthOut    decimal.Decimal
	lows        []repository.LowStockRow
	perCategory []repository.CategoryStockRow
	perDest     []repository.DestinationCountRow
	monthly     []repository.MonthlyTotalRow
}

func (r *fakeReportRepo) CountActiveMaterials(context.Context) (int, error) {
	return r.activeCount, nil
}
func (r *fakeReportRepo) TotalStock(context.Context) (decimal.Decimal, error) {
	return r.totalStock, nil
}
func (r *fakeReportRepo) SumApprovedReceipts(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	return r.monthIn, nil
}
func (r *fakeReportRepo) SumDispatchedIssues(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	return r.monthOut, nil
}
func (r *fakeReportRepo) LowStocks(context.Context, int) ([]repository.LowStockRow, error) {
	return r.lows, nil
}
func (r *fakeReportRepo) StockPerCategory(context.Context) ([]repository.CategoryStockRow, error) {
	return r.perCategory, nil
}
func (r *fakeReportRepo) DistributionPerDestination(context.Context) ([]repository.DestinationCountRow, error) {
	return r.perDest, nil
}
func (r *fakeReportRepo) MonthlyReceiptTotals(context.Context, int) ([]repository.MonthlyTotalRow, error) {
	return r.monthly, nil
}

type fakeReceiptRepo struct {
	repository.ReceiptRepository
	expiring []*entity.Receipt
}

func (r *fakeReceiptRepo) ListApprovedWithExpiryUpTo(time.Time, int) ([]*entity.Receipt, error) {
	return r.expiring, nil
}

type fakeQualityRepo struct {
	repository.QualityCheckRepository
	recent []*entity.QualityCheck
}

func (r *fakeQualityRepo) ListRecent(int) ([]*entity.QualityCheck, error) {
	return r.recent, nil
}

func expiringReceipt(no string, daysFromNow int) *entity.Receipt {
	exp := time.Now().AddDate(0, 0, daysFromNow)
	return &entity.Receipt{
		NoPenerimaan:      no,
		MaterialID:        "m-1",
		Jumlah:            decimal.NewFromInt(10),
		TanggalKadaluarsa: &exp,
		Status:            entity.ReceiptStatusApproved,
	}
}

func TestDashboardSummary_KPIDanWidget(t *testing.T) {
	reportRepo := &fakeReportRepo{
		activeCount: 12,
		totalStock:  decimal.NewFromInt(340),
		monthIn:     decimal.NewFromInt(120),
		monthOut:    decimal.NewFromInt(85),
		lows: []repository.LowStockRow{
			{NamaBahan: "Beras", Jumlah: decimal.NewFromInt(5), StokMinimum: decimal.NewFromInt(20), NamaSatuan: "kg"},
		},
		perCategory: []repository.CategoryStockRow{
			{NamaKategori: "Karbohidrat", TotalStok: decimal.NewFromInt(200)},
		},
		perDest: []repository.DestinationCountRow{
			{JenisTujuan: entity.DestSekolah, JumlahTransaksi: 3, TotalJumlah: decimal.NewFromInt(60)},
		},
	}
	receiptRepo := &fakeReceiptRepo{expiring: []*entity.Receipt{
		expiringReceipt("TRM-1", 10),
		expiringReceipt("TRM-2", 3),
	}}
	qualityRepo := &fakeQualityRepo{recent: []*entity.QualityCheck{
		{ID: "q-1", MaterialID: "m-1", KondisiFisik: entity.PhysicalGood},
	}}

	uc := analytics.NewDashboardUseCase(reportRepo, receiptRepo, qualityRepo)
	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, out.TotalBahan)
	assert.True(t, decimal.NewFromInt(340).Equal(out.TotalStok))
	assert.True(t, decimal.NewFromInt(120).Equal(out.PenerimaanBulan))
	assert.True(t, decimal.NewFromInt(85).Equal(out.PengeluaranBulan))
	assert.Len(t, out.BahanHampirHabis, 1)
	assert.Len(t, out.StokPerKategori, 1)
	assert.Len(t, out.MonitoringTerbaru, 1)
	assert.NotEmpty(t, out.PeriodeLabel)

	require.Len(t, out.DistribusiPerTujuan, 1)
	assert.Equal(t, "Sekolah", out.DistribusiPerTujuan[0].Label)

	// Peringatan kadaluarsa diurutkan naik: yang paling dekat dulu.
	require.Len(t, out.MendekatiKadaluarsa, 2)
	assert.Equal(t, "TRM-2", out.MendekatiKadaluarsa[0].NoPenerimaan)
	assert.Equal(t, "TRM-1", out.MendekatiKadaluarsa[1].NoPenerimaan)
}

func TestDashboardSummary_KadaluarsaLewatJendelaDisaring(t *testing.T) {
	receiptRepo := &fakeReceiptRepo{expiring: []*entity.Receipt{
		expiringReceipt("TRM-DEKAT", 5),
		expiringReceipt("TRM-JAUH", 45), // di luar jendela 30 hari
	}}
	uc := analytics.NewDashboardUseCase(
		&fakeReportRepo{},
		receiptRepo,
		&fakeQualityRepo{},
	)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, out.MendekatiKadaluarsa, 1)
	assert.Equal(t, "TRM-DEKAT", out.MendekatiKadaluarsa[0].NoPenerimaan)
}

func TestPenerimaanPerBulanChart_SelaluDuaBelasBucket(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		&fakeReportRepo{monthly: []repository.MonthlyTotalRow{
			{Bulan: 2, Total: decimal.NewFromInt(40)},
			{Bulan: 8, Total: decimal.NewFromInt(75)},
		}},
		&fakeReceiptRepo{},
		&fakeQualityRepo{},
	)

	chart, err := uc.PenerimaanPerBulanChart(context.Background())
	require.NoError(t, err)
	require.Len(t, chart.Labels, 12)
	require.Len(t, chart.Values, 12)
	assert.Equal(t, "Feb", chart.Labels[1])
	assert.True(t, decimal.NewFromInt(40).Equal(chart.Values[1]))
	assert.True(t, decimal.NewFromInt(75).Equal(chart.Values[7]))
	assert.True(t, chart.Values[0].IsZero(), "bulan tanpa penerimaan harus 0")
}

func TestStokPerKategoriChart(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		&fakeReportRepo{perCategory: []repository.CategoryStockRow{
			{NamaKategori: "Karbohidrat", TotalStok: decimal.NewFromInt(200)},
			{NamaKategori: "Protein", TotalStok: decimal.NewFromInt(80)},
		}},
		&fakeReceiptRepo{},
		&fakeQualityRepo{},
	)

	chart, err := uc.StokPerKategoriChart(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Karbohidrat", "Protein"}, chart.Labels)
	require.Len(t, chart.Values, 2)
	assert.True(t, decimal.NewFromInt(200).Equal(chart.Values[0]))
}
