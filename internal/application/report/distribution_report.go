package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sppg-mbg/inventaris-api/internal/application/dto"
	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
)

// destinationLabels teks tampilan jenis tujuan.
var destinationLabels = map[string]string{
	entity.DestSekolah:    "Sekolah",
	entity.DestPosyandu:   "Posyandu",
	entity.DestPuskesmas:  "Puskesmas",
	entity.DestRumahSakit: "Rumah Sakit",
	entity.DestLainnya:    "Lainnya",
}

// DestinationLabel label tampilan untuk jenis tujuan; nilai di luar
// kosakata jatuh ke "Lainnya".
func DestinationLabel(jenis string) string {
	return destinationLabels[entity.NormalizeDestination(jenis)]
}

// statusLabels teks tampilan status pengeluaran untuk export.
var statusLabels = map[string]string{
	entity.IssueStatusDraft:      "Draft",
	entity.IssueStatusDispatched: "Dikirim",
	entity.IssueStatusReceived:   "Diterima",
}

// IssueStatusLabel label tampilan status pengeluaran.
func IssueStatusLabel(status string) string {
	if l, ok := statusLabels[status]; ok {
		return l
	}
	return status
}

// DistributionReportUseCase membangun laporan distribusi dari pengeluaran
// non-draft.
type DistributionReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDistributionReportUseCase membangun usecase laporan distribusi.
func NewDistributionReportUseCase(reportRepo repository.ReportRepository) *DistributionReportUseCase {
	return &DistributionReportUseCase{reportRepo: reportRepo}
}

// Get mengambil snapshot baris distribusi lalu mengagregasinya.
func (uc *DistributionReportUseCase) Get(ctx context.Context, filter repository.DistributionReportFilter) (*dto.DistributionReportDTO, error) {
	rows, err := uc.reportRepo.DistributionRows(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("laporan distribusi: %w", err)
	}
	report := AggregateDistribution(rows)
	return &report, nil
}

// AggregateDistribution fungsi murni: hitungan transaksi dan total
// kuantitas per jenis tujuan, kosakata tetap dengan "lainnya" sebagai
// fallback, plus total keseluruhan.
func AggregateDistribution(rows []repository.DistributionRow) dto.DistributionReportDTO {
	type bucket struct {
		count int
		sum   decimal.Decimal
	}
	buckets := map[string]*bucket{}
	for _, jenis := range entity.DestinationTypes {
		buckets[jenis] = &bucket{sum: decimal.Zero}
	}

	out := dto.DistributionReportDTO{
		Rows:        make([]dto.DistributionRowDTO, 0, len(rows)),
		TotalJumlah: decimal.Zero,
	}

	for _, r := range rows {
		jenis := entity.NormalizeDestination(r.JenisTujuan)
		b := buckets[jenis]
		b.count++
		b.sum = b.sum.Add(r.Jumlah)

		out.TotalTransaksi++
		out.TotalJumlah = out.TotalJumlah.Add(r.Jumlah)
		out.Rows = append(out.Rows, dto.DistributionRowDTO{
			Tanggal:       r.Tanggal.Format("2006-01-02"),
			NoPengeluaran: r.NoPengeluaran,
			KodeBahan:     r.KodeBahan,
			NamaBahan:     r.NamaBahan,
			Jumlah:        r.Jumlah,
			NamaSatuan:    r.NamaSatuan,
			JenisTujuan:   jenis,
			NamaTujuan:    r.NamaTujuan,
			Penerima:      r.Penerima,
			Status:        r.Status,
		})
	}

	// Urutan ringkasan mengikuti kosakata tetap, bukan urutan kemunculan.
	out.PerTujuan = make([]dto.DestinationSummaryDTO, 0, len(entity.DestinationTypes))
	for _, jenis := range entity.DestinationTypes {
		b := buckets[jenis]
		out.PerTujuan = append(out.PerTujuan, dto.DestinationSummaryDTO{
			JenisTujuan:     jenis,
			Label:           destinationLabels[jenis],
			JumlahTransaksi: b.count,
			TotalJumlah:     b.sum,
		})
	}

	return out
}
