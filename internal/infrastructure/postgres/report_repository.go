package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo query read-only untuk laporan, dashboard dan export.
// Setiap metode satu statement SQL; klasifikasi status stok tetap di
// domain (stock.Classify), bukan di SQL, supaya ambangnya satu sumber.
type ReportRepo struct {
	q Querier
}

// NewReportRepository membangun adapter laporan.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// StockRows baris laporan stok: join bahan aktif + stok + referensi.
func (r *ReportRepo) StockRows(ctx context.Context, filter repository.StockReportFilter) ([]repository.StockRow, error) {
	query := `
		SELECT b.id, b.kode, b.nama, k.nama, s.nama,
		       COALESCE(st.jumlah, 0), b.stok_minimum, b.stok_maksimum
		FROM bahan b
		JOIN kategori_bahan k ON k.id = b.kategori_id
		JOIN satuan s ON s.id = b.satuan_id
		LEFT JOIN stok st ON st.bahan_id = b.id
		WHERE b.status = $1`
	args := []any{entity.MaterialStatusActive}
	if filter.KategoriID != "" {
		args = append(args, filter.KategoriID)
		query += fmt.Sprintf(" AND b.kategori_id = $%d", len(args))
	}
	if filter.OnlyBelowMin {
		query += " AND COALESCE(st.jumlah, 0) <= b.stok_minimum"
	}
	query += " ORDER BY b.nama ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query laporan stok: %w", err)
	}
	defer rows.Close()

	var out []repository.StockRow
	for rows.Next() {
		var row repository.StockRow
		if err := rows.Scan(
			&row.MaterialID, &row.Kode, &row.Nama, &row.NamaKategori, &row.NamaSatuan,
			&row.StokSekarang, &row.StokMinimum, &row.StokMaksimum,
		); err != nil {
			return nil, fmt.Errorf("scan laporan stok: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// AvgUnitPrices harga satuan rata-rata per bahan dari penerimaan
// berharga. Bahan tanpa penerimaan berharga tidak muncul di map.
func (r *ReportRepo) AvgUnitPrices(ctx context.Context) (map[string]decimal.Decimal, error) {
	rows, err := r.q.Query(ctx, `
		SELECT bahan_id, AVG(harga_satuan)
		FROM penerimaan
		WHERE harga_satuan > 0
		GROUP BY bahan_id`)
	if err != nil {
		return nil, fmt.Errorf("query harga rata-rata: %w", err)
	}
	defer rows.Close()

	out := make(map[string]decimal.Decimal)
	for rows.Next() {
		var id string
		var avg decimal.Decimal
		if err := rows.Scan(&id, &avg); err != nil {
			return nil, fmt.Errorf("scan harga rata-rata: %w", err)
		}
		out[id] = avg
	}
	return out, rows.Err()
}

// DistributionRows baris laporan distribusi (hanya non-draft).
func (r *ReportRepo) DistributionRows(ctx context.Context, filter repository.DistributionReportFilter) ([]repository.DistributionRow, error) {
	query := `
		SELECT p.tanggal, p.no_pengeluaran, b.kode, b.nama, p.jumlah, s.nama,
		       p.jenis_tujuan, p.nama_tujuan, p.alamat_tujuan, p.penerima, p.catatan, p.status
		FROM pengeluaran p
		JOIN bahan b ON b.id = p.bahan_id
		JOIN satuan s ON s.id = p.satuan_id
		WHERE p.status <> $1`
	args := []any{entity.IssueStatusDraft}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND p.tanggal >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND p.tanggal <= $%d", len(args))
	}
	if filter.JenisTujuan != "" {
		args = append(args, filter.JenisTujuan)
		query += fmt.Sprintf(" AND p.jenis_tujuan = $%d", len(args))
	}
	query += " ORDER BY p.tanggal ASC, p.no_pengeluaran ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query laporan distribusi: %w", err)
	}
	defer rows.Close()

	var out []repository.DistributionRow
	for rows.Next() {
		var row repository.DistributionRow
		if err := rows.Scan(
			&row.Tanggal, &row.NoPengeluaran, &row.KodeBahan, &row.NamaBahan, &row.Jumlah,
			&row.NamaSatuan, &row.JenisTujuan, &row.NamaTujuan, &row.AlamatTujuan,
			&row.Penerima, &row.Catatan, &row.Status,
		); err != nil {
			return nil, fmt.Errorf("scan laporan distribusi: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// CountActiveMaterials jumlah bahan aktif.
func (r *ReportRepo) CountActiveMaterials(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM bahan WHERE status = $1`, entity.MaterialStatusActive,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count bahan aktif: %w", err)
	}
	return n, nil
}

// TotalStock total seluruh baris stok bahan aktif.
func (r *ReportRepo) TotalStock(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(st.jumlah), 0)
		FROM stok st
		JOIN bahan b ON b.id = st.bahan_id
		WHERE b.status = $1`, entity.MaterialStatusActive,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total stok: %w", err)
	}
	return total, nil
}

// SumApprovedReceipts total kuantitas penerimaan disetujui pada rentang.
func (r *ReportRepo) SumApprovedReceipts(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(jumlah), 0)
		FROM penerimaan
		WHERE status = $1 AND tanggal >= $2 AND tanggal <= $3`,
		entity.ReceiptStatusApproved, start, end,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total penerimaan: %w", err)
	}
	return total, nil
}

// SumDispatchedIssues total kuantitas pengeluaran terkirim pada rentang.
func (r *ReportRepo) SumDispatchedIssues(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(jumlah), 0)
		FROM pengeluaran
		WHERE status <> $1 AND tanggal >= $2 AND tanggal <= $3`,
		entity.IssueStatusDraft, start, end,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total pengeluaran: %w", err)
	}
	return total, nil
}

// LowStocks bahan aktif dengan stok <= minimum, paling kritis dulu.
func (r *ReportRepo) LowStocks(ctx context.Context, limit int) ([]repository.LowStockRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT b.nama, COALESCE(st.jumlah, 0), b.stok_minimum, s.nama
		FROM bahan b
		JOIN satuan s ON s.id = b.satuan_id
		LEFT JOIN stok st ON st.bahan_id = b.id
		WHERE b.status = $1 AND COALESCE(st.jumlah, 0) <= b.stok_minimum
		ORDER BY COALESCE(st.jumlah, 0) - b.stok_minimum ASC
		LIMIT $2`, entity.MaterialStatusActive, limit)
	if err != nil {
		return nil, fmt.Errorf("query stok rendah: %w", err)
	}
	defer rows.Close()

	var out []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.NamaBahan, &row.Jumlah, &row.StokMinimum, &row.NamaSatuan); err != nil {
			return nil, fmt.Errorf("scan stok rendah: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// StockPerCategory total stok per kategori untuk grafik.
func (r *ReportRepo) StockPerCategory(ctx context.Context) ([]repository.CategoryStockRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT k.nama, COALESCE(SUM(st.jumlah), 0)
		FROM kategori_bahan k
		JOIN bahan b ON b.kategori_id = k.id AND b.status = $1
		LEFT JOIN stok st ON st.bahan_id = b.id
		GROUP BY k.nama
		ORDER BY k.nama ASC`, entity.MaterialStatusActive)
	if err != nil {
		return nil, fmt.Errorf("query stok per kategori: %w", err)
	}
	defer rows.Close()

	var out []repository.CategoryStockRow
	for rows.Next() {
		var row repository.CategoryStockRow
		if err := rows.Scan(&row.NamaKategori, &row.TotalStok); err != nil {
			return nil, fmt.Errorf("scan stok per kategori: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// DistributionPerDestination jumlah transaksi dan kuantitas per jenis
// tujuan (hanya non-draft).
func (r *ReportRepo) DistributionPerDestination(ctx context.Context) ([]repository.DestinationCountRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT jenis_tujuan, COUNT(*), COALESCE(SUM(jumlah), 0)
		FROM pengeluaran
		WHERE status <> $1
		GROUP BY jenis_tujuan
		ORDER BY jenis_tujuan ASC`, entity.IssueStatusDraft)
	if err != nil {
		return nil, fmt.Errorf("query distribusi per tujuan: %w", err)
	}
	defer rows.Close()

	var out []repository.DestinationCountRow
	for rows.Next() {
		var row repository.DestinationCountRow
		if err := rows.Scan(&row.JenisTujuan, &row.JumlahTransaksi, &row.TotalJumlah); err != nil {
			return nil, fmt.Errorf("scan distribusi per tujuan: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// MonthlyReceiptTotals total penerimaan disetujui per bulan pada satu
// tahun, untuk grafik tahunan.
func (r *ReportRepo) MonthlyReceiptTotals(ctx context.Context, year int) ([]repository.MonthlyTotalRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT EXTRACT(MONTH FROM tanggal)::int, COALESCE(SUM(jumlah), 0)
		FROM penerimaan
		WHERE status = $1 AND EXTRACT(YEAR FROM tanggal)::int = $2
		GROUP BY 1
		ORDER BY 1 ASC`, entity.ReceiptStatusApproved, year)
	if err != nil {
		return nil, fmt.Errorf("query penerimaan per bulan: %w", err)
	}
	defer rows.Close()

	var out []repository.MonthlyTotalRow
	for rows.Next() {
		var row repository.MonthlyTotalRow
		if err := rows.Scan(&row.Bulan, &row.Total); err != nil {
			return nil, fmt.Errorf("scan penerimaan per bulan: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
