// Package excel menghasilkan workbook laporan distribusi untuk diunduh
// dari halaman laporan.
package excel

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sppg-mbg/inventaris-api/internal/application/dto"
	"github.com/sppg-mbg/inventaris-api/internal/application/report"
)

// DistributionReportGenerator menghasilkan file .xlsx laporan distribusi
// dengan excelize.
type DistributionReportGenerator struct{}

// NewDistributionReportGenerator membangun generator.
func NewDistributionReportGenerator() *DistributionReportGenerator {
	return &DistributionReportGenerator{}
}

// Generate membuat workbook dari laporan distribusi yang sudah
// diagregasi dan mengembalikan byte-nya.
func (g *DistributionReportGenerator) Generate(rep *dto.DistributionReportDTO, periode string, printedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("excel distribusi: style judul: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"006633"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    borderAll(),
	})
	if err != nil {
		return nil, fmt.Errorf("excel distribusi: style header: %w", err)
	}
	cellStyle, err := f.NewStyle(&excelize.Style{Border: borderAll()})
	if err != nil {
		return nil, fmt.Errorf("excel distribusi: style sel: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: borderAll(),
	})
	if err != nil {
		return nil, fmt.Errorf("excel distribusi: style total: %w", err)
	}

	// judul + periode
	if err := f.MergeCell(sheet, "A1", "J1"); err != nil {
		return nil, fmt.Errorf("excel distribusi: merge judul: %w", err)
	}
	_ = f.SetCellValue(sheet, "A1", "LAPORAN DISTRIBUSI BAHAN SPPG - PROGRAM MBG")
	_ = f.SetCellStyle(sheet, "A1", "J1", titleStyle)
	_ = f.MergeCell(sheet, "A2", "J2")
	_ = f.SetCellValue(sheet, "A2", "Periode: "+periode)

	// header tabel
	header := []interface{}{
		"Tanggal", "No Pengeluaran", "Kode Bahan", "Nama Bahan", "Jumlah",
		"Satuan", "Jenis Tujuan", "Nama Tujuan", "Penerima", "Status",
	}
	if err := f.SetSheetRow(sheet, "A4", &header); err != nil {
		return nil, fmt.Errorf("excel distribusi: header: %w", err)
	}
	_ = f.SetCellStyle(sheet, "A4", "J4", headerStyle)

	// baris data
	rowIdx := 5
	for _, r := range rep.Rows {
		jumlah, _ := r.Jumlah.Float64()
		excelRow := []interface{}{
			r.Tanggal,
			r.NoPengeluaran,
			r.KodeBahan,
			r.NamaBahan,
			jumlah,
			r.NamaSatuan,
			report.DestinationLabel(r.JenisTujuan),
			r.NamaTujuan,
			r.Penerima,
			report.IssueStatusLabel(r.Status),
		}
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return nil, fmt.Errorf("excel distribusi: sel baris %d: %w", rowIdx, err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("excel distribusi: baris %d: %w", rowIdx, err)
		}
		_ = f.SetCellStyle(sheet, fmt.Sprintf("A%d", rowIdx), fmt.Sprintf("J%d", rowIdx), cellStyle)
		rowIdx++
	}

	// baris total
	totalJumlah, _ := rep.TotalJumlah.Float64()
	totalRow := []interface{}{
		"TOTAL", "", "", fmt.Sprintf("%d transaksi", rep.TotalTransaksi), totalJumlah,
		"", "", "", "", "",
	}
	cell, err := excelize.CoordinatesToCellName(1, rowIdx)
	if err != nil {
		return nil, fmt.Errorf("excel distribusi: sel total: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &totalRow); err != nil {
		return nil, fmt.Errorf("excel distribusi: total: %w", err)
	}
	_ = f.SetCellStyle(sheet, fmt.Sprintf("A%d", rowIdx), fmt.Sprintf("J%d", rowIdx), totalStyle)

	// ringkasan per jenis tujuan
	rowIdx += 2
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIdx), "Ringkasan per Jenis Tujuan")
	rowIdx++
	for _, s := range rep.PerTujuan {
		total, _ := s.TotalJumlah.Float64()
		summaryRow := []interface{}{s.Label, s.JumlahTransaksi, total}
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return nil, fmt.Errorf("excel distribusi: sel ringkasan: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &summaryRow); err != nil {
			return nil, fmt.Errorf("excel distribusi: ringkasan: %w", err)
		}
		rowIdx++
	}

	// footer
	rowIdx++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIdx),
		"Dicetak pada "+printedAt.Format("02/01/2006 15:04"))

	// lebar kolom
	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 18)
	_ = f.SetColWidth(sheet, "C", "C", 12)
	_ = f.SetColWidth(sheet, "D", "D", 24)
	_ = f.SetColWidth(sheet, "E", "F", 10)
	_ = f.SetColWidth(sheet, "G", "H", 18)
	_ = f.SetColWidth(sheet, "I", "J", 14)

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("excel distribusi: tulis workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func borderAll() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}
