// Package pdf menghasilkan PDF laporan stok untuk dicetak gudang.
//
// Layout halaman A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  JUDUL: LAPORAN STOK BAHAN SPPG - PROGRAM MBG                │
//	│  Ringkasan: total bahan / kritis / rendah / taksiran nilai   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABEL: No | Kode | Nama | Kategori | Stok | Sat | Min | St  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: dicetak pada <waktu>                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/sppg-mbg/inventaris-api/internal/application/dto"
	"github.com/sppg-mbg/inventaris-api/internal/domain/stock"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorKritis  = &props.Color{Red: 192, Green: 0, Blue: 0}
	colorRendah  = &props.Color{Red: 191, Green: 143, Blue: 0}
	colorAman    = &props.Color{Red: 0, Green: 128, Blue: 0}
)

// StockReportGenerator menghasilkan PDF laporan stok dengan Maroto v2.
type StockReportGenerator struct{}

// NewStockReportGenerator membangun generator.
func NewStockReportGenerator() *StockReportGenerator { return &StockReportGenerator{} }

// Generate membuat PDF dari laporan stok yang sudah diagregasi dan
// mengembalikan byte-nya.
func (g *StockReportGenerator) Generate(report *dto.StockReportDTO, printedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Laporan Stok Bahan SPPG", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(printedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for i, r := range report.Rows {
		m.AddRows(tableDataRow(i+1, r))
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(footerRow(printedAt))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf laporan stok: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(printedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("LAPORAN STOK BAHAN SPPG - PROGRAM MBG", props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Center,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Per "+printedAt.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Center, Top: 10, Color: colorGray,
			}),
		),
	)
}

func summaryRow(report *dto.StockReportDTO) core.Row {
	item := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 6}),
		)
	}
	return row.New(14).Add(
		item("Total Bahan", fmt.Sprintf("%d", len(report.Rows))),
		item("Stok Kritis", fmt.Sprintf("%d", report.JumlahKritis)),
		item("Stok Rendah", fmt.Sprintf("%d", report.JumlahRendah)),
		item("Taksiran Nilai (Rp)", report.TotalNilai.StringFixed(0)),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("No", 1, align.Center),
		h("Kode", 1, align.Left),
		h("Nama Bahan", 3, align.Left),
		h("Kategori", 2, align.Left),
		h("Stok", 2, align.Right),
		h("Satuan", 1, align.Center),
		h("Min", 1, align.Right),
		h("Status", 1, align.Center),
	)
}

func tableDataRow(no int, r dto.StockReportRowDTO) core.Row {
	return row.New(6).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", no), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(1).Add(text.New(r.Kode, props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(r.Nama, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(r.NamaKategori, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(r.StokSekarang.String(), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(1).Add(text.New(r.NamaSatuan, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(1).Add(text.New(r.StokMinimum.String(), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(1).Add(text.New(statusLabel(r.StatusStok), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1,
			Color: statusColor(r.StatusStok),
		})),
	)
}

func footerRow(printedAt time.Time) core.Row {
	return row.New(6).Add(
		col.New(12).Add(
			text.New("Dicetak pada "+printedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func statusLabel(s string) string {
	return stock.Status(s).Label()
}

func statusColor(s string) *props.Color {
	switch stock.Status(s) {
	case stock.StatusKritis:
		return colorKritis
	case stock.StatusRendah:
		return colorRendah
	}
	return colorAman
}
