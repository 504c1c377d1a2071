package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sppg-mbg/inventaris-api/internal/domain/stock"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestClassify_BatasInklusif(t *testing.T) {
	cases := []struct {
		name     string
		current  string
		minimum  string
		expected stock.Status
	}{
		{"nol dengan minimum nol", "0", "0", stock.StatusKritis},
		{"tepat di minimum", "20", "20", stock.StatusKritis},
		{"di bawah minimum", "15", "20", stock.StatusKritis},
		{"sedikit di atas minimum", "20.01", "20", stock.StatusRendah},
		{"tepat di 1.5x minimum", "30", "20", stock.StatusRendah},
		{"di atas 1.5x minimum", "30.01", "20", stock.StatusAman},
		{"jauh di atas minimum", "100", "20", stock.StatusAman},
		// batas desimal: perbandingan harus eksak, bukan float
		{"batas 1.5x pecahan", "37.5", "25", stock.StatusRendah},
		{"sedikit di atas 1.5x pecahan", "37.500000001", "25", stock.StatusAman},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, stock.Classify(d(tc.current), d(tc.minimum)))
		})
	}
}

// Skenario: bahan dengan stok 100 dan minimum 20 aman; setelah
// pengeluaran 85 sisa 15 dan jatuh ke kritis.
func TestClassify_SetelahPengeluaranJatuhKeKritis(t *testing.T) {
	assert.Equal(t, stock.StatusAman, stock.Classify(d("100"), d("20")))

	sisa := d("100").Sub(d("85"))
	assert.True(t, sisa.Equal(d("15")))
	assert.Equal(t, stock.StatusKritis, stock.Classify(sisa, d("20")))
}

// Klasifikasi fungsi murni: input sama selalu menghasilkan kategori sama.
func TestClassify_Deterministik(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, stock.StatusRendah, stock.Classify(d("30"), d("20")))
	}
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "KRITIS", stock.StatusKritis.Label())
	assert.Equal(t, "RENDAH", stock.StatusRendah.Label())
	assert.Equal(t, "AMAN", stock.StatusAman.Label())
}
