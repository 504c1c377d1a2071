package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
	"github.com/sppg-mbg/inventaris-api/internal/domain/stock"
)

func receiptExpiring(no string, expiry time.Time) entity.Receipt {
	return entity.Receipt{NoPenerimaan: no, TanggalKadaluarsa: &expiry}
}

func collect(seq func(func(entity.Receipt) bool)) []entity.Receipt {
	var out []entity.Receipt
	for r := range seq {
		out = append(out, r)
	}
	return out
}

// Skenario: kadaluarsa 20 hari lagi masuk jendela 30 hari, 40 hari tidak.
func TestExpiryWindow_JendelaTigaPuluhHari(t *testing.T) {
	ref := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	records := []entity.Receipt{
		receiptExpiring("TRM-A", ref.AddDate(0, 0, 20)),
		receiptExpiring("TRM-B", ref.AddDate(0, 0, 40)),
	}

	got := collect(stock.ExpiryWindow(ref, records, 30))
	require.Len(t, got, 1)
	assert.Equal(t, "TRM-A", got[0].NoPenerimaan)
}

func TestExpiryWindow_UrutMenaikDanBatasInklusif(t *testing.T) {
	ref := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []entity.Receipt{
		receiptExpiring("TRM-C", ref.AddDate(0, 0, 30)), // tepat di batas: masuk
		receiptExpiring("TRM-A", ref),                   // kadaluarsa hari ini: masuk
		receiptExpiring("TRM-B", ref.AddDate(0, 0, 7)),
		receiptExpiring("TRM-D", ref.AddDate(0, 0, 31)), // lewat batas
		receiptExpiring("TRM-E", ref.AddDate(0, 0, -1)), // sudah lewat
		{NoPenerimaan: "TRM-F"},                         // tanpa tanggal kadaluarsa
	}

	got := collect(stock.ExpiryWindow(ref, records, 30))
	require.Len(t, got, 3)
	assert.Equal(t, "TRM-A", got[0].NoPenerimaan)
	assert.Equal(t, "TRM-B", got[1].NoPenerimaan)
	assert.Equal(t, "TRM-C", got[2].NoPenerimaan)
}

// Iterator lazy: berhenti di tengah tidak boleh panic atau terus yield.
func TestExpiryWindow_BerhentiDiTengah(t *testing.T) {
	ref := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []entity.Receipt{
		receiptExpiring("TRM-A", ref.AddDate(0, 0, 1)),
		receiptExpiring("TRM-B", ref.AddDate(0, 0, 2)),
		receiptExpiring("TRM-C", ref.AddDate(0, 0, 3)),
	}

	n := 0
	for range stock.ExpiryWindow(ref, records, 30) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestDaysUntilExpiry(t *testing.T) {
	ref := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, 20, stock.DaysUntilExpiry(ref, ref.AddDate(0, 0, 20)))
	assert.Equal(t, 0, stock.DaysUntilExpiry(ref, ref))
}
