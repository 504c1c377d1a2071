package stock

import (
	"iter"
	"sort"
	"time"

	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
)

// DefaultExpiryWindowDays jendela peringatan dini kadaluarsa.
const DefaultExpiryWindowDays = 30

// ExpiryWindow mengembalikan urutan lazy penerimaan yang tanggal
// kadaluarsanya jatuh dalam [ref, ref+windowDays], menaik berdasarkan
// tanggal kadaluarsa. Penerimaan tanpa tanggal kadaluarsa dilewati.
// windowDays <= 0 memakai DefaultExpiryWindowDays.
func ExpiryWindow(ref time.Time, receipts []entity.Receipt, windowDays int) iter.Seq[entity.Receipt] {
	if windowDays <= 0 {
		windowDays = DefaultExpiryWindowDays
	}
	start := ref.Truncate(24 * time.Hour)
	end := start.AddDate(0, 0, windowDays)

	return func(yield func(entity.Receipt) bool) {
		in := make([]entity.Receipt, 0, len(receipts))
		for _, r := range receipts {
			if r.TanggalKadaluarsa == nil {
				continue
			}
			exp := r.TanggalKadaluarsa.Truncate(24 * time.Hour)
			if exp.Before(start) || exp.After(end) {
				continue
			}
			in = append(in, r)
		}
		sort.SliceStable(in, func(i, j int) bool {
			return in[i].TanggalKadaluarsa.Before(*in[j].TanggalKadaluarsa)
		})
		for _, r := range in {
			if !yield(r) {
				return
			}
		}
	}
}

// DaysUntilExpiry jumlah hari kalender dari ref ke tanggal kadaluarsa.
func DaysUntilExpiry(ref, expiry time.Time) int {
	return int(expiry.Truncate(24*time.Hour).Sub(ref.Truncate(24*time.Hour)) / (24 * time.Hour))
}
