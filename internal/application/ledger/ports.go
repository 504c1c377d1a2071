package ledger

import (
	"context"

	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
)

// TxRunner menjalankan fn dalam satu transaksi DB, dengan repositori yang
// terikat ke transaksi itu. Cek kecukupan stok dan decrement dengan begitu
// atomik: Commit jika fn sukses, Rollback jika tidak, sehingga kegagalan
// apa pun meninggalkan baris stok tidak berubah.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		receiptRepo repository.ReceiptRepository,
		issueRepo repository.IssueRepository,
	) error) error
}
