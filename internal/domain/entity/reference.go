package entity

import "time"

// Category kategori bahan (tabel kategori_bahan). Tabel lookup kecil,
// tanpa lifecycle selain create/list.
type Category struct {
	ID        string
	Nama      string
	Keterangan string
	CreatedAt time.Time
}

// Unit satuan ukur bahan (tabel satuan).
type Unit struct {
	ID        string
	Nama      string // kg, liter, pcs, ...
	CreatedAt time.Time
}
