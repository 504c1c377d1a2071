package domain

import "errors"

// Error domain (tanpa dependensi eksternal). Handler HTTP memetakan
// error ini ke status code; error infrastruktur dibungkus dengan %w
// sehingga tetap bisa dibedakan dari kegagalan aturan bisnis.
var (
	ErrNotFound          = errors.New("data tidak ditemukan")
	ErrInvalidInput      = errors.New("input tidak valid")
	ErrInvalidQuantity   = errors.New("jumlah harus lebih besar dari nol")
	ErrMaterialInactive  = errors.New("bahan sudah nonaktif")
	ErrInsufficientStock = errors.New("stok tidak mencukupi")
	ErrDuplicate         = errors.New("data sudah ada")
	ErrUnauthorized      = errors.New("tidak terautentikasi")
	ErrForbidden         = errors.New("akses ditolak")
	ErrUserNotFound      = errors.New("pengguna tidak ditemukan")
	ErrUsernameTaken     = errors.New("username sudah terdaftar")
)
