package entity

import "time"

// Role pengguna. Menentukan aksi yang boleh dilakukan lewat RequireRole.
const (
	RoleAdmin      = "admin"
	RoleGudang     = "gudang"
	RoleDistribusi = "distribusi"
)

// User pengguna sistem.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt, tidak pernah plaintext setelah persist
	NamaLengkap  string
	Role         string // admin, gudang, distribusi
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
