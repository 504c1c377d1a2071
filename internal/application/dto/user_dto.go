package dto

// LoginRequest body POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token plus profil singkat.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterRequest body POST /api/auth/register (hanya admin).
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	NamaLengkap string `json:"nama_lengkap"`
	Role        string `json:"role"`
}

// UserResponse profil pengguna tanpa kredensial.
type UserResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	NamaLengkap string `json:"nama_lengkap"`
	Role        string `json:"role"`
}
