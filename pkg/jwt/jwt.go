package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims berisi claim standar JWT plus field aplikasi. Role disertakan
// agar middleware RBAC bisa memutuskan tanpa query ke DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID      string `json:"user_id"`
	NamaLengkap string `json:"nama_lengkap"`
	Role        string `json:"role"` // "admin" | "gudang" | "distribusi"
}

// Generate membuat token JWT bertanda tangan HS256 yang memuat userID,
// nama lengkap dan role.
func Generate(secret, userID, namaLengkap, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret kosong")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:      userID,
		NamaLengkap: namaLengkap,
		Role:        role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("jwt: sign token: %w", err)
	}
	return signed, nil
}

// Parse memvalidasi token dan mengembalikan userID, namaLengkap dan role.
func Parse(secret, tokenString string) (userID, namaLengkap, role string, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("jwt: metode tanda tangan tidak didukung: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", "", fmt.Errorf("jwt: parse token: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", "", fmt.Errorf("jwt: token tidak valid")
	}
	return claims.UserID, claims.NamaLengkap, claims.Role, nil
}
