package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sppg-mbg/inventaris-api/internal/application/dto"
	"github.com/sppg-mbg/inventaris-api/pkg/jwt"
)

// Kunci Locals yang diisi AuthMiddleware.
const (
	LocalUserID      = "user_id"
	LocalNamaLengkap = "nama_lengkap"
	LocalRole        = "role"
)

// AuthMiddleware memvalidasi Bearer token JWT dan menaruh klaim pengguna
// di c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization wajib diisi"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token kosong"})
		}
		userID, namaLengkap, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token tidak valid atau kadaluarsa"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalNamaLengkap, namaLengkap)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole mengizinkan request hanya jika role di token termasuk
// allowedRoles. Token tanpa klaim role ditolak 401, role yang tidak
// diizinkan ditolak 403.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token tanpa klaim role"})
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "role " + role + " tidak berwenang untuk aksi ini"})
	}
}

// GetUserID mengembalikan UserID dari konteks (setelah AuthMiddleware).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetNamaLengkap mengembalikan nama lengkap pengguna dari konteks.
func GetNamaLengkap(c *fiber.Ctx) string {
	return localString(c, LocalNamaLengkap)
}

// GetRole mengembalikan role pengguna dari konteks.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
