// Package auth menangani login dan registrasi pengguna.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sppg-mbg/inventaris-api/internal/application/dto"
	"github.com/sppg-mbg/inventaris-api/internal/domain"
	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
	"github.com/sppg-mbg/inventaris-api/internal/domain/repository"
	"github.com/sppg-mbg/inventaris-api/pkg/jwt"
)

// UseCase usecase autentikasi. Verifikasi password memakai bcrypt;
// token HS256 dikeluarkan lewat pkg/jwt.
type UseCase struct {
	userRepo      repository.UserRepository
	jwtSecret     string
	jwtIssuer     string
	jwtExpMinutes int
}

// NewUseCase membangun usecase auth.
func NewUseCase(userRepo repository.UserRepository, jwtSecret, jwtIssuer string, jwtExpMinutes int) *UseCase {
	return &UseCase{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		jwtIssuer:     jwtIssuer,
		jwtExpMinutes: jwtExpMinutes,
	}
}

var validRoles = map[string]bool{
	entity.RoleAdmin:      true,
	entity.RoleGudang:     true,
	entity.RoleDistribusi: true,
}

// Login memverifikasi kredensial dan mengembalikan token JWT. Kegagalan
// kredensial apa pun dilaporkan sebagai ErrUnauthorized tanpa membedakan
// username salah dari password salah.
func (uc *UseCase) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username dan password wajib diisi", domain.ErrInvalidInput)
	}

	user, err := uc.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if user.Status != "active" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtSecret, user.ID, user.NamaLengkap, user.Role, uc.jwtIssuer, uc.jwtExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("login: generate token: %w", err)
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:          user.ID,
			Username:    user.Username,
			NamaLengkap: user.NamaLengkap,
			Role:        user.Role,
		},
	}, nil
}

// Register membuat pengguna baru. Hanya dipanggil dari rute ber-role
// admin; validasi role di sini tetap berlaku sebagai pagar kedua.
func (uc *UseCase) Register(req dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || len(req.Password) < 8 || strings.TrimSpace(req.NamaLengkap) == "" {
		return nil, fmt.Errorf("%w: username, nama lengkap, dan password minimal 8 karakter wajib diisi", domain.ErrInvalidInput)
	}
	if !validRoles[req.Role] {
		return nil, fmt.Errorf("%w: role tidak dikenal: %s", domain.ErrInvalidInput, req.Role)
	}

	if _, err := uc.userRepo.FindByUsername(username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		NamaLengkap:  strings.TrimSpace(req.NamaLengkap),
		Role:         req.Role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("register: %w", err)
	}
	return &dto.UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		NamaLengkap: user.NamaLengkap,
		Role:        user.Role,
	}, nil
}
