package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sppg-mbg/inventaris-api/internal/application/auth"
	"github.com/sppg-mbg/inventaris-api/internal/application/dto"
	"github.com/sppg-mbg/inventaris-api/internal/domain"
	"github.com/sppg-mbg/inventaris-api/internal/domain/entity"
	pkgjwt "github.com/sppg-mbg/inventaris-api/pkg/jwt"
)

type memUserRepo struct {
	byUsername map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byUsername: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(u *entity.User) error {
	if _, ok := r.byUsername[u.Username]; ok {
		return domain.ErrDuplicate
	}
	cp := *u
	r.byUsername[u.Username] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByUsername(username string) (*entity.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

const (
	testSecret = "secret-uji"
	testIssuer = "inventaris-test"
)

func seedUser(t *testing.T, repo *memUserRepo, username, password, role, status string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(&entity.User{
		ID:           "u-" + username,
		Username:     username,
		PasswordHash: string(hash),
		NamaLengkap:  "Petugas " + username,
		Role:         role,
		Status:       status,
	}))
}

func TestLogin_Sukses(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "gudang1", "rahasia-123", entity.RoleGudang, "active")
	uc := auth.NewUseCase(repo, testSecret, testIssuer, 60)

	resp, err := uc.Login(dto.LoginRequest{Username: "gudang1", Password: "rahasia-123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "gudang1", resp.User.Username)
	assert.Equal(t, entity.RoleGudang, resp.User.Role)

	userID, _, role, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-gudang1", userID)
	assert.Equal(t, entity.RoleGudang, role)
}

func TestLogin_PasswordSalah(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "gudang1", "rahasia-123", entity.RoleGudang, "active")
	uc := auth.NewUseCase(repo, testSecret, testIssuer, 60)

	_, err := uc.Login(dto.LoginRequest{Username: "gudang1", Password: "salah"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsernameTidakDikenal(t *testing.T) {
	uc := auth.NewUseCase(newMemUserRepo(), testSecret, testIssuer, 60)

	// Username salah dan password salah harus tidak bisa dibedakan.
	_, err := uc.Login(dto.LoginRequest{Username: "hantu", Password: "apa-saja"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_PenggunaNonaktif(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "lama", "rahasia-123", entity.RoleAdmin, "inactive")
	uc := auth.NewUseCase(repo, testSecret, testIssuer, 60)

	_, err := uc.Login(dto.LoginRequest{Username: "lama", Password: "rahasia-123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_InputKosong(t *testing.T) {
	uc := auth.NewUseCase(newMemUserRepo(), testSecret, testIssuer, 60)

	_, err := uc.Login(dto.LoginRequest{Username: "", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_Sukses(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewUseCase(repo, testSecret, testIssuer, 60)

	user, err := uc.Register(dto.RegisterRequest{
		Username:    "distribusi1",
		Password:    "rahasia-123",
		NamaLengkap: "Petugas Distribusi",
		Role:        entity.RoleDistribusi,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, entity.RoleDistribusi, user.Role)

	// Hash yang tersimpan harus memverifikasi password aslinya.
	stored, err := repo.FindByUsername("distribusi1")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("rahasia-123")))
	assert.NotEqual(t, "rahasia-123", stored.PasswordHash)
}

func TestRegister_UsernameSudahDipakai(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo, "gudang1", "rahasia-123", entity.RoleGudang, "active")
	uc := auth.NewUseCase(repo, testSecret, testIssuer, 60)

	_, err := uc.Register(dto.RegisterRequest{
		Username:    "gudang1",
		Password:    "rahasia-lain",
		NamaLengkap: "Petugas Kembar",
		Role:        entity.RoleGudang,
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegister_RoleTidakDikenal(t *testing.T) {
	uc := auth.NewUseCase(newMemUserRepo(), testSecret, testIssuer, 60)

	_, err := uc.Register(dto.RegisterRequest{
		Username:    "aneh",
		Password:    "rahasia-123",
		NamaLengkap: "Role Aneh",
		Role:        "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_PasswordTerlaluPendek(t *testing.T) {
	uc := auth.NewUseCase(newMemUserRepo(), testSecret, testIssuer, 60)

	_, err := uc.Register(dto.RegisterRequest{
		Username:    "pendek",
		Password:    "1234567",
		NamaLengkap: "Password Pendek",
		Role:        entity.RoleGudang,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
