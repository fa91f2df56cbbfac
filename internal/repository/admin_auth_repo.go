package repository

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type Admin struct {
	Email        string
	PasswordHash string
}

type AdminAuthRepository interface {
	GetByEmail(email string) (*Admin, error)
}

// staticAdminRepository serves the single staff account configured through
// ADMIN_EMAIL and ADMIN_PASSWORD_HASH.
type staticAdminRepository struct {
	admin Admin
}

func NewStaticAdminRepository(email, passwordHash string) AdminAuthRepository {
	return &staticAdminRepository{admin: Admin{Email: strings.TrimSpace(email), PasswordHash: passwordHash}}
}

// GetByEmail returns nil, nil when the address is unknown.
func (r *staticAdminRepository) GetByEmail(email string) (*Admin, error) {
	if r.admin.Email == "" || !strings.EqualFold(strings.TrimSpace(email), r.admin.Email) {
		return nil, nil
	}
	admin := r.admin
	return &admin, nil
}

// HashPassword produces the value expected in ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
