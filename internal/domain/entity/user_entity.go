package entity

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/UmerKhan-18/TodoApp/pkg/helpers"
)

// User is the aggregate root for the account domain.
// Password only ever holds a bcrypt hash; SetPassword is the single write
// path for it, so no caller can persist a plaintext password by accident.
type User struct {
	ID        string
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SetPassword hashes plain and stores the hash.
func (u *User) SetPassword(plain string) error {
	return u.setPasswordCost(plain, bcrypt.DefaultCost)
}

// SetPasswordCost is SetPassword with an explicit bcrypt cost; tests pass
// bcrypt.MinCost to keep hashing fast.
func (u *User) SetPasswordCost(plain string, cost int) error {
	return u.setPasswordCost(plain, cost)
}

func (u *User) setPasswordCost(plain string, cost int) error {
	hash, err := helpers.HashPasswordCost(plain, cost)
	if err != nil {
		return err
	}
	u.Password = hash
	return nil
}

// ComparePassword reports whether candidate matches the stored hash.
func (u *User) ComparePassword(candidate string) bool {
	return helpers.CompareHashAndPassword(u.Password, candidate)
}
