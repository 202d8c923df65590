package models

import (
	"database/sql"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is an account on the platform. Administrators are ordinary users
// with the admin flag set; they share the support chat pool.
type User struct {
	ID           uint64 `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	FullName     string
	Age          sql.NullInt64
	Gender       string
	Occupation   string
	Address      string
	Phone        string
	Education    string
	IsAdmin      bool
	ImageFile    string
	CreatedDate  time.Time
	DeletedDate  sql.NullTime
}

// SetPassword hashes the plaintext password onto the user
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// DisplayName is the name shown next to chat messages
func (u *User) DisplayName() string {
	if len(u.FullName) > 0 {
		return u.FullName
	}
	return u.Username
}
