package service

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword membuat hash bcrypt dari password plaintext.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword membandingkan hash tersimpan dengan password plaintext.
func CheckPassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
