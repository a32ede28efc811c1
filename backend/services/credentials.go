package services

import "golang.org/x/crypto/bcrypt"

// Verifier is the one-way credential primitive used by AuthService.
// Verify reports a plain mismatch as false, never as an error.
type Verifier interface {
	Hash(secret string) (string, error)
	Verify(secret, hash string) bool
}

type BcryptVerifier struct {
	Cost int
}

func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{Cost: bcrypt.DefaultCost}
}

func (v *BcryptVerifier) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), v.Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (v *BcryptVerifier) Verify(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
