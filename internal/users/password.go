package users

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost balances hashing time against brute-force resistance.
const DefaultBcryptCost = 12

// PasswordHasher hashes and verifies login passwords. The legacy backend
// compared plaintext credentials; every stored credential here is a bcrypt
// hash instead.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a PasswordHasher with the given bcrypt cost.
// Non-positive cost falls back to DefaultBcryptCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash generates a bcrypt hash of the given password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify checks whether the password matches the stored hash.
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
