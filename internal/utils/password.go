package utils

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt cost factor used for new hashes. The cost
// and the salt are embedded in the produced hash, so changing it does not
// invalidate existing hashes.
const PasswordHashCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt hash of password.
//
// The result is self-describing (algorithm, cost and salt are encoded in
// it), so no separate salt needs to be stored. Passwords longer than 72
// bytes are rejected by bcrypt and returned as an error.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether password matches hash. The comparison is
// constant-time; a malformed hash simply yields false.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// CheckPasswordAgainstDummy spends the same bcrypt work as [CheckPassword]
// and always returns false. Login calls it for unknown usernames so that
// response time does not reveal whether the account exists.
func CheckPasswordAgainstDummy(password string) bool {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("circuit-records-dummy-password"), PasswordHashCost)
	})

	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
	return false
}
