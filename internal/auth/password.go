package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost of 10 matches the work factor the panel has always used for
// access keys and operator passwords (~100ms per hash).
const bcryptCost = 10

// HashSecret generates a bcrypt hash of the secret with a per-call random salt.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifySecret checks if the provided secret matches the stored hash.
func VerifySecret(hashedSecret, secret string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedSecret), []byte(secret))
	return err == nil
}
