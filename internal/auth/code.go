package auth

import "math/rand"

// Alphabets for the two code kinds issued at client registration.
const (
	// AccessCodeAlphabet is used for the access code handed to the
	// responsible person (stored only as a bcrypt hash).
	AccessCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// VerificationCodeAlphabet is used for the out-of-band verification
	// code (stored in plaintext).
	VerificationCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// CodeLength is the fixed length of generated codes.
const CodeLength = 15

// RandomCode returns a code of n characters drawn uniformly with
// replacement from alphabet. Codes are identifiers, not cryptographic
// material; collision risk at this length is accepted.
func RandomCode(n int, alphabet string) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}
