package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomCodeLengthAndAlphabet(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := RandomCode(CodeLength, AccessCodeAlphabet)
		require.Len(t, code, CodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(AccessCodeAlphabet, r),
				"character %q outside alphabet", r)
		}
	}
}

func TestRandomCodeVerificationAlphabet(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := RandomCode(CodeLength, VerificationCodeAlphabet)
		require.Len(t, code, CodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(VerificationCodeAlphabet, r),
				"character %q outside alphabet", r)
		}
	}
}

func TestAlphabets(t *testing.T) {
	// Verification codes are uppercase plus digits only
	assert.Equal(t, strings.ToUpper(VerificationCodeAlphabet), VerificationCodeAlphabet)
	// Access codes allow both cases
	assert.NotEqual(t, strings.ToUpper(AccessCodeAlphabet), AccessCodeAlphabet)
}
