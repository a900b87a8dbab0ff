package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const codeLength = 6

// generateCode produces a 6-digit one-time code, zero-padded.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
