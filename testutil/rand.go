package testutil

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/brianvoe/gofakeit/v7"
)

// RandomAlphaNum generates random alphanumeric string
// in case length <= 0 it returns empty string
func RandomAlphaNum(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	if length <= 0 {
		return "", fmt.Errorf("length must be greater than 0")
	}

	randomString := make([]byte, length)
	for i := range randomString {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		randomString[i] = charset[num.Int64()]
	}

	return string(randomString), nil
}

// RandomAsset returns an asset identifier of the "name-uuid" shape the
// service stores.
func RandomAsset() string {
	return fmt.Sprintf("%s-%s", gofakeit.Word(), gofakeit.UUID())
}

// RandomAccountKey returns a plausible ledger account key.
func RandomAccountKey() string {
	return gofakeit.LetterN(40)
}

// RandomPositiveAmount returns an amount in [1, max].
func RandomPositiveAmount(max uint64) uint64 {
	return gofakeit.Uint64()%max + 1
}
