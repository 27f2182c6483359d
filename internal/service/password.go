package service

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()_+-="

// HashPassword hashes a plaintext credential with the given bcrypt cost.
// A cost below bcrypt.MinCost falls back to the library default.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GeneratePassword produces a random credential of the given length from
// a mixed-character alphabet. The result always contains a lowercase
// letter, an uppercase letter and a digit so it passes credential
// validation. Returned once to the caller, never stored.
func GeneratePassword(length int) (string, error) {
	if length < 4 {
		length = 12
	}

	pools := []string{
		"abcdefghijklmnopqrstuvwxyz",
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		"0123456789",
	}

	out := make([]byte, length)
	for i := range out {
		c, err := randomByte(passwordCharset)
		if err != nil {
			return "", err
		}
		out[i] = c
	}

	// Overwrite distinct random positions with one character per
	// required class.
	positions, err := distinctPositions(length, len(pools))
	if err != nil {
		return "", err
	}
	for i, pool := range pools {
		c, err := randomByte(pool)
		if err != nil {
			return "", err
		}
		out[positions[i]] = c
	}
	return string(out), nil
}

func randomByte(pool string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
	if err != nil {
		return 0, fmt.Errorf("generate password: %w", err)
	}
	return pool[n.Int64()], nil
}

func distinctPositions(length, count int) ([]int, error) {
	perm := make([]int, length)
	for i := range perm {
		perm[i] = i
	}
	for i := length - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return nil, fmt.Errorf("generate password: %w", err)
		}
		j := int(n.Int64())
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm[:count], nil
}
