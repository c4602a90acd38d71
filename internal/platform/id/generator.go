package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// rawIDBytes sets the entropy of generated IDs; 16 bytes encodes to a
// 32-character hex string.
const rawIDBytes = 16

// Generator creates opaque IDs. The HTTP layer uses these for request
// correlation IDs; they carry no ordering or timestamp information.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator produces hex-encoded IDs from crypto/rand.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, rawIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
