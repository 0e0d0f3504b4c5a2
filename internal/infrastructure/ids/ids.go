package ids

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

const (
	fileIDLen    = 16
	shareCodeLen = 8
)

const shareCodeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewFileID returns a 16-hex-char opaque token (64 bits of a fresh random
// UUID). Safe to call concurrently; collisions are handled by the store's
// unique constraint, not here.
func NewFileID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])[:fileIDLen]
}

// NewShareCode returns an 8-char lowercase-alphanumeric code for the legacy
// share-link path.
func NewShareCode() string {
	b := make([]byte, shareCodeLen)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	for i := range b {
		b[i] = shareCodeAlphabet[int(b[i])%len(shareCodeAlphabet)]
	}
	return string(b)
}
