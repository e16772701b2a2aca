package encryption

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the size of keys produced by GenerateKey.
	KeySize = 32

	// saltInfo provides domain separation for derived keys.
	saltInfo = "secretcookie-v1/"
)

// deriveKey stretches secret into size bytes bound to purpose.
// Distinct purposes yield independent keys from the same secret.
func deriveKey(h func() hash.Hash, secret string, size int, purpose string) ([]byte, error) {
	r := hkdf.New(h, []byte(secret), nil, []byte(saltInfo+purpose))

	key := make([]byte, size)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	return key, nil
}

// GenerateKey returns a random base64-encoded key suitable for Config.Keys.
func GenerateKey() (string, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}
