package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"hash"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// aeadEncrypter wraps any AEAD construction.
// Output layout: nonce || sealed payload.
type aeadEncrypter struct {
	aeads []cipher.AEAD
}

func newGCM(h func() hash.Hash, secrets []string, keySize int) (*aeadEncrypter, error) {
	return newAEAD(h, secrets, keySize, "gcm", func(key []byte) (cipher.AEAD, error) {
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return cipher.NewGCM(block)
	})
}

func newChaCha20Poly1305(h func() hash.Hash, secrets []string) (*aeadEncrypter, error) {
	return newAEAD(h, secrets, chacha20poly1305.KeySize, "chacha20poly1305", chacha20poly1305.New)
}

func newAEAD(h func() hash.Hash, secrets []string, keySize int, purpose string, build func([]byte) (cipher.AEAD, error)) (*aeadEncrypter, error) {
	e := &aeadEncrypter{aeads: make([]cipher.AEAD, 0, len(secrets))}

	for _, secret := range secrets {
		key, err := deriveKey(h, secret, keySize, purpose)
		if err != nil {
			return nil, err
		}
		aead, err := build(key)
		if err != nil {
			return nil, errors.Join(ErrEncryptionFailed, err)
		}
		e.aeads = append(e.aeads, aead)
	}

	return e, nil
}

// Encrypt implements Encrypter.
func (e *aeadEncrypter) Encrypt(values map[string]any) (string, error) {
	data, err := marshal(values)
	if err != nil {
		return "", err
	}

	aead := e.aeads[0]
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(data)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}

	return encoding.EncodeToString(aead.Seal(nonce, nonce, data, nil)), nil
}

// Decrypt implements Encrypter.
func (e *aeadEncrypter) Decrypt(value string) (map[string]any, error) {
	raw, err := decode(value)
	if err != nil {
		return nil, err
	}

	for _, aead := range e.aeads {
		if len(raw) < aead.NonceSize()+aead.Overhead() {
			return nil, ErrInvalidCiphertext
		}
		nonce, sealed := raw[:aead.NonceSize()], raw[aead.NonceSize():]
		data, err := aead.Open(nil, nonce, sealed, nil)
		if err == nil {
			return unmarshal(data)
		}
	}

	return nil, ErrDecryptionFailed
}
