package encryption

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"slices"
	"strings"
)

// Supported hash algorithms.
const (
	AlgoSHA256 = "SHA256"
	AlgoSHA384 = "SHA384"
	AlgoSHA512 = "SHA512"
)

// Supported ciphers.
const (
	CipherAES128CTR        = "AES-128-CTR"
	CipherAES192CTR        = "AES-192-CTR"
	CipherAES256CTR        = "AES-256-CTR"
	CipherAES128GCM        = "AES-128-GCM"
	CipherAES192GCM        = "AES-192-GCM"
	CipherAES256GCM        = "AES-256-GCM"
	CipherChaCha20Poly1305 = "CHACHA20-POLY1305"
	CipherSecureCookie     = "SECURECOOKIE"
)

// Encrypter turns a value set into an opaque cookie-safe string and back.
type Encrypter interface {
	// Encrypt serializes and encrypts values.
	Encrypt(values map[string]any) (string, error)
	// Decrypt reverses Encrypt. Any tampering, truncation or key mismatch
	// results in an error.
	Decrypt(value string) (map[string]any, error)
}

// Config selects and keys an Encrypter.
type Config struct {
	// Algo names the hash used for key derivation and message authentication.
	Algo string
	// Cipher names the encryption scheme.
	Cipher string
	// Keys holds the secret key material. The first key encrypts,
	// all keys are tried when decrypting.
	Keys []string
}

// New creates the Encrypter described by cfg.
// Algorithm and cipher names are case-insensitive.
func New(cfg Config) (Encrypter, error) {
	keys := slices.DeleteFunc(slices.Clone(cfg.Keys), func(k string) bool { return k == "" })
	if len(keys) == 0 {
		return nil, ErrNoKey
	}

	h, err := hashFunc(cfg.Algo)
	if err != nil {
		return nil, err
	}

	switch normalize(cfg.Cipher) {
	case CipherAES128CTR:
		return newCTR(h, keys, 16)
	case CipherAES192CTR:
		return newCTR(h, keys, 24)
	case CipherAES256CTR:
		return newCTR(h, keys, 32)
	case CipherAES128GCM:
		return newGCM(h, keys, 16)
	case CipherAES192GCM:
		return newGCM(h, keys, 24)
	case CipherAES256GCM:
		return newGCM(h, keys, 32)
	case CipherChaCha20Poly1305:
		return newChaCha20Poly1305(h, keys)
	case CipherSecureCookie:
		return newSecureCookie(h, keys)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCipher, cfg.Cipher)
	}
}

func hashFunc(algo string) (func() hash.Hash, error) {
	switch strings.ReplaceAll(normalize(algo), "-", "") {
	case AlgoSHA256:
		return sha256.New, nil
	case AlgoSHA384:
		return sha512.New384, nil
	case AlgoSHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgo, algo)
	}
}

func normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
