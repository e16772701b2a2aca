package encryption

import "errors"

var (
	// Configuration errors
	ErrNoKey             = errors.New("no encryption key provided")
	ErrUnsupportedAlgo   = errors.New("unsupported hash algorithm")
	ErrUnsupportedCipher = errors.New("unsupported cipher")

	// Encryption/decryption errors
	ErrEncryptionFailed  = errors.New("encryption failed")
	ErrDecryptionFailed  = errors.New("decryption failed")
	ErrInvalidCiphertext = errors.New("invalid ciphertext format")
	ErrInvalidPayload    = errors.New("invalid payload")
)
