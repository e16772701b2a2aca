// Package encryption provides the Encrypter implementations used to seal a
// segment's value set into a cookie value.
//
// An Encrypter serializes a map[string]any with encoding/gob
// (gorilla/securecookie's GobEncoder), encrypts it and encodes
// the result with unpadded URL-safe base64 so it can be stored verbatim as a
// cookie value. Decrypt reverses the process and fails on any tampering,
// truncation or key mismatch.
//
// # Architecture
//
// New selects a provider from Config.Cipher and derives independent keys per
// purpose from every configured secret with HKDF, using the hash named by
// Config.Algo:
//
//   - AES-128-CTR, AES-192-CTR, AES-256-CTR: AES in counter mode with
//     encrypt-then-MAC (HMAC over iv and ciphertext).
//   - AES-128-GCM, AES-192-GCM, AES-256-GCM: AES-GCM with a random nonce.
//   - CHACHA20-POLY1305: golang.org/x/crypto/chacha20poly1305.
//   - SECURECOOKIE: github.com/gorilla/securecookie with the same gob serializer.
//
// Supported hash algorithms are SHA256, SHA384 and SHA512. Names are matched
// case-insensitively.
//
// Multiple keys enable rotation: the first key encrypts, every key is tried
// when decrypting.
//
// # Usage
//
//	enc, err := encryption.New(encryption.Config{
//	    Algo:   encryption.AlgoSHA256,
//	    Cipher: encryption.CipherAES256CTR,
//	    Keys:   []string{os.Getenv("SEGMENT_KEY")},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	value, err := enc.Encrypt(map[string]any{"username": "john"})
//	values, err := enc.Decrypt(value)
//
// Plain is an identity provider (base64 gob) for tests.
//
// # Error Handling
//
// Construction fails with ErrNoKey, ErrUnsupportedAlgo or
// ErrUnsupportedCipher. Decrypt returns errors matching ErrInvalidCiphertext,
// ErrDecryptionFailed or ErrInvalidPayload. Use errors.Is to inspect them.
//
// Values keep their dynamic type across a round trip: an int reads back as an
// int, an int64 as an int64. map[string]any, []any and time.Time are
// registered; any other non-basic type must be registered with gob.Register
// before it is stored, otherwise Encrypt fails with ErrInvalidPayload.
package encryption
