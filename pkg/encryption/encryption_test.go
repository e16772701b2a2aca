package encryption_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/secretcookie/pkg/encryption"
)

var allCiphers = []string{
	encryption.CipherAES128CTR,
	encryption.CipherAES192CTR,
	encryption.CipherAES256CTR,
	encryption.CipherAES128GCM,
	encryption.CipherAES192GCM,
	encryption.CipherAES256GCM,
	encryption.CipherChaCha20Poly1305,
	encryption.CipherSecureCookie,
}

func newEncrypter(t *testing.T, cipher string, keys ...string) encryption.Encrypter {
	t.Helper()
	enc, err := encryption.New(encryption.Config{
		Algo:   encryption.AlgoSHA256,
		Cipher: cipher,
		Keys:   keys,
	})
	require.NoError(t, err)
	return enc
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     encryption.Config
		wantErr error
	}{
		{
			name:    "no keys",
			cfg:     encryption.Config{Algo: "SHA256", Cipher: "AES-256-CTR"},
			wantErr: encryption.ErrNoKey,
		},
		{
			name:    "only empty keys",
			cfg:     encryption.Config{Algo: "SHA256", Cipher: "AES-256-CTR", Keys: []string{"", ""}},
			wantErr: encryption.ErrNoKey,
		},
		{
			name:    "unsupported algo",
			cfg:     encryption.Config{Algo: "MD5", Cipher: "AES-256-CTR", Keys: []string{"secret"}},
			wantErr: encryption.ErrUnsupportedAlgo,
		},
		{
			name:    "unsupported cipher",
			cfg:     encryption.Config{Algo: "SHA256", Cipher: "DES-CBC", Keys: []string{"secret"}},
			wantErr: encryption.ErrUnsupportedCipher,
		},
		{
			name: "case-insensitive names",
			cfg:  encryption.Config{Algo: "sha-512", Cipher: " aes-128-gcm ", Keys: []string{"secret"}},
		},
		{
			name: "sha384",
			cfg:  encryption.Config{Algo: "SHA384", Cipher: "chacha20-poly1305", Keys: []string{"secret"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			enc, err := encryption.New(tt.cfg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, enc)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, enc)
		})
	}
}

func TestEncryptDecrypt(t *testing.T) {
	t.Parallel()

	values := map[string]any{
		"username": "muhammetsafak",
		"mail":     "info@muhammetsafak.com.tr",
		"unicode":  "Hello 世界 🌍",
		"flag":     true,
		"count":    42,
		"id":       int64(math.MaxInt64 - 1),
		"ratio":    0.5,
		"list":     []any{"x", 1},
		"nested":   map[string]any{"a": "b"},
		"empty":    nil,
	}

	for _, cipher := range allCiphers {
		t.Run(cipher, func(t *testing.T) {
			t.Parallel()
			enc := newEncrypter(t, cipher, "SecretCookie")

			value, err := enc.Encrypt(values)
			require.NoError(t, err)
			assert.NotContains(t, value, "muhammetsafak", "value must not leak plaintext")

			got, err := enc.Decrypt(value)
			require.NoError(t, err)
			assert.Equal(t, values, got)
		})
	}
}

func TestEncrypt_Randomized(t *testing.T) {
	t.Parallel()

	for _, cipher := range allCiphers {
		t.Run(cipher, func(t *testing.T) {
			t.Parallel()
			enc := newEncrypter(t, cipher, "SecretCookie")

			first, err := enc.Encrypt(map[string]any{"a": "1"})
			require.NoError(t, err)
			second, err := enc.Encrypt(map[string]any{"a": "1"})
			require.NoError(t, err)

			assert.NotEqual(t, first, second, "same plaintext must not produce the same value")
		})
	}
}

func TestEncrypt_EmptyValues(t *testing.T) {
	t.Parallel()

	for _, cipher := range allCiphers {
		t.Run(cipher, func(t *testing.T) {
			t.Parallel()
			enc := newEncrypter(t, cipher, "SecretCookie")

			value, err := enc.Encrypt(nil)
			require.NoError(t, err)

			got, err := enc.Decrypt(value)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestEncryptDecrypt_KeepsTypes(t *testing.T) {
	t.Parallel()
	enc := newEncrypter(t, encryption.CipherAES256CTR, "SecretCookie")

	value, err := enc.Encrypt(map[string]any{"visits": 3, "id": int64(math.MaxInt64 - 1)})
	require.NoError(t, err)

	got, err := enc.Decrypt(value)
	require.NoError(t, err)
	assert.IsType(t, 0, got["visits"])
	assert.Equal(t, 3, got["visits"])
	assert.IsType(t, int64(0), got["id"])
	assert.Equal(t, int64(math.MaxInt64-1), got["id"])
}

func TestEncrypt_UnregisteredType(t *testing.T) {
	t.Parallel()
	type point struct{ X, Y int }
	enc := newEncrypter(t, encryption.CipherAES256GCM, "SecretCookie")

	_, err := enc.Encrypt(map[string]any{"p": point{1, 2}})
	require.ErrorIs(t, err, encryption.ErrInvalidPayload)
}

func TestEncrypt_UnserializableValue(t *testing.T) {
	t.Parallel()
	enc := newEncrypter(t, encryption.CipherAES256CTR, "SecretCookie")

	_, err := enc.Encrypt(map[string]any{"ch": make(chan int)})
	require.ErrorIs(t, err, encryption.ErrInvalidPayload)
}

func TestDecrypt_WrongKey(t *testing.T) {
	t.Parallel()

	for _, cipher := range allCiphers {
		t.Run(cipher, func(t *testing.T) {
			t.Parallel()
			value, err := newEncrypter(t, cipher, "first-secret").Encrypt(map[string]any{"a": "1"})
			require.NoError(t, err)

			got, err := newEncrypter(t, cipher, "second-secret").Decrypt(value)
			require.Error(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestDecrypt_Tampered(t *testing.T) {
	t.Parallel()

	for _, cipher := range allCiphers {
		t.Run(cipher, func(t *testing.T) {
			t.Parallel()
			enc := newEncrypter(t, cipher, "SecretCookie")
			value, err := enc.Encrypt(map[string]any{"role": "user"})
			require.NoError(t, err)

			tests := map[string]string{
				"truncated":    value[:len(value)/2],
				"empty":        "",
				"not base64":   "%%%not-base64%%%",
				"flipped char": flip(value, len(value)/2),
			}
			for name, tampered := range tests {
				got, err := enc.Decrypt(tampered)
				assert.Error(t, err, name)
				assert.Nil(t, got, name)
			}
		})
	}
}

func TestDecrypt_ErrorKinds(t *testing.T) {
	t.Parallel()
	enc := newEncrypter(t, encryption.CipherAES256CTR, "SecretCookie")

	_, err := enc.Decrypt("!!!")
	assert.ErrorIs(t, err, encryption.ErrInvalidCiphertext)

	_, err = enc.Decrypt("c2hvcnQ")
	assert.ErrorIs(t, err, encryption.ErrInvalidCiphertext)

	value, err := newEncrypter(t, encryption.CipherAES256CTR, "other").Encrypt(map[string]any{"a": "1"})
	require.NoError(t, err)
	_, err = enc.Decrypt(value)
	assert.ErrorIs(t, err, encryption.ErrDecryptionFailed)
}

func TestKeyRotation(t *testing.T) {
	t.Parallel()

	for _, cipher := range allCiphers {
		t.Run(cipher, func(t *testing.T) {
			t.Parallel()
			old := newEncrypter(t, cipher, "old-secret")
			rotated := newEncrypter(t, cipher, "new-secret", "old-secret")

			legacy, err := old.Encrypt(map[string]any{"a": "1"})
			require.NoError(t, err)

			got, err := rotated.Decrypt(legacy)
			require.NoError(t, err, "values sealed with a previous key must still open")
			assert.Equal(t, map[string]any{"a": "1"}, got)

			fresh, err := rotated.Encrypt(map[string]any{"b": "2"})
			require.NoError(t, err)
			_, err = old.Decrypt(fresh)
			assert.Error(t, err, "new values are sealed with the first key")
		})
	}
}

func TestCiphersAreNotInterchangeable(t *testing.T) {
	t.Parallel()
	value, err := newEncrypter(t, encryption.CipherAES256CTR, "SecretCookie").Encrypt(map[string]any{"a": "1"})
	require.NoError(t, err)

	_, err = newEncrypter(t, encryption.CipherAES256GCM, "SecretCookie").Decrypt(value)
	assert.Error(t, err)
}

func TestPlain(t *testing.T) {
	t.Parallel()
	var enc encryption.Encrypter = encryption.Plain{}

	value, err := enc.Encrypt(map[string]any{"a": "1"})
	require.NoError(t, err)

	got, err := enc.Decrypt(value)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "1"}, got)

	_, err = enc.Decrypt("bm90LWpzb24")
	assert.True(t, errors.Is(err, encryption.ErrInvalidPayload))
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()
	first, err := encryption.GenerateKey()
	require.NoError(t, err)
	second, err := encryption.GenerateKey()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, first, 44)
	assert.False(t, strings.ContainsAny(first, " \n"))
}

func flip(s string, i int) string {
	b := []byte(s)
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}
	return string(b)
}
