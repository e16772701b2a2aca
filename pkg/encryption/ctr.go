package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"errors"
	"hash"
	"io"
)

type ctrKey struct {
	block  cipher.Block
	macKey []byte
}

// ctrEncrypter implements AES-CTR with encrypt-then-MAC.
// Output layout: iv || ciphertext || hmac(iv || ciphertext).
type ctrEncrypter struct {
	hash func() hash.Hash
	keys []ctrKey
}

func newCTR(h func() hash.Hash, secrets []string, keySize int) (*ctrEncrypter, error) {
	e := &ctrEncrypter{hash: h, keys: make([]ctrKey, 0, len(secrets))}

	for _, secret := range secrets {
		encKey, err := deriveKey(h, secret, keySize, "ctr/enc")
		if err != nil {
			return nil, err
		}
		macKey, err := deriveKey(h, secret, h().Size(), "ctr/mac")
		if err != nil {
			return nil, err
		}
		block, err := aes.NewCipher(encKey)
		if err != nil {
			return nil, errors.Join(ErrEncryptionFailed, err)
		}
		e.keys = append(e.keys, ctrKey{block: block, macKey: macKey})
	}

	return e, nil
}

// Encrypt implements Encrypter.
func (e *ctrEncrypter) Encrypt(values map[string]any) (string, error) {
	data, err := marshal(values)
	if err != nil {
		return "", err
	}

	key := e.keys[0]
	out := make([]byte, aes.BlockSize+len(data), aes.BlockSize+len(data)+e.hash().Size())

	iv := out[:aes.BlockSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}

	cipher.NewCTR(key.block, iv).XORKeyStream(out[aes.BlockSize:], data)
	out = append(out, e.sum(key.macKey, out)...)

	return encoding.EncodeToString(out), nil
}

// Decrypt implements Encrypter.
func (e *ctrEncrypter) Decrypt(value string) (map[string]any, error) {
	raw, err := decode(value)
	if err != nil {
		return nil, err
	}

	macSize := e.hash().Size()
	if len(raw) < aes.BlockSize+macSize {
		return nil, ErrInvalidCiphertext
	}

	body, mac := raw[:len(raw)-macSize], raw[len(raw)-macSize:]

	// Try all keys to support rotation.
	for _, key := range e.keys {
		if !hmac.Equal(mac, e.sum(key.macKey, body)) {
			continue
		}
		data := make([]byte, len(body)-aes.BlockSize)
		cipher.NewCTR(key.block, body[:aes.BlockSize]).XORKeyStream(data, body[aes.BlockSize:])
		return unmarshal(data)
	}

	return nil, ErrDecryptionFailed
}

func (e *ctrEncrypter) sum(key, data []byte) []byte {
	m := hmac.New(e.hash, key)
	m.Write(data)
	return m.Sum(nil)
}
