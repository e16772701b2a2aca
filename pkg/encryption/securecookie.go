package encryption

import (
	"errors"
	"hash"

	"github.com/gorilla/securecookie"
)

// secureCookieName is mixed into the MAC by securecookie.
const secureCookieName = "secretcookie"

// secureCookieEncrypter delegates to gorilla/securecookie: AES-CTR with
// an HMAC over name, timestamp and value.
type secureCookieEncrypter struct {
	codecs []securecookie.Codec
}

func newSecureCookie(h func() hash.Hash, secrets []string) (*secureCookieEncrypter, error) {
	e := &secureCookieEncrypter{codecs: make([]securecookie.Codec, 0, len(secrets))}

	for _, secret := range secrets {
		hashKey, err := deriveKey(h, secret, 64, "securecookie/hash")
		if err != nil {
			return nil, err
		}
		blockKey, err := deriveKey(h, secret, 32, "securecookie/block")
		if err != nil {
			return nil, err
		}

		sc := securecookie.New(hashKey, blockKey).HashFunc(h)
		sc.SetSerializer(serializer)
		// Expiry is governed by the cookie attributes, not the codec.
		sc.MaxAge(0)
		// Size is checked by the transport against the whole Set-Cookie header.
		sc.MaxLength(0)
		e.codecs = append(e.codecs, sc)
	}

	return e, nil
}

// Encrypt implements Encrypter.
func (e *secureCookieEncrypter) Encrypt(values map[string]any) (string, error) {
	if values == nil {
		values = map[string]any{}
	}
	encoded, err := securecookie.EncodeMulti(secureCookieName, values, e.codecs[0])
	if err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}
	return encoded, nil
}

// Decrypt implements Encrypter.
func (e *secureCookieEncrypter) Decrypt(value string) (map[string]any, error) {
	var values map[string]any
	if err := securecookie.DecodeMulti(secureCookieName, value, &values, e.codecs...); err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}
	return values, nil
}
