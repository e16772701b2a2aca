package encryption

import (
	"encoding/base64"
	"encoding/gob"
	"errors"
	"time"

	"github.com/gorilla/securecookie"
)

// encoding is cookie-value safe and carries no padding.
var encoding = base64.RawURLEncoding

// serializer keeps the dynamic type of every value, so an int stored in a
// segment reads back as an int and an int64 keeps its full precision.
// Custom types must be registered with gob.Register before they are stored.
var serializer securecookie.Serializer = securecookie.GobEncoder{}

func init() {
	gob.Register(map[string]any{})
	gob.Register([]any{})
	gob.Register(time.Time{})
}

func marshal(values map[string]any) ([]byte, error) {
	if values == nil {
		values = map[string]any{}
	}
	data, err := serializer.Serialize(values)
	if err != nil {
		return nil, errors.Join(ErrInvalidPayload, err)
	}
	return data, nil
}

func unmarshal(data []byte) (map[string]any, error) {
	var values map[string]any
	if err := serializer.Deserialize(data, &values); err != nil {
		return nil, errors.Join(ErrInvalidPayload, err)
	}
	return values, nil
}

func decode(value string) ([]byte, error) {
	raw, err := encoding.DecodeString(value)
	if err != nil {
		return nil, errors.Join(ErrInvalidCiphertext, err)
	}
	return raw, nil
}

// Plain encodes values as base64 gob without any cryptography.
// It is meant for tests and local debugging only.
type Plain struct{}

// Encrypt implements Encrypter.
func (Plain) Encrypt(values map[string]any) (string, error) {
	data, err := marshal(values)
	if err != nil {
		return "", err
	}
	return encoding.EncodeToString(data), nil
}

// Decrypt implements Encrypter.
func (Plain) Decrypt(value string) (map[string]any, error) {
	data, err := decode(value)
	if err != nil {
		return nil, err
	}
	return unmarshal(data)
}
