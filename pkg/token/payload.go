package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// Encode JSON encodes payload, wraps it in unpadded base64url and signs it.
func Encode[T any](c *Codec, payload T) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Join(ErrInvalidPayload, err)
	}

	return c.Sign(base64.RawURLEncoding.EncodeToString(data)), nil
}

// Decode verifies tok and decodes its JSON payload into T.
func Decode[T any](c *Codec, tok string) (T, error) {
	var payload T

	encoded, ok := c.Unsign(tok)
	if !ok {
		return payload, ErrInvalidToken
	}

	data, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return payload, errors.Join(ErrInvalidPayload, err)
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, errors.Join(ErrInvalidPayload, err)
	}

	return payload, nil
}
