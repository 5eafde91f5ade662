package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/dmitrymomot/keygrip/pkg/signer"
)

const (
	// KeySize is the default key size, matching the SHA-256 block output.
	KeySize = 32

	// saltInfo provides domain separation for derived keys.
	saltInfo = "keygrip-signing-v1"
)

// GenerateKey returns size random bytes. A non-positive size means KeySize.
func GenerateKey(size int) (signer.Key, error) {
	if size <= 0 {
		size = KeySize
	}
	key := make([]byte, size)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveKeys derives one KeySize key per label from master.
// The same master and label always yield the same key.
func DeriveKeys(master []byte, labels ...string) ([]signer.Key, error) {
	if len(master) == 0 {
		return nil, ErrInvalidMasterKey
	}

	keys := make([]signer.Key, len(labels))
	for i, label := range labels {
		r := hkdf.New(sha256.New, master, []byte(saltInfo), []byte(label))
		key := make([]byte, KeySize)
		if _, err := io.ReadFull(r, key); err != nil {
			return nil, errors.Join(ErrKeyDerivationFailed, err)
		}
		keys[i] = key
	}
	return keys, nil
}

// EncodeKey renders a key as unpadded base64url.
func EncodeKey(k signer.Key) string {
	return base64.RawURLEncoding.EncodeToString(k)
}

// DecodeKey parses a key produced by EncodeKey.
func DecodeKey(s string) (signer.Key, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Join(ErrInvalidEncodedKey, err)
	}
	if len(b) == 0 {
		return nil, ErrInvalidEncodedKey
	}
	return b, nil
}
