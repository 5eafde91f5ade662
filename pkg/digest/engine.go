package digest

import (
	"crypto/hmac"
	"crypto/subtle"
	"hash"
)

// Engine produces HMAC digests for a fixed algorithm and encoding.
type Engine struct {
	alg     Algorithm
	enc     Encoding
	newHash func() hash.Hash
	encode  func([]byte) string
}

// New returns an Engine for the given algorithm and encoding.
// Empty names select DefaultAlgorithm and DefaultEncoding.
func New(alg Algorithm, enc Encoding) (*Engine, error) {
	alg, err := ParseAlgorithm(string(alg))
	if err != nil {
		return nil, err
	}
	enc, err = ParseEncoding(string(enc))
	if err != nil {
		return nil, err
	}

	return &Engine{
		alg:     alg,
		enc:     enc,
		newHash: hashes[alg],
		encode:  encoders[enc],
	}, nil
}

// Default returns an Engine using HMAC-SHA256 and unpadded URL-safe base64.
func Default() *Engine {
	return &Engine{
		alg:     DefaultAlgorithm,
		enc:     DefaultEncoding,
		newHash: hashes[DefaultAlgorithm],
		encode:  encoders[DefaultEncoding],
	}
}

func (e *Engine) Algorithm() Algorithm { return e.alg }

func (e *Engine) Encoding() Encoding { return e.enc }

// Sign returns the encoded HMAC of data under key.
func (e *Engine) Sign(key, data []byte) string {
	mac := hmac.New(e.newHash, key)
	mac.Write(data)
	return e.encode(mac.Sum(nil))
}

// SignString is Sign for a text payload.
func (e *Engine) SignString(key []byte, data string) string {
	return e.Sign(key, []byte(data))
}

// Equal reports whether two digests are identical.
// Lengths are compared first; buffers of equal length are compared in
// constant time so the position of the first mismatch is not observable.
func Equal(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
