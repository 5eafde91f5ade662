package signer

// Signer produces and checks digests for text values.
type Signer interface {
	Sign(data string) string
	Verify(data, digest string) bool
}

// Indexer reports which key produced a digest.
// It returns -1 when no key matches.
type Indexer interface {
	Index(data, digest string) int
}

// Key is secret HMAC key material.
type Key []byte

// Keys converts secrets to keys, preserving order.
func Keys(secrets ...string) []Key {
	keys := make([]Key, len(secrets))
	for i, s := range secrets {
		keys[i] = Key(s)
	}
	return keys
}

func (k Key) clone() Key {
	return append(Key(nil), k...)
}
