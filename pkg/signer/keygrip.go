package signer

import (
	"fmt"

	"github.com/dmitrymomot/keygrip/pkg/digest"
)

var (
	_ Signer  = (*KeyGrip)(nil)
	_ Indexer = (*KeyGrip)(nil)
)

// KeyGrip signs with the first of an ordered list of keys and verifies
// against all of them.
type KeyGrip struct {
	keys   []Key
	engine *digest.Engine
}

// NewKeyGrip builds a rotation signer. keys[0] is the current key.
// The slice and the keys are copied, so later changes by the caller have no effect.
func NewKeyGrip(keys []Key, opts ...Option) (*KeyGrip, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: no keys", ErrInvalidKeyList)
	}

	owned := make([]Key, len(keys))
	for i, k := range keys {
		if len(k) == 0 {
			return nil, fmt.Errorf("%w: key %d is empty", ErrInvalidKeyList, i)
		}
		owned[i] = k.clone()
	}

	engine, err := newEngine(opts)
	if err != nil {
		return nil, err
	}

	return &KeyGrip{keys: owned, engine: engine}, nil
}

// Sign returns the digest of data under the current key.
func (g *KeyGrip) Sign(data string) string {
	return g.engine.SignString(g.keys[0], data)
}

// Verify reports whether tag was produced for data by any key in the list.
func (g *KeyGrip) Verify(data, tag string) bool {
	return g.Index(data, tag) != -1
}

// Index returns the position of the key that produced tag for data:
// 0 for the current key, a positive value for a retired key, -1 for no match.
// Keys are tried in order and the scan stops at the first match.
func (g *KeyGrip) Index(data, tag string) int {
	payload := []byte(data)
	for i, k := range g.keys {
		if digest.Equal(g.engine.Sign(k, payload), tag) {
			return i
		}
	}
	return -1
}

// Len returns the number of keys, current one included.
func (g *KeyGrip) Len() int { return len(g.keys) }

// Keys returns a copy of the key list in rotation order.
func (g *KeyGrip) Keys() []Key {
	out := make([]Key, len(g.keys))
	for i, k := range g.keys {
		out[i] = k.clone()
	}
	return out
}

func (g *KeyGrip) Algorithm() digest.Algorithm { return g.engine.Algorithm() }

func (g *KeyGrip) Encoding() digest.Encoding { return g.engine.Encoding() }

// Rotate returns a new KeyGrip with key as the current key followed by the
// keys of g. When keep is positive the list is truncated to keep entries,
// dropping the oldest. g itself is not modified.
func Rotate(g *KeyGrip, key Key, keep int) (*KeyGrip, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: no current signer", ErrInvalidKeyList)
	}
	keys := make([]Key, 0, len(g.keys)+1)
	keys = append(keys, key)
	keys = append(keys, g.keys...)
	if keep > 0 && len(keys) > keep {
		keys = keys[:keep]
	}
	return NewKeyGrip(keys, WithAlgorithm(g.Algorithm()), WithEncoding(g.Encoding()))
}
