package signer

import (
	"fmt"

	"github.com/dmitrymomot/keygrip/pkg/digest"
)

var _ Signer = (*KeySigner)(nil)

// KeySigner signs and verifies with a single key.
type KeySigner struct {
	key    Key
	engine *digest.Engine
}

func NewKeySigner(key Key, opts ...Option) (*KeySigner, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: key is empty", ErrInvalidKeyList)
	}

	engine, err := newEngine(opts)
	if err != nil {
		return nil, err
	}

	return &KeySigner{key: key.clone(), engine: engine}, nil
}

func (s *KeySigner) Sign(data string) string {
	return s.engine.SignString(s.key, data)
}

func (s *KeySigner) Verify(data, tag string) bool {
	return digest.Equal(s.engine.SignString(s.key, data), tag)
}

func (s *KeySigner) Algorithm() digest.Algorithm { return s.engine.Algorithm() }

func (s *KeySigner) Encoding() digest.Encoding { return s.engine.Encoding() }
