package main

import (
	"sync/atomic"

	"github.com/dmitrymomot/keygrip/pkg/signer"
)

var (
	_ signer.Signer  = (*rotatingSigner)(nil)
	_ signer.Indexer = (*rotatingSigner)(nil)
)

// rotatingSigner delegates to the current KeyGrip and lets it be replaced
// atomically while requests are in flight.
type rotatingSigner struct {
	current atomic.Pointer[signer.KeyGrip]
	keep    int
}

func newRotatingSigner(g *signer.KeyGrip, keep int) *rotatingSigner {
	s := &rotatingSigner{keep: keep}
	s.current.Store(g)
	return s
}

func (s *rotatingSigner) Sign(data string) string { return s.current.Load().Sign(data) }

func (s *rotatingSigner) Verify(data, digest string) bool {
	return s.current.Load().Verify(data, digest)
}

func (s *rotatingSigner) Index(data, digest string) int {
	return s.current.Load().Index(data, digest)
}

func (s *rotatingSigner) Len() int { return s.current.Load().Len() }

// Rotate installs a signer with key in front of the current keys.
func (s *rotatingSigner) Rotate(key signer.Key) (*signer.KeyGrip, error) {
	for {
		old := s.current.Load()
		next, err := signer.Rotate(old, key, s.keep)
		if err != nil {
			return nil, err
		}
		if s.current.CompareAndSwap(old, next) {
			return next, nil
		}
	}
}
