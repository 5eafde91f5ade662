package token

import (
	"strings"

	"github.com/dmitrymomot/keygrip/pkg/digest"
	"github.com/dmitrymomot/keygrip/pkg/signer"
)

// Separator joins a value and its digest.
const Separator = digest.Separator

// Codec signs values and validates signed tokens with a signer.Signer.
type Codec struct {
	signer signer.Signer
}

// NewCodec returns a Codec backed by s. It panics if s is nil.
func NewCodec(s signer.Signer) *Codec {
	if s == nil {
		panic("token: nil signer")
	}
	return &Codec{signer: s}
}

// Signer returns the underlying signer.
func (c *Codec) Signer() signer.Signer { return c.signer }

// Sign returns value followed by the separator and its digest.
func (c *Codec) Sign(value string) string {
	return value + Separator + c.signer.Sign(value)
}

// Unsign returns the value carried by tok if its digest verifies.
func (c *Codec) Unsign(tok string) (string, bool) {
	value, tag, ok := split(tok)
	if !ok || !c.signer.Verify(value, tag) {
		return "", false
	}
	return value, true
}

// UnsignIndex is like Unsign but also reports which key matched.
// If the signer implements signer.Indexer the index comes from it, otherwise
// a verified token reports 0. Invalid tokens report -1.
func (c *Codec) UnsignIndex(tok string) (string, int) {
	value, tag, ok := split(tok)
	if !ok {
		return "", -1
	}

	if ix, isIndexer := c.signer.(signer.Indexer); isIndexer {
		i := ix.Index(value, tag)
		if i < 0 {
			return "", -1
		}
		return value, i
	}

	if !c.signer.Verify(value, tag) {
		return "", -1
	}
	return value, 0
}

// split cuts tok at the last separator. An empty digest is rejected.
func split(tok string) (value, tag string, ok bool) {
	i := strings.LastIndex(tok, Separator)
	if i == -1 || i == len(tok)-len(Separator) {
		return "", "", false
	}
	return tok[:i], tok[i+len(Separator):], true
}
