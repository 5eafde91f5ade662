package digest

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"slices"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// Algorithm names a hash function used inside HMAC.
type Algorithm string

const (
	SHA1       Algorithm = "sha1"
	SHA224     Algorithm = "sha224"
	SHA256     Algorithm = "sha256"
	SHA384     Algorithm = "sha384"
	SHA512     Algorithm = "sha512"
	SHA512_256 Algorithm = "sha512-256"
	SHA3_256   Algorithm = "sha3-256"
	SHA3_512   Algorithm = "sha3-512"
	BLAKE2b256 Algorithm = "blake2b-256"
	BLAKE2b512 Algorithm = "blake2b-512"
	BLAKE2s256 Algorithm = "blake2s-256"

	// DefaultAlgorithm is used when no algorithm is specified.
	DefaultAlgorithm = SHA256
)

// hashes maps every supported algorithm to its hash constructor.
// The map is read-only after package initialisation.
var hashes = map[Algorithm]func() hash.Hash{
	SHA1:       sha1.New,
	SHA224:     sha256.New224,
	SHA256:     sha256.New,
	SHA384:     sha512.New384,
	SHA512:     sha512.New,
	SHA512_256: sha512.New512_256,
	SHA3_256:   sha3.New256,
	SHA3_512:   sha3.New512,
	BLAKE2b256: unkeyed(blake2b.New256),
	BLAKE2b512: unkeyed(blake2b.New512),
	BLAKE2s256: unkeyed(blake2s.New256),
}

// unkeyed adapts a BLAKE2 constructor to the func() hash.Hash shape HMAC expects.
// A nil key never fails, so the error is impossible.
func unkeyed(fn func(key []byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := fn(nil)
		if err != nil {
			panic(fmt.Sprintf("digest: unkeyed blake2 constructor failed: %v", err))
		}
		return h
	}
}

// ParseAlgorithm normalises a user-supplied name and checks it is supported.
// An empty name yields DefaultAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultAlgorithm, nil
	}
	alg := Algorithm(name)
	if _, ok := hashes[alg]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
	return alg, nil
}

// Algorithms returns the names of all supported algorithms in lexical order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, 0, len(hashes))
	for alg := range hashes {
		out = append(out, alg)
	}
	slices.Sort(out)
	return out
}

func (a Algorithm) String() string { return string(a) }
