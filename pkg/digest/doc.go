// Package digest computes keyed authentication tags (HMAC) and renders them as
// URL-safe text.
//
// An Engine pairs a named hash Algorithm with an output Encoding. Both are
// fixed at construction and the Engine holds no other state, so a single
// instance can be shared by any number of goroutines.
//
// # Algorithms
//
// SHA-2 variants come from the standard library. SHA-3 and BLAKE2 variants are
// provided by golang.org/x/crypto. The default is SHA256.
//
// # Encodings
//
// The default encoding is Base64URL: URL-safe base64 without padding, which
// can be embedded in a cookie value or query parameter as is. Every encoding
// registered here has an alphabet that excludes Separator, so a digest never
// contains the character used to join it to a payload.
//
// # Usage
//
//	import "github.com/dmitrymomot/keygrip/pkg/digest"
//
//	eng, err := digest.New(digest.SHA256, digest.Base64URL)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tag := eng.Sign([]byte("secret"), []byte("42"))
//	ok := digest.Equal(tag, received)
//
// # Error Handling
//
// New returns ErrUnsupportedAlgorithm or ErrUnsupportedEncoding (wrapped with
// the rejected name) so callers can use errors.Is.
package digest
