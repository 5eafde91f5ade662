// Package signer signs and verifies short text values with HMAC keys and
// supports graceful key rotation.
//
// The Signer interface is the capability the rest of the module is written
// against: Sign produces a digest for data and Verify checks one. Two
// implementations are provided.
//
//   - KeyGrip holds an ordered list of keys. The first key is current and is
//     the only one used for signing; the remaining keys are retired but still
//     accepted by Verify. Index reports which key matched so callers can
//     re-sign values that still carry a retired key.
//   - KeySigner holds exactly one key. It behaves like a KeyGrip built from a
//     single-element list.
//
// # Rotation
//
// Signers are immutable. To rotate, build a new KeyGrip with the new key
// first (Rotate does this) and swap the reference the application holds, for
// example through an atomic.Pointer. Signatures produced with the previous
// current key keep verifying for as long as that key stays in the list.
//
// # Usage
//
//	import "github.com/dmitrymomot/keygrip/pkg/signer"
//
//	grip, err := signer.NewKeyGrip(signer.Keys("new-secret", "old-secret"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tag := grip.Sign("42")
//	switch grip.Index("42", tag) {
//	case -1:
//	    // tampered or unknown key
//	case 0:
//	    // signed with the current key
//	default:
//	    // valid, signed with a retired key: re-sign
//	}
//
// # Configuration
//
// Config can be populated from the environment with github.com/caarlos0/env:
//
//	cfg := signer.DefaultConfig()
//	_ = env.Parse(&cfg)
//	grip, err := signer.NewFromConfig(cfg)
//
// # Encodings
//
// Digests are URL-safe only with digest.Base64URL (the default) or digest.Hex.
// WithEncoding(digest.Base64) yields standard padded base64, which may contain
// '+', '/' and '=' and must be escaped before use in a URL or query string.
// Encoding.URLSafe reports which case applies.
//
// # Error Handling
//
// Constructors fail with ErrInvalidKeyList for an empty key list or an empty
// key, and with digest.ErrUnsupportedAlgorithm or digest.ErrUnsupportedEncoding
// for unknown names. Verification never returns an error: a malformed or
// foreign digest simply does not match.
package signer
