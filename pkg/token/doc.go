// Package token turns plain values into signed tokens and back.
//
// A token is the value, a separator and the digest of the value:
//
//	value.digest
//
// The Codec is written against signer.Signer, so any implementation works,
// including test doubles that do no cryptography at all. Decoding splits at
// the last separator: the value may itself contain dots, the digest never
// does (see digest.Separator).
//
// # Usage
//
//	import "github.com/dmitrymomot/keygrip/pkg/token"
//
//	grip, _ := signer.NewKeyGrip(signer.Keys("secret"))
//	codec := token.NewCodec(grip)
//
//	tok := codec.Sign("42") // "42.k8Eh56pDeh4B48USxvDOPIIag5Al3KRAj4VhbeSq7nA"
//
//	if v, ok := codec.Unsign(tok); ok {
//	    // v == "42"
//	}
//
// Typed payloads are JSON encoded, base64url encoded and then signed:
//
//	type Invite struct {
//	    Email string `json:"email"`
//	    Exp   int64  `json:"exp"`
//	}
//
//	tok, err := token.Encode(codec, Invite{"a@b.c", exp})
//	inv, err := token.Decode[Invite](codec, tok)
//
// # Error Handling
//
// Unsign never returns an error: a missing separator, an empty digest and a
// wrong digest all yield ok == false. Decode returns ErrInvalidToken in those
// cases and ErrInvalidPayload when a correctly signed payload cannot be
// decoded.
package token
