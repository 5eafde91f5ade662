// Package secrets generates and derives HMAC key material for signer.KeyGrip.
//
// GenerateKey reads random bytes from crypto/rand. DeriveKeys expands a single
// master secret into independent per-purpose keys with HKDF-SHA-256
// (golang.org/x/crypto/hkdf), so one configured secret can back several
// signers without them sharing a key:
//
//	keys, err := secrets.DeriveKeys(master, "cookie", "invite")
//	cookieSigner, _ := signer.NewKeySigner(keys[0])
//	inviteSigner, _ := signer.NewKeySigner(keys[1])
//
// EncodeKey and DecodeKey convert keys to and from unpadded base64url for
// transport in environment variables.
package secrets
