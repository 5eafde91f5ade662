package secrets

import "errors"

var (
	ErrInvalidMasterKey    = errors.New("invalid master key: must not be empty")
	ErrKeyDerivationFailed = errors.New("key derivation failed")
	ErrInvalidEncodedKey   = errors.New("invalid encoded key")
)
