package cookie

import "errors"

var (
	ErrNilSigner        = errors.New("cookie.nil_signer")
	ErrInvalidSignature = errors.New("cookie.invalid_signature")
	ErrCookieNotFound   = errors.New("cookie.not_found")
	ErrInvalidCookie    = errors.New("cookie.invalid")
)
