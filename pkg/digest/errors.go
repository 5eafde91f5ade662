package digest

import "errors"

var (
	ErrUnsupportedAlgorithm = errors.New("digest.unsupported_algorithm")
	ErrUnsupportedEncoding  = errors.New("digest.unsupported_encoding")
)
