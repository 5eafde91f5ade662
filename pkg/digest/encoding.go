package digest

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
)

// Separator joins a payload and its digest in a signed token.
// No registered encoding may produce it.
const Separator = "."

// Encoding names a binary-to-text encoding for digests.
type Encoding string

const (
	// Base64URL is URL-safe base64 without padding.
	Base64URL Encoding = "base64url"
	// Base64 is standard padded base64. Its output may contain '+', '/' and '='
	// and is not URL-safe; use it only where the receiver expects that form.
	Base64 Encoding = "base64"
	Hex     Encoding = "hex"

	// DefaultEncoding is used when no encoding is specified.
	DefaultEncoding = Base64URL
)

var encoders = map[Encoding]func([]byte) string{
	Base64URL: base64.RawURLEncoding.EncodeToString,
	Base64:    base64.StdEncoding.EncodeToString,
	Hex:       hex.EncodeToString,
}

// URLSafe reports whether digests in e can go into a cookie value or query
// parameter without percent-encoding. Only Base64URL and Hex qualify.
func (e Encoding) URLSafe() bool {
	return e == Base64URL || e == Hex
}

// ParseEncoding normalises a user-supplied name and checks it is supported.
// An empty name yields DefaultEncoding.
func ParseEncoding(name string) (Encoding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultEncoding, nil
	}
	enc := Encoding(name)
	if _, ok := encoders[enc]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
	return enc, nil
}

// Encodings returns the names of all supported encodings in lexical order.
func Encodings() []Encoding {
	out := make([]Encoding, 0, len(encoders))
	for enc := range encoders {
		out = append(out, enc)
	}
	slices.Sort(out)
	return out
}

func (e Encoding) String() string { return string(e) }
