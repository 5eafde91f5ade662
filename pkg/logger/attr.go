package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Cookie records a cookie name under the key "cookie".
func Cookie(name string) slog.Attr {
	return slog.String("cookie", name)
}

// KeyIndex records the position of the key that verified a value.
// 0 is the current key, -1 means no key matched.
func KeyIndex(i int) slog.Attr {
	return slog.Int("key_index", i)
}

// Signer groups the signer settings under the key "signer".
func Signer(algorithm, encoding string, keys int) slog.Attr {
	return slog.Group("signer",
		slog.String("algorithm", algorithm),
		slog.String("encoding", encoding),
		slog.Int("keys", keys),
	)
}
