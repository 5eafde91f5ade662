package signer

import (
	"strings"

	"github.com/dmitrymomot/keygrip/pkg/digest"
)

// Config holds signer configuration.
// Keys is a comma separated list, current key first.
type Config struct {
	Keys      string `env:"SIGNER_KEYS" envDefault:""`
	Algorithm string `env:"SIGNER_ALGORITHM" envDefault:"sha256"`
	Encoding  string `env:"SIGNER_ENCODING" envDefault:"base64url"`
}

// DefaultConfig returns default signer configuration
func DefaultConfig() Config {
	return Config{
		Algorithm: string(digest.DefaultAlgorithm),
		Encoding:  string(digest.DefaultEncoding),
	}
}

// parseKeys splits the keys string, dropping blank entries.
func (c Config) parseKeys() []Key {
	if c.Keys == "" {
		return nil
	}

	parts := strings.Split(c.Keys, ",")
	keys := make([]Key, 0, len(parts))

	for _, s := range parts {
		s = strings.TrimSpace(s)
		if s != "" {
			keys = append(keys, Key(s))
		}
	}

	return keys
}

// NewFromConfig creates a KeyGrip from cfg. Empty algorithm or encoding
// names fall back to the defaults.
func NewFromConfig(cfg Config, opts ...Option) (*KeyGrip, error) {
	configOpts := make([]Option, 0, 2+len(opts))

	if cfg.Algorithm != "" {
		configOpts = append(configOpts, WithAlgorithm(digest.Algorithm(cfg.Algorithm)))
	}
	if cfg.Encoding != "" {
		configOpts = append(configOpts, WithEncoding(digest.Encoding(cfg.Encoding)))
	}

	configOpts = append(configOpts, opts...)

	return NewKeyGrip(cfg.parseKeys(), configOpts...)
}
