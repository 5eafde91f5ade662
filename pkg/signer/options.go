package signer

import "github.com/dmitrymomot/keygrip/pkg/digest"

type Options struct {
	Algorithm digest.Algorithm
	Encoding  digest.Encoding
}

type Option func(*Options)

func WithAlgorithm(alg digest.Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = alg
	}
}

func WithEncoding(enc digest.Encoding) Option {
	return func(o *Options) {
		o.Encoding = enc
	}
}

// newEngine applies opts over the defaults and builds the digest engine.
func newEngine(opts []Option) (*digest.Engine, error) {
	o := Options{
		Algorithm: digest.DefaultAlgorithm,
		Encoding:  digest.DefaultEncoding,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return digest.New(o.Algorithm, o.Encoding)
}
