package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/keygrip/pkg/digest"
	"github.com/dmitrymomot/keygrip/pkg/secrets"
	"github.com/dmitrymomot/keygrip/pkg/signer"
)

// keyring is the YAML keyring file:
//
//	algorithm: sha256
//	encoding: base64url
//	keys:
//	  - current-secret
//	  - retired-secret
//
// Instead of keys, a base64url master key and labels may be given; one key
// is derived per label, first label current.
type keyring struct {
	Algorithm string   `yaml:"algorithm"`
	Encoding  string   `yaml:"encoding"`
	Keys      []string `yaml:"keys"`
	Master    string   `yaml:"master"`
	Labels    []string `yaml:"labels"`
}

func loadKeyring(path string) (keyring, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return keyring{}, fmt.Errorf("read keyring: %w", err)
	}

	var kr keyring
	if err := yaml.Unmarshal(data, &kr); err != nil {
		return keyring{}, fmt.Errorf("parse keyring %s: %w", path, err)
	}
	if kr.Master != "" && len(kr.Keys) > 0 {
		return keyring{}, fmt.Errorf("keyring %s: set either keys or master, not both", path)
	}
	return kr, nil
}

// merge returns kr with every non-empty field of o applied over it.
// Key sources replace each other as a whole.
func (kr keyring) merge(o keyring) keyring {
	if o.Algorithm != "" {
		kr.Algorithm = o.Algorithm
	}
	if o.Encoding != "" {
		kr.Encoding = o.Encoding
	}
	if len(o.Keys) > 0 || o.Master != "" {
		kr.Keys = o.Keys
		kr.Master = o.Master
		kr.Labels = o.Labels
	}
	return kr
}

func (kr keyring) keys() ([]signer.Key, error) {
	if kr.Master == "" {
		return signer.Keys(kr.Keys...), nil
	}

	master, err := secrets.DecodeKey(kr.Master)
	if err != nil {
		return nil, fmt.Errorf("keyring master: %w", err)
	}
	if len(kr.Labels) == 0 {
		return nil, fmt.Errorf("keyring master: no labels")
	}
	return secrets.DeriveKeys(master, kr.Labels...)
}

func (kr keyring) alg() digest.Algorithm { return digest.Algorithm(kr.Algorithm) }

func (kr keyring) enc() digest.Encoding { return digest.Encoding(kr.Encoding) }

func splitKeys(s string) []string {
	var out []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
