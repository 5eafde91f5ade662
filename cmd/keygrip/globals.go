package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/keygrip/pkg/config"
	"github.com/dmitrymomot/keygrip/pkg/logger"
	"github.com/dmitrymomot/keygrip/pkg/signer"
)

// Globals are flags shared by every command.
// Keys are taken from --keys, then --keyring, then the SIGNER_* environment.
type Globals struct {
	EnvFile   []string `name:"env-file" type:"existingfile" help:"Load .env files before reading SIGNER_* variables."`
	Keyring   string   `type:"existingfile" help:"YAML keyring file." env:"KEYGRIP_KEYRING"`
	Keys      []string `help:"Keys, current first, comma separated."`
	Algorithm string   `help:"HMAC hash algorithm." placeholder:"sha256"`
	Encoding  string   `help:"Digest encoding." placeholder:"base64url"`
	LogLevel  string   `name:"log-level" default:"info" help:"Log level."`
	LogFormat string   `name:"log-format" enum:"text,json" default:"text" help:"Log format (text, json)."`
}

var errNoKeys = errors.New("no keys: use --keys, --keyring or SIGNER_KEYS")

// keyGrip builds the rotation signer described by the flags.
func (g *Globals) keyGrip(log *slog.Logger) (*signer.KeyGrip, error) {
	cfg, err := g.signerConfig()
	if err != nil {
		return nil, err
	}

	keys, err := cfg.keys()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, errNoKeys
	}

	grip, err := signer.NewKeyGrip(keys,
		signer.WithAlgorithm(cfg.alg()),
		signer.WithEncoding(cfg.enc()),
	)
	if err != nil {
		return nil, fmt.Errorf("build signer: %w", err)
	}

	log.Debug("signer ready", logger.Signer(grip.Algorithm().String(), grip.Encoding().String(), grip.Len()))
	return grip, nil
}

// signerConfig merges the sources into one keyring. Flags override the
// file, the file overrides the environment.
func (g *Globals) signerConfig() (keyring, error) {
	envCfg, err := config.Load[signer.Config]()
	if err != nil {
		return keyring{}, err
	}
	kr := keyring{
		Algorithm: envCfg.Algorithm,
		Encoding:  envCfg.Encoding,
		Keys:      splitKeys(envCfg.Keys),
	}

	if g.Keyring != "" {
		file, err := loadKeyring(g.Keyring)
		if err != nil {
			return keyring{}, err
		}
		kr = kr.merge(file)
	}

	return kr.merge(keyring{
		Algorithm: g.Algorithm,
		Encoding:  g.Encoding,
		Keys:      g.Keys,
	}), nil
}
