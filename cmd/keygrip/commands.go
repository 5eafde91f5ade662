package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/keygrip/pkg/logger"
	"github.com/dmitrymomot/keygrip/pkg/secrets"
	"github.com/dmitrymomot/keygrip/pkg/token"
)

var errInvalidToken = errors.New("invalid token")

type KeygenCmd struct {
	Count int `default:"1" help:"Number of keys to generate."`
	Size  int `default:"32" help:"Key size in bytes."`
}

func (c *KeygenCmd) Run(out io.Writer) error {
	if c.Count < 1 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}
	for range c.Count {
		k, err := secrets.GenerateKey(c.Size)
		if err != nil {
			return fmt.Errorf("generate key: %w", err)
		}
		fmt.Fprintln(out, secrets.EncodeKey(k))
	}
	return nil
}

type SignCmd struct {
	Value string `arg:"" help:"Value to sign."`
}

func (c *SignCmd) Run(g *Globals, log *slog.Logger, out io.Writer) error {
	grip, err := g.keyGrip(log)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, token.NewCodec(grip).Sign(c.Value))
	return nil
}

type VerifyCmd struct {
	Token string `arg:"" help:"Token to verify (value.digest)."`
}

// Run prints the value and the index of the matching key. An invalid token
// is reported on the log and returns errInvalidToken.
func (c *VerifyCmd) Run(g *Globals, log *slog.Logger, out io.Writer) error {
	grip, err := g.keyGrip(log)
	if err != nil {
		return err
	}

	value, index := token.NewCodec(grip).UnsignIndex(c.Token)
	if index < 0 {
		log.Warn("token rejected", logger.KeyIndex(index))
		return errInvalidToken
	}
	if index > 0 {
		log.Info("token signed with a retired key, re-sign it", logger.KeyIndex(index))
	}

	fmt.Fprintf(out, "%s\t%d\n", value, index)
	return nil
}
