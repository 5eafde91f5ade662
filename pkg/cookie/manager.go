package cookie

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/keygrip/pkg/logger"
	"github.com/dmitrymomot/keygrip/pkg/signer"
	"github.com/dmitrymomot/keygrip/pkg/token"
)

const flashPrefix = "__flash_"

type Manager struct {
	codec    *token.Codec
	defaults Options
	log      *slog.Logger
}

// New returns a Manager that signs cookie values with s.
// Defaults are Path=/, HttpOnly and SameSite=Lax; opts override them.
func New(s signer.Signer, opts ...Option) (*Manager, error) {
	if s == nil {
		return nil, ErrNilSigner
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		codec:    token.NewCodec(s),
		defaults: applyOptions(defaults, opts),
		log:      slog.New(slog.DiscardHandler),
	}, nil
}

// WithLogger returns a copy of m that reports rejected and re-issued
// cookies to l at debug level.
func (m *Manager) WithLogger(l *slog.Logger) *Manager {
	if l == nil {
		return m
	}
	cp := *m
	cp.log = l.With(logger.Component("cookie"))
	return &cp
}

func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	options := applyOptions(m.defaults, opts)

	cookie := &http.Cookie{
		Name:        name,
		Value:       value,
		Path:        options.Path,
		Domain:      options.Domain,
		MaxAge:      options.MaxAge,
		Secure:      options.Secure,
		HttpOnly:    options.HttpOnly,
		Partitioned: options.Partitioned,
		SameSite:    options.SameSite,
	}

	if err := cookie.Valid(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCookie, err)
	}

	http.SetCookie(w, cookie)
	return nil
}

func (m *Manager) Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return cookie.Value, nil
}

func (m *Manager) Delete(w http.ResponseWriter, name string) {
	cookie := &http.Cookie{
		Name:        name,
		Value:       "",
		Path:        m.defaults.Path,
		Domain:      m.defaults.Domain,
		MaxAge:      -1,
		Expires:     time.Unix(0, 0),
		HttpOnly:    m.defaults.HttpOnly,
		SameSite:    m.defaults.SameSite,
		Secure:      m.defaults.Secure,
		Partitioned: m.defaults.Partitioned,
	}
	http.SetCookie(w, cookie)
}

// SetSigned writes value.digest under name.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) error {
	return m.Set(w, name, m.codec.Sign(value), opts...)
}

// GetSigned returns the verified value of a signed cookie.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	value, _, err := m.getSigned(r, name)
	return value, err
}

// GetSignedRotate is GetSigned plus rotation-on-read: when the cookie was
// signed with a retired key it is written again, signed with the current key.
// The signer must implement signer.Indexer for retired keys to be detected.
func (m *Manager) GetSignedRotate(w http.ResponseWriter, r *http.Request, name string, opts ...Option) (string, error) {
	value, index, err := m.getSigned(r, name)
	if err != nil || index == 0 {
		return value, err
	}

	if err := m.SetSigned(w, name, value, opts...); err != nil {
		return "", err
	}
	m.log.DebugContext(r.Context(), "re-signed cookie with current key",
		logger.Cookie(name),
		logger.KeyIndex(index),
	)
	return value, nil
}

func (m *Manager) getSigned(r *http.Request, name string) (string, int, error) {
	signed, err := m.Get(r, name)
	if err != nil {
		return "", -1, err
	}

	value, index := m.codec.UnsignIndex(signed)
	if index < 0 {
		m.log.DebugContext(r.Context(), "rejected signed cookie", logger.Cookie(name))
		return "", -1, ErrInvalidSignature
	}
	return value, index, nil
}

// SetFlash stores value as signed JSON under a flash cookie for key.
// The value is readable by the client; do not put secrets in it.
func (m *Manager) SetFlash(w http.ResponseWriter, key string, value any) error {
	tok, err := token.Encode(m.codec, value)
	if err != nil {
		return fmt.Errorf("encode flash: %w", err)
	}
	return m.Set(w, flashPrefix+key, tok)
}

// GetFlash decodes the flash cookie for key into dest and deletes it.
func (m *Manager) GetFlash(w http.ResponseWriter, r *http.Request, key string, dest any) error {
	cookieName := flashPrefix + key

	tok, err := m.Get(r, cookieName)
	if err != nil {
		return err
	}

	// Deleted even when invalid, so a bad flash is not presented again.
	m.Delete(w, cookieName)

	raw, err := token.Decode[json.RawMessage](m.codec, tok)
	if err != nil {
		if errors.Is(err, token.ErrInvalidToken) {
			m.log.DebugContext(r.Context(), "rejected flash cookie", logger.Cookie(cookieName))
			return ErrInvalidSignature
		}
		return fmt.Errorf("decode flash: %w", err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode flash: %w", err)
	}
	return nil
}
