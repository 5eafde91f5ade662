package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/keygrip/pkg/cookie"
	"github.com/dmitrymomot/keygrip/pkg/digest"
	"github.com/dmitrymomot/keygrip/pkg/secrets"
	"github.com/dmitrymomot/keygrip/pkg/signer"
	"github.com/dmitrymomot/keygrip/pkg/token"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keyring.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestKeygen(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, (&KeygenCmd{Count: 3, Size: 32}).Run(&out))

	lines := strings.Fields(out.String())
	require.Len(t, lines, 3)
	for _, l := range lines {
		k, err := secrets.DecodeKey(l)
		require.NoError(t, err)
		assert.Len(t, k, 32)
	}

	require.Error(t, (&KeygenCmd{Count: 0}).Run(&out))
}

func TestSignVerify_FlagKeys(t *testing.T) {
	t.Setenv("SIGNER_KEYS", "")

	var out bytes.Buffer
	g := &Globals{Keys: []string{"secret"}}
	require.NoError(t, (&SignCmd{Value: "42"}).Run(g, discard(), &out))
	assert.Equal(t, "42.k8Eh56pDeh4B48USxvDOPIIag5Al3KRAj4VhbeSq7nA\n", out.String())

	out.Reset()
	rotated := &Globals{Keys: []string{"new", "secret"}}
	require.NoError(t, (&VerifyCmd{Token: "42.k8Eh56pDeh4B48USxvDOPIIag5Al3KRAj4VhbeSq7nA"}).Run(rotated, discard(), &out))
	assert.Equal(t, "42\t1\n", out.String())

	out.Reset()
	err := (&VerifyCmd{Token: "42.wrongdigest"}).Run(rotated, discard(), &out)
	require.ErrorIs(t, err, errInvalidToken)
	assert.Empty(t, out.String())
}

func TestGlobals_NoKeys(t *testing.T) {
	t.Setenv("SIGNER_KEYS", "")

	_, err := (&Globals{}).keyGrip(discard())
	require.ErrorIs(t, err, errNoKeys)
}

func TestGlobals_EnvKeys(t *testing.T) {
	t.Setenv("SIGNER_KEYS", "env-current, env-retired")
	t.Setenv("SIGNER_ALGORITHM", "sha512")

	g, err := (&Globals{}).keyGrip(discard())
	require.NoError(t, err)
	assert.Equal(t, signer.Keys("env-current", "env-retired"), g.Keys())
	assert.Equal(t, digest.SHA512, g.Algorithm())

	// flags win over the environment
	g, err = (&Globals{Keys: []string{"flag"}, Algorithm: "sha1"}).keyGrip(discard())
	require.NoError(t, err)
	assert.Equal(t, signer.Keys("flag"), g.Keys())
	assert.Equal(t, digest.SHA1, g.Algorithm())
}

func TestGlobals_Keyring(t *testing.T) {
	t.Setenv("SIGNER_KEYS", "env-key")

	path := writeFile(t, "algorithm: sha3-256\nencoding: hex\nkeys:\n  - current\n  - retired\n")

	g, err := (&Globals{Keyring: path}).keyGrip(discard())
	require.NoError(t, err)
	assert.Equal(t, signer.Keys("current", "retired"), g.Keys())
	assert.Equal(t, digest.SHA3_256, g.Algorithm())
	assert.Equal(t, digest.Hex, g.Encoding())

	g, err = (&Globals{Keyring: path, Encoding: "base64"}).keyGrip(discard())
	require.NoError(t, err)
	assert.Equal(t, digest.Base64, g.Encoding())
}

func TestGlobals_KeyringMaster(t *testing.T) {
	t.Setenv("SIGNER_KEYS", "")

	master := secrets.EncodeKey(signer.Key("master-secret"))
	path := writeFile(t, "master: "+master+"\nlabels: [v2, v1]\n")

	g, err := (&Globals{Keyring: path}).keyGrip(discard())
	require.NoError(t, err)

	want, err := secrets.DeriveKeys([]byte("master-secret"), "v2", "v1")
	require.NoError(t, err)
	assert.Equal(t, want, g.Keys())
}

func TestLoadKeyring_Errors(t *testing.T) {
	t.Parallel()

	_, err := loadKeyring(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = loadKeyring(writeFile(t, "keys: [a\n"))
	require.Error(t, err)

	_, err = loadKeyring(writeFile(t, "keys: [a]\nmaster: bWFzdGVy\n"))
	require.Error(t, err)

	kr, err := loadKeyring(writeFile(t, "master: bWFzdGVy\n"))
	require.NoError(t, err)
	_, err = kr.keys()
	require.Error(t, err, "master without labels")
}

func TestRotatingSigner(t *testing.T) {
	t.Parallel()

	g, err := signer.NewKeyGrip(signer.Keys("k1", "k0"))
	require.NoError(t, err)
	rs := newRotatingSigner(g, 2)

	before := rs.Sign("v")
	next, err := rs.Rotate(signer.Key("k2"))
	require.NoError(t, err)
	assert.Equal(t, signer.Keys("k2", "k1"), next.Keys())

	assert.NotEqual(t, before, rs.Sign("v"))
	assert.Equal(t, 1, rs.Index("v", before))
	assert.True(t, rs.Verify("v", before))
}

func TestRouter_Session(t *testing.T) {
	t.Parallel()

	g, err := signer.NewKeyGrip(signer.Keys("k0"))
	require.NoError(t, err)
	rs := newRotatingSigner(g, 3)
	man, err := cookie.New(rs)
	require.NoError(t, err)
	h := newRouter(man, rs, true, discard())

	// first visit issues a session
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "(new)")
	issued := w.Result().Cookies()
	require.Len(t, issued, 1)

	id, ok := token.NewCodec(rs).Unsign(issued[0].Value)
	require.True(t, ok)

	// rotate, then come back with the old cookie: accepted and re-issued
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rotate", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(issued[0])
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Contains(t, w.Body.String(), "session "+id+" (returning)")

	reissued := w.Result().Cookies()
	require.Len(t, reissued, 1)
	assert.Equal(t, 0, rs.Index(id, reissued[0].Value[len(id)+1:]))

	// tampered cookie starts a new session
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: sessionCookie, Value: id + ".forged"})
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Contains(t, w.Body.String(), "(new)")
	assert.NotContains(t, w.Body.String(), id)
}

func TestRouter_RotateDisabled(t *testing.T) {
	t.Parallel()

	g, err := signer.NewKeyGrip(signer.Keys("k0"))
	require.NoError(t, err)
	rs := newRotatingSigner(g, 3)
	man, err := cookie.New(rs)
	require.NoError(t, err)
	h := newRouter(man, rs, false, discard())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rotate", nil))
	assert.NotEqual(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "READY", w.Body.String())

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/", nil))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestRouter_ReissueFailure(t *testing.T) {
	t.Parallel()

	old, err := signer.NewKeyGrip(signer.Keys("k0"))
	require.NoError(t, err)
	g, err := signer.NewKeyGrip(signer.Keys("k1", "k0"))
	require.NoError(t, err)
	rs := newRotatingSigner(g, 3)

	// Partitioned without Secure is rejected when the cookie is written.
	man, err := cookie.New(rs, cookie.WithPartitioned(true))
	require.NoError(t, err)

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	h := newRouter(man, rs, false, log)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: sessionCookie, Value: token.NewCodec(old).Sign("sid-1")})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "(new)")
	assert.Contains(t, buf.String(), "failed to read session cookie")
	assert.NotContains(t, buf.String(), "failed to set session cookie")
}
