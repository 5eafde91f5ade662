package token_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/keygrip/pkg/signer"
	"github.com/dmitrymomot/keygrip/pkg/token"
)

// reverseSigner is a signer without cryptography: the digest is the reversed
// data prefixed with "sig-". Verify accepts only exact matches.
type reverseSigner struct{}

func (reverseSigner) Sign(data string) string {
	r := []rune(data)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return "sig-" + strings.ReplaceAll(string(r), ".", "_")
}

func (s reverseSigner) Verify(data, digest string) bool {
	return s.Sign(data) == digest
}

func TestCodec_FakeSigner(t *testing.T) {
	t.Parallel()
	c := token.NewCodec(reverseSigner{})

	tok := c.Sign("abc")
	assert.Equal(t, "abc.sig-cba", tok)

	v, ok := c.Unsign(tok)
	require.True(t, ok)
	assert.Equal(t, "abc", v)

	_, ok = c.Unsign("abc.sig-abc")
	assert.False(t, ok)

	v, i := c.UnsignIndex(tok)
	assert.Equal(t, "abc", v)
	assert.Equal(t, 0, i, "signers without Index report 0 on success")

	_, i = c.UnsignIndex("abc.bad")
	assert.Equal(t, -1, i)
}

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	grip, err := signer.NewKeyGrip(signer.Keys("k0", "k1"))
	require.NoError(t, err)
	single, err := signer.NewKeySigner(signer.Key("secret"))
	require.NoError(t, err)

	signers := map[string]signer.Signer{
		"keygrip":   grip,
		"keysigner": single,
		"fake":      reverseSigner{},
	}
	values := []string{"", "42", "a.b.c", "trailing.", ".leading", "...", "héllo wörld", "x=y; z", "🍪"}

	for name, s := range signers {
		c := token.NewCodec(s)
		for _, v := range values {
			got, ok := c.Unsign(c.Sign(v))
			require.True(t, ok, "%s: %q", name, v)
			assert.Equal(t, v, got, name)
		}
	}
}

func TestCodec_TamperDetection(t *testing.T) {
	t.Parallel()

	grip, err := signer.NewKeyGrip(signer.Keys("secret"))
	require.NoError(t, err)
	c := token.NewCodec(grip)

	tok := c.Sign("user-42")
	dot := strings.LastIndex(tok, ".")

	for i := dot + 1; i < len(tok); i++ {
		b := []byte(tok)
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}
		_, ok := c.Unsign(string(b))
		assert.False(t, ok, "flipped position %d", i)
	}

	_, ok := c.Unsign("user-43" + tok[dot:])
	assert.False(t, ok, "value changed")
}

func TestCodec_Scenario(t *testing.T) {
	t.Parallel()

	s, err := signer.NewKeySigner(signer.Key("secret"))
	require.NoError(t, err)
	c := token.NewCodec(s)

	tok := c.Sign("42")
	assert.Equal(t, "42.k8Eh56pDeh4B48USxvDOPIIag5Al3KRAj4VhbeSq7nA", tok)

	v, ok := c.Unsign(tok)
	require.True(t, ok)
	assert.Equal(t, "42", v)

	tests := []struct {
		name string
		tok  string
	}{
		{"wrong digest", "42.wrongdigest"},
		{"no separator", "nodotatall"},
		{"empty digest", "42."},
		{"only separator", "."},
		{"empty", ""},
		{"digest of another value", "43" + tok[2:]},
		{"length mismatch", tok + "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.NotPanics(t, func() {
				v, ok := c.Unsign(tt.tok)
				assert.False(t, ok)
				assert.Empty(t, v)
			})
		})
	}
}

func TestCodec_UnsignIndex(t *testing.T) {
	t.Parallel()

	old, err := signer.NewKeyGrip(signer.Keys("k1"))
	require.NoError(t, err)
	current, err := signer.NewKeyGrip(signer.Keys("k0", "k1"))
	require.NoError(t, err)
	foreign, err := signer.NewKeyGrip(signer.Keys("k2"))
	require.NoError(t, err)

	c := token.NewCodec(current)

	v, i := c.UnsignIndex(c.Sign("a.b"))
	assert.Equal(t, "a.b", v)
	assert.Equal(t, 0, i)

	v, i = c.UnsignIndex(token.NewCodec(old).Sign("a.b"))
	assert.Equal(t, "a.b", v)
	assert.Equal(t, 1, i)

	v, i = c.UnsignIndex(token.NewCodec(foreign).Sign("a.b"))
	assert.Empty(t, v)
	assert.Equal(t, -1, i)

	_, i = c.UnsignIndex("nodot")
	assert.Equal(t, -1, i)
}

func TestNewCodec_NilSigner(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { token.NewCodec(nil) })
}

func BenchmarkCodec_Unsign(b *testing.B) {
	grip, _ := signer.NewKeyGrip(signer.Keys("k0", "k1"))
	c := token.NewCodec(grip)
	tok := c.Sign("session-id-1234567890")

	for b.Loop() {
		if _, ok := c.Unsign(tok); !ok {
			b.Fatal("unsign failed")
		}
	}
}
