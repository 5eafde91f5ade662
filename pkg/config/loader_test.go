package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/keygrip/pkg/config"
	"github.com/dmitrymomot/keygrip/pkg/cookie"
	"github.com/dmitrymomot/keygrip/pkg/signer"
)

type appConfig struct {
	Signer signer.Config
	Cookie cookie.Config
}

type requiredConfig struct {
	Value string `env:"TEST_CONFIG_REQUIRED,required"`
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SIGNER_KEYS", "k0,k1")

	cfg, err := config.Load[appConfig]()
	require.NoError(t, err)
	assert.Equal(t, "k0,k1", cfg.Signer.Keys)
	assert.Equal(t, "sha256", cfg.Signer.Algorithm)
	assert.Equal(t, "base64url", cfg.Signer.Encoding)
	assert.Equal(t, "/", cfg.Cookie.Path)
	assert.True(t, cfg.Cookie.HttpOnly)
}

func TestLoad_Required(t *testing.T) {
	_, err := config.Load[requiredConfig]()
	require.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() { config.MustLoad[requiredConfig]() })

	t.Setenv("TEST_CONFIG_REQUIRED", "set")
	cfg := config.MustLoad[requiredConfig]()
	assert.Equal(t, "set", cfg.Value)
}

func TestLoadInto_KeepsValues(t *testing.T) {
	t.Setenv("SIGNER_KEYS", "env-key")

	cfg := signer.Config{Algorithm: "ignored"}
	require.NoError(t, config.LoadInto(&cfg))
	assert.Equal(t, "env-key", cfg.Keys)
	assert.Equal(t, "sha256", cfg.Algorithm, "envDefault applies when the variable is unset")
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SIGNER_ALGORITHM", "sha3-256") // already set, must win
	t.Setenv("SIGNER_KEYS", "")
	require.NoError(t, os.Unsetenv("SIGNER_KEYS"))
	t.Cleanup(func() { _ = os.Unsetenv("TEST_CONFIG_ONLY_IN_FILE") })

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	cfg, err := config.Load[signer.Config]()
	require.NoError(t, err)
	assert.Equal(t, "from-file-current,from-file-retired", cfg.Keys)
	assert.Equal(t, "sha3-256", cfg.Algorithm)
	assert.Equal(t, "file", os.Getenv("TEST_CONFIG_ONLY_IN_FILE"))
}

func TestLoadEnv_Missing(t *testing.T) {
	require.Error(t, config.LoadEnv("testdata/does-not-exist.env"))
}
