package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSigningKey = "test-secret-key-with-at-least-32-characters"

func newValidConfig() *Config {
	cfg := &Config{Token: &TokenConfig{SigningKey: testSigningKey}}
	cfg.ApplyDefaults()

	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 24*time.Hour, cfg.Token.DefaultTTL)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 6, cfg.Captcha.Length)
	assert.Equal(t, 5*time.Minute, cfg.Captcha.TTL)
	assert.Equal(t, CaptchaStoreMemory, cfg.Captcha.Store)
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
	assert.Nil(t, cfg.Postgres)
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, newValidConfig().Validate())
	})

	t.Run("missing signing key", func(t *testing.T) {
		cfg := newValidConfig()
		cfg.Token.SigningKey = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token.signingKey must be provided")
	})

	t.Run("short signing key", func(t *testing.T) {
		cfg := newValidConfig()
		cfg.Token.SigningKey = "too-short"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32 bytes")
	})

	t.Run("captcha length out of range", func(t *testing.T) {
		for _, length := range []int{1, 3, 7, 10} {
			cfg := newValidConfig()
			cfg.Captcha.Length = length
			assert.Error(t, cfg.Validate(), "length %d", length)
		}
	})

	t.Run("redis store without address", func(t *testing.T) {
		cfg := newValidConfig()
		cfg.Captcha.Store = CaptchaStoreRedis
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis.addr")
	})

	t.Run("unknown store", func(t *testing.T) {
		cfg := newValidConfig()
		cfg.Captcha.Store = "memcached"
		assert.Error(t, cfg.Validate())
	})
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := strings.Join([]string{
		"token:",
		"  signingKey: from-file-from-file-from-file-from-file",
		"  defaultTTL: 1h",
		"captcha:",
		"  length: 4",
		"  ttl: 2m",
	}, "\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "testing.yaml"), []byte(content), 0o600))

	t.Chdir(dir)
	t.Setenv("TOKEN_SIGNINGKEY", testSigningKey)

	cfg, err := LoadWithEnv[Config]("testing")
	require.NoError(t, err)

	assert.Equal(t, testSigningKey, cfg.Token.SigningKey)
	assert.Equal(t, time.Hour, cfg.Token.DefaultTTL)
	assert.Equal(t, 4, cfg.Captcha.Length)
	assert.Equal(t, 2*time.Minute, cfg.Captcha.TTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}
