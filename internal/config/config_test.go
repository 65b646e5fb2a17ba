package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse_ShouldApplyDefaults(t *testing.T) {
	s, err := Parse([]byte(`app: {}`))
	require.NoError(t, err)

	assert.Equal(t, "eur", s.App().Anchor())
	assert.Equal(t, 12*time.Hour, s.App().CacheTTL())
	assert.Equal(t, "data", s.App().DataDir())
	assert.Contains(t, s.App().SourceURLTemplate(), "{segment}")
	assert.Equal(t, defaultEcbURL, s.Ecb().URL())
	assert.False(t, s.Fixer().Enabled())
	assert.False(t, s.Memcached().Enabled())
	assert.False(t, s.Postgres().Enabled())
	assert.False(t, s.Kafka().Enabled())
	assert.False(t, s.Badger().Enabled())
	assert.Equal(t, SourceHTTP, s.App().Source())
	assert.Equal(t, ":9090", s.HTTP().Addr())
	assert.Equal(t, "open-rates", s.Jaeger().ServiceName())
}

func Test_Parse_ShouldReadSections(t *testing.T) {
	raw := `
app:
  anchor-currency: USD
  cache-ttl-hours: 2
  publish-delay-minutes: 30
  source: File
fixer:
  api-key: secret
memcached:
  hosts: ["127.0.0.1:11211"]
kafka:
  brokers: ["127.0.0.1:9092"]
  rates-topic: rates
badger:
  dir: /var/lib/openrates/cache
http:
  addr: ":8080"
`
	s, err := Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "usd", s.App().Anchor())
	assert.Equal(t, 2*time.Hour, s.App().CacheTTL())
	assert.Equal(t, 30*time.Minute, s.App().PublishDelay())
	assert.True(t, s.Fixer().Enabled())
	assert.Equal(t, "secret", s.Fixer().ApiKey())
	assert.Equal(t, []string{"127.0.0.1:11211"}, s.Memcached().Hosts())
	assert.Equal(t, "rates", s.Kafka().RatesTopic())
	assert.Equal(t, SourceFile, s.App().Source())
	assert.True(t, s.Badger().Enabled())
	assert.Equal(t, ":8080", s.HTTP().Addr())
}

func Test_New_ShouldPreferSecretsFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("telegram:\n  token: from-file\nfixer:\n  api-key: from-file\n"), 0o644))
	t.Setenv(configEnvPath, path)
	t.Setenv(envTelegramToken, "from-env")

	s, err := New()
	require.NoError(t, err)

	assert.Equal(t, "from-env", s.Telegram().Token())
	assert.Equal(t, "from-file", s.Fixer().ApiKey())
}

func Test_New_ShouldFailOnMissingFile(t *testing.T) {
	t.Setenv(configEnvPath, filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := New()
	assert.Error(t, err)
}

func Test_Parse_ShouldFailOnBrokenYAML(t *testing.T) {
	_, err := Parse([]byte("app: ["))
	assert.Error(t, err)
}
