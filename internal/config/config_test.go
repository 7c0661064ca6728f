package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":3000", c.HTTP.Addr)
	assert.Equal(t, "1234", c.Manager.PIN)
	assert.Equal(t, "log", c.Notify.Transport)
	assert.Equal(t, 30*time.Second, c.Notify.Timeout)
	assert.Equal(t, "smtp.gmail.com", c.SMTP.Host)
	assert.Equal(t, 465, c.SMTP.Port)
	assert.True(t, c.SMTP.SSL)
	assert.Equal(t, 12*time.Hour, c.Cart.TTL)
	assert.Equal(t, "Built Right Company", c.App.Company)
}

func TestLoad_File(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, `
app:
  env: dev
  company: Acme Body Shop
storage:
  driver: memory
notify:
  transport: telegram
  timeout: 5s
telegram:
  token: "t"
  admin_chat_id: 12345
cart:
  ttl: 1h
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dev", c.App.Env)
	assert.Equal(t, "Acme Body Shop", c.App.Company)
	assert.Equal(t, "memory", c.Storage.Driver)
	assert.Equal(t, "telegram", c.Notify.Transport)
	assert.Equal(t, 5*time.Second, c.Notify.Timeout)
	assert.Equal(t, int64(12345), c.Telegram.AdminChatID)
	assert.Equal(t, time.Hour, c.Cart.TTL)
}

func TestLoad_LegacyEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MANAGER_PIN", "4321")
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/supply")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "4321", c.Manager.PIN)
	assert.Equal(t, ":8080", c.HTTP.Addr)
	assert.Equal(t, "postgres://u:p@db/supply", c.Postgres.DSN)
}

func TestLoad_PrefixedEnvOverridesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, "manager:\n  pin: \"1111\"\n")
	t.Setenv("APP_MANAGER_PIN", "2222")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2222", c.Manager.PIN)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
