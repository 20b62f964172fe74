package config

import (
	"testing"

	"pets-api/internal/platform/logger"

	"github.com/stretchr/testify/assert"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	c := FromLookup(env(nil))

	assert.Equal(t, "3003", c.Port)
	assert.Equal(t, ":3003", c.Addr())
	assert.Empty(t, c.DBDSN)
	assert.Equal(t, logger.Info, c.LogLevel)
	assert.Equal(t, logger.FormatText, c.LogFormat)
	assert.Equal(t, "pets-api", c.AppName)
	assert.Empty(t, c.SeedFile)
	assert.False(t, c.StrictNotFound)
}

func TestFromLookup_Overrides(t *testing.T) {
	c := FromLookup(env(map[string]string{
		"PORT":             "8080",
		"DB_DSN":           " postgres://localhost/pets ",
		"LOG_LEVEL":        "debug",
		"LOG_FORMAT":       "json",
		"APP_NAME":         "petshop",
		"SEED_FILE":        "/etc/pets/seed.yaml",
		"STRICT_NOT_FOUND": "true",
	}))

	assert.Equal(t, ":8080", c.Addr())
	assert.Equal(t, "postgres://localhost/pets", c.DBDSN)
	assert.Equal(t, logger.Debug, c.LogLevel)
	assert.Equal(t, logger.FormatJSON, c.LogFormat)
	assert.Equal(t, "petshop", c.AppName)
	assert.Equal(t, "/etc/pets/seed.yaml", c.SeedFile)
	assert.True(t, c.StrictNotFound)
}

func TestFromLookup_InvalidStrictIsFalse(t *testing.T) {
	c := FromLookup(env(map[string]string{"STRICT_NOT_FOUND": "maybe"}))
	assert.False(t, c.StrictNotFound)
}
