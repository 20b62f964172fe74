package config

import (
	"os"
	"strconv"
	"strings"

	"pets-api/internal/platform/logger"
)

const (
	DefaultPort    = "3003"
	DefaultAppName = "pets-api"
)

// Config agrupa todo lo configurable del servicio.
// Load lo llena desde env; cmd/api puede pisar valores con flags.
type Config struct {
	Port string

	// DBDSN vacío => store in-memory.
	DBDSN string

	LogLevel  logger.Level
	LogFormat logger.Format
	AppName   string

	// SeedFile es un YAML con la lista inicial de mascotas. Vacío => seed por defecto.
	SeedFile string

	StrictNotFound bool
}

// Load lee:
// - PORT (default 3003)
// - DB_DSN
// - LOG_LEVEL, LOG_FORMAT, APP_NAME
// - SEED_FILE
// - STRICT_NOT_FOUND=true|false
func Load() Config {
	return FromLookup(os.LookupEnv)
}

// FromLookup permite inyectar el entorno en tests.
func FromLookup(lookup func(string) (string, bool)) Config {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	c := Config{
		Port:      DefaultPort,
		DBDSN:     get("DB_DSN"),
		LogLevel:  logger.ParseLevel(get("LOG_LEVEL")),
		LogFormat: logger.ParseFormat(get("LOG_FORMAT")),
		AppName:   DefaultAppName,
		SeedFile:  get("SEED_FILE"),
	}

	if v := get("PORT"); v != "" {
		c.Port = v
	}
	if v := get("APP_NAME"); v != "" {
		c.AppName = v
	}
	if v := get("STRICT_NOT_FOUND"); v != "" {
		// valor inválido => false, igual que no setearlo
		b, _ := strconv.ParseBool(v)
		c.StrictNotFound = b
	}

	return c
}

func (c Config) Addr() string {
	return ":" + c.Port
}
