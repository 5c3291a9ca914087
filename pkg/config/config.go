package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Strapi  StrapiConfig
	Session SessionConfig
	Cache   CacheConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP del gateway.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StrapiConfig configuración del content API (Strapi) del que el gateway es cliente.
type StrapiConfig struct {
	BaseURL string        // ej. http://localhost:1337/api
	Timeout time.Duration // timeout de red para llamadas salientes
}

// SessionConfig configuración de la sesión autenticada persistida en disco.
type SessionConfig struct {
	FilePath  string // ruta del archivo JSON de sesión
	LoginPath string // ruta de login a la que se redirige tras un 401
}

// CacheConfig configuración del caché de listados.
// Si RedisAddr está vacío se usa el caché en memoria del proceso.
type CacheConfig struct {
	RedisAddr     string
	RedisPassword string
	TTL           time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, STRAPI_URL, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "stockflow-admin"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Strapi: StrapiConfig{
			BaseURL: getString(v, "STRAPI_URL", "http://localhost:1337/api"),
			Timeout: time.Duration(getInt(v, "STRAPI_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Session: SessionConfig{
			FilePath:  getString(v, "SESSION_FILE", ".stockflow/session.json"),
			LoginPath: getString(v, "LOGIN_PATH", "/login"),
		},
		Cache: CacheConfig{
			RedisAddr:     getString(v, "REDIS_ADDR", ""),
			RedisPassword: getString(v, "REDIS_PASSWORD", ""),
			TTL:           time.Duration(getInt(v, "CACHE_TTL_SECONDS", 300)) * time.Second,
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
