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
	JWT     JWTConfig
	Backend BackendConfig
	Sync    SyncConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración para validar los Bearer Tokens del dashboard.
// El secreto es compartido con el backend del libro mayor, que es quien los emite.
type JWTConfig struct {
	Secret string
	Issuer string
}

// BackendConfig configuración del backend remoto (libro mayor e inventario).
// BaseURL puede reconfigurarse en runtime vía PUT /settings; este valor es el
// punto de partida con un default codificado si la env var no existe.
type BackendConfig struct {
	BaseURL   string
	Timeout   time.Duration // timeout por llamada HTTP al backend
	AuthToken string        // token de servicio opcional para el backend
}

// SyncConfig parámetros de los ciclos de refresco de cachés locales.
type SyncConfig struct {
	PollInterval time.Duration // intervalo del sondeo de movimientos
	MovementCap  int           // máximo de movimientos retenidos en memoria
}

// DefaultBackendURL URL del backend si no hay configuración explícita.
const DefaultBackendURL = "http://localhost:4000/api/v1"

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_BASE_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "gestion-pro"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", "gestion-pro"),
		},
		Backend: BackendConfig{
			BaseURL:   getString(v, "BACKEND_BASE_URL", DefaultBackendURL),
			Timeout:   time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
			AuthToken: getString(v, "BACKEND_AUTH_TOKEN", ""),
		},
		Sync: SyncConfig{
			PollInterval: time.Duration(getInt(v, "SYNC_POLL_INTERVAL_SECONDS", 5)) * time.Second,
			MovementCap:  getInt(v, "SYNC_MOVEMENT_CAP", 200),
		},
	}

	if cfg.Sync.MovementCap <= 0 {
		cfg.Sync.MovementCap = 200
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
