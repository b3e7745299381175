package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la consola (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	Display DisplayConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP de la consola.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig configuración del API REST remoto (sistema de registro).
// La consola no tiene almacenamiento propio: todo estado persistente vive detrás de BaseURL.
type BackendConfig struct {
	BaseURL string // ej. http://localhost:8000/api
	Timeout time.Duration
}

// DisplayConfig preferencias de presentación de la consola.
type DisplayConfig struct {
	Currency        string // moneda de visualización; el backend almacena precios en INR
	RefreshInterval time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, BACKEND_BASE_URL, etc.
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
			Name: getString(v, "APP_NAME", "inventario-console"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			BaseURL: getString(v, "BACKEND_BASE_URL", "http://localhost:8000/api"),
			Timeout: time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Display: DisplayConfig{
			Currency:        getString(v, "DISPLAY_CURRENCY", "INR"),
			RefreshInterval: time.Duration(getInt(v, "DASHBOARD_REFRESH_SECONDS", 30)) * time.Second,
		},
	}

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL es requerido")
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
