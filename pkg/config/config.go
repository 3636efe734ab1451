package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	DB       DBConfig
	JWT      JWTConfig
	HTTP     HTTPConfig
	Email    EmailConfig
	Notifier NotifierConfig
	Redis    RedisConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	Timezone string // zona IANA usada como "fecha local" del motor de recordatorios
	LogLevel string
}

// Location resuelve la zona horaria configurada. Si no se puede cargar, usa time.Local.
func (c AppConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo (ej. DATABASE_URL de Supabase).
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// Configured indica si hay credenciales suficientes para conectarse al backend.
func (c DBConfig) Configured() bool {
	return c.DatabaseURL != "" || (c.Host != "" && c.User != "")
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT. Secret es el secreto con el que el proveedor de auth firma las sesiones.
type JWTConfig struct {
	Secret string
	Issuer string
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

// Proveedores de email soportados.
const (
	EmailProviderResend   = "resend"
	EmailProviderSendGrid = "sendgrid"
	EmailProviderLog      = "log"
)

// EmailConfig configuración del proveedor de email transaccional.
type EmailConfig struct {
	Provider       string
	ResendAPIKey   string
	SendGridAPIKey string
	From           string
}

// APIKey devuelve la clave del proveedor seleccionado ("" para el proveedor log).
func (c EmailConfig) APIKey() string {
	switch c.Provider {
	case EmailProviderSendGrid:
		return c.SendGridAPIKey
	case EmailProviderResend:
		return c.ResendAPIKey
	default:
		return ""
	}
}

// Configured indica si el proveedor seleccionado puede enviar.
func (c EmailConfig) Configured() bool {
	if c.Provider == EmailProviderLog {
		return true
	}
	return c.APIKey() != ""
}

// NotifierConfig configuración del disparador de resúmenes por email.
type NotifierConfig struct {
	CronSecret string // secreto compartido con el cron externo
	Enabled    bool   // ejecutar el scheduler diario dentro del proceso API
	Hour       int
	Minute     int
	Dedup      bool // registrar envíos para no repetir el mismo aviso el mismo día
}

// RedisConfig configuración de Redis para el registro de envíos. Addr vacío = registro en memoria.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MissingForTrigger lista las piezas de configuración ausentes que impiden ejecutar el disparador.
func (c *Config) MissingForTrigger() []string {
	var missing []string
	if !c.DB.Configured() {
		missing = append(missing, "DATABASE_URL")
	}
	if !c.Email.Configured() {
		switch c.Email.Provider {
		case EmailProviderSendGrid:
			missing = append(missing, "SENDGRID_API_KEY")
		case EmailProviderResend:
			missing = append(missing, "RESEND_API_KEY")
		default:
			missing = append(missing, "EMAIL_PROVIDER")
		}
	}
	return missing
}

// TriggerPresence describe qué variables del disparador están presentes (modo debug).
func (c *Config) TriggerPresence() map[string]bool {
	return map[string]bool{
		"has_DATABASE_URL":      c.DB.Configured(),
		"has_EMAIL_API_KEY":     c.Email.APIKey() != "",
		"has_CRON_SECRET":       c.Notifier.CronSecret != "",
		"has_REDIS_ADDR":        c.Redis.Addr != "",
		"email_provider_is_log": c.Email.Provider == EmailProviderLog,
	}
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DATABASE_URL, RESEND_API_KEY, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "rentcare-api"),
			Timezone: getString(v, "APP_TIMEZONE", "Europe/Lisbon"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", ""),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", ""),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "postgres"),
			SSLMode:     getString(v, "DB_SSLMODE", "require"),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", ""),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Email: EmailConfig{
			Provider:       strings.ToLower(getString(v, "EMAIL_PROVIDER", EmailProviderResend)),
			ResendAPIKey:   getString(v, "RESEND_API_KEY", ""),
			SendGridAPIKey: getString(v, "SENDGRID_API_KEY", ""),
			From:           getString(v, "EMAIL_FROM", "no-reply@rentcare.local"),
		},
		Notifier: NotifierConfig{
			CronSecret: getString(v, "NOTIFIER_CRON_SECRET", ""),
			Enabled:    getBool(v, "NOTIFIER_ENABLED", false),
			Hour:       getInt(v, "NOTIFIER_HOUR", 8),
			Minute:     getInt(v, "NOTIFIER_MINUTE", 0),
			Dedup:      getBool(v, "NOTIFIER_DEDUP", true),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
	}

	if cfg.Notifier.Hour < 0 || cfg.Notifier.Hour > 23 {
		return nil, fmt.Errorf("NOTIFIER_HOUR fuera de rango: %d", cfg.Notifier.Hour)
	}
	if cfg.Notifier.Minute < 0 || cfg.Notifier.Minute > 59 {
		return nil, fmt.Errorf("NOTIFIER_MINUTE fuera de rango: %d", cfg.Notifier.Minute)
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
