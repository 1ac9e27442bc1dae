package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config del BFF. Las keys son las mismas variables de entorno que usaba
// la consola web (PATIENTS_API_BASE_URL, ...), en minúsculas para viper.
type Config struct {
	Addr string `mapstructure:"admin_addr"`
	Port string `mapstructure:"port"`

	Backends BackendsConfig `mapstructure:",squash"`

	HTTPTimeout time.Duration `mapstructure:"http_timeout"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	AppName   string `mapstructure:"app_name"`

	// Vacío => journal de actividad en memoria.
	DBDSN string `mapstructure:"db_dsn"`

	ToastMaxEntries      int           `mapstructure:"toast_max_entries"`
	ToastDefaultDuration time.Duration `mapstructure:"toast_default_duration"`
}

type BackendsConfig struct {
	PatientsBaseURL     string `mapstructure:"patients_api_base_url"`
	RecordsBaseURL      string `mapstructure:"records_api_base_url"`
	InvoicesBaseURL     string `mapstructure:"invoices_api_base_url"`
	AppointmentsBaseURL string `mapstructure:"appointments_api_base_url"`
}

// All devuelve las URLs por nombre de backend (para logs y `admin ping`).
func (b BackendsConfig) All() map[string]string {
	return map[string]string{
		"patients":     b.PatientsBaseURL,
		"records":      b.RecordsBaseURL,
		"invoices":     b.InvoicesBaseURL,
		"appointments": b.AppointmentsBaseURL,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("admin_addr", "")
	v.SetDefault("port", "8080")

	v.SetDefault("patients_api_base_url", "http://localhost:8081")
	v.SetDefault("records_api_base_url", "http://localhost:8082")
	v.SetDefault("invoices_api_base_url", "http://localhost:8083/api/v1")
	v.SetDefault("appointments_api_base_url", "http://localhost:8084/api/v1")

	v.SetDefault("http_timeout", "10s")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("app_name", "riavet-admin")

	v.SetDefault("db_dsn", "")

	v.SetDefault("toast_max_entries", 50)
	v.SetDefault("toast_default_duration", "3s")
}

// Load: defaults -> archivo opcional (yaml/json) -> variables de entorno.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if strings.TrimSpace(configFile) != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	for name, raw := range c.Backends.All() {
		u, err := url.ParseRequestURI(raw)
		if err != nil || u.Host == "" {
			return fmt.Errorf("invalid %s base url %q", name, raw)
		}
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive, got %s", c.HTTPTimeout)
	}
	if c.ToastMaxEntries <= 0 {
		return fmt.Errorf("toast_max_entries must be positive, got %d", c.ToastMaxEntries)
	}
	return nil
}

// ListenAddr: ADMIN_ADDR tiene prioridad; si no, ":" + PORT.
func (c *Config) ListenAddr() string {
	if a := strings.TrimSpace(c.Addr); a != "" {
		return a
	}
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}
