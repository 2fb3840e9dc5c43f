package config

import "time"

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Queue    QueueConfig    `mapstructure:"queue"`
	Email    EmailConfig    `mapstructure:"email"`
	Sheets   SheetsConfig   `mapstructure:"sheets"`
	Widget   WidgetConfig   `mapstructure:"widget"`
	Cache    CacheConfig    `mapstructure:"cache"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type HTTPConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type DatabaseConfig struct {
	URL          string `mapstructure:"url"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	AutoMigrate  bool   `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	URL string `mapstructure:"url"`
}

type QueueConfig struct {
	// Driver selects the event bus: "nats" or "rabbitmq".
	Driver string `mapstructure:"driver"`
	URL    string `mapstructure:"url"`
}

type EmailConfig struct {
	// Provider selects the mail transport: "sendgrid" or "smtp".
	Provider       string `mapstructure:"provider"`
	FromEmail      string `mapstructure:"from_email"`
	FromName       string `mapstructure:"from_name"`
	AdminEmail     string `mapstructure:"admin_email"`
	SendGridAPIKey string `mapstructure:"sendgrid_api_key"`
	SMTPHost       string `mapstructure:"smtp_host"`
	SMTPPort       int    `mapstructure:"smtp_port"`
	SMTPUsername   string `mapstructure:"smtp_username"`
	SMTPPassword   string `mapstructure:"smtp_password"`
	SMTPUseTLS     bool   `mapstructure:"smtp_use_tls"`
}

type SheetsConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
}

type WidgetConfig struct {
	// BaseURL is where the widget script is served from, used in embed
	// code generation.
	BaseURL string `mapstructure:"base_url"`
}

type CacheConfig struct {
	ClientConfigTTL time.Duration `mapstructure:"client_config_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
	MaxAge         int      `mapstructure:"max_age"`
	Credentials    bool     `mapstructure:"credentials"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
