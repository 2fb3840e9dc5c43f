package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/app/configs")

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Allow common env vars without APP_ prefix for Docker/PaaS deploys
	viper.BindEnv("http.port", "PORT", "APP_HTTP_PORT")
	viper.BindEnv("database.url", "DATABASE_URL", "APP_DATABASE_URL")
	viper.BindEnv("redis.url", "REDIS_URL", "APP_REDIS_URL")
	viper.BindEnv("queue.url", "NATS_URL", "APP_QUEUE_URL")
	viper.BindEnv("email.sendgrid_api_key", "SENDGRID_API_KEY", "APP_EMAIL_SENDGRID_API_KEY")
	viper.BindEnv("email.admin_email", "ADMIN_EMAIL")
	viper.BindEnv("sheets.webhook_url", "SHEETS_WEBHOOK_URL")
	viper.BindEnv("widget.base_url", "WIDGET_BASE_URL")
	viper.BindEnv("app.environment", "APP_ENVIRONMENT")
	viper.BindEnv("logging.level", "LOG_LEVEL")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file: env vars and defaults carry the whole config.
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("app.name", "photobot")
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("http.port", 3000)
	viper.SetDefault("http.read_timeout", "15s")
	viper.SetDefault("http.write_timeout", "15s")
	viper.SetDefault("http.idle_timeout", "60s")
	viper.SetDefault("database.auto_migrate", true)
	viper.SetDefault("queue.driver", "nats")
	viper.SetDefault("email.provider", "smtp")
	viper.SetDefault("email.from_email", "onboarding@photobot.dev")
	viper.SetDefault("email.from_name", "PhotoBot")
	viper.SetDefault("email.smtp_host", "localhost")
	viper.SetDefault("email.smtp_port", 1025)
	viper.SetDefault("widget.base_url", "https://widget.photobot.dev")
	viper.SetDefault("cache.client_config_ttl", "5m")
	viper.SetDefault("cache.cleanup_interval", "1m")
	viper.SetDefault("logging.level", "info")
}
