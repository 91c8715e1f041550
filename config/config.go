package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Payment  PaymentConfig
	Reminder ReminderConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// AdminConfig seeds the staff credential store with an initial admin
// account when the table is empty.
type AdminConfig struct {
	Username string
	Password string
}

type PaymentConfig struct {
	BaseURL   string
	KeyID     string
	KeySecret string
}

type ReminderConfig struct {
	Enabled bool
	// Hour of day (0-23) at which next-day appointment reminders go out.
	Hour int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	viper.SetDefault("DB_MIGRATIONS_DIR", "migrations")
	viper.SetDefault("PAYMENT_BASE_URL", "https://api.razorpay.com")
	viper.SetDefault("REMINDER_ENABLED", true)
	viper.SetDefault("REMINDER_HOUR", 18)

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:          viper.GetString("DB_HOST"),
			Port:          viper.GetString("DB_PORT"),
			User:          viper.GetString("DB_USER"),
			Password:      viper.GetString("DB_PASSWORD"),
			Name:          viper.GetString("DB_NAME"),
			MigrationsDir: viper.GetString("DB_MIGRATIONS_DIR"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Admin: AdminConfig{
			Username: viper.GetString("ADMIN_USERNAME"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		Payment: PaymentConfig{
			BaseURL:   viper.GetString("PAYMENT_BASE_URL"),
			KeyID:     viper.GetString("PAYMENT_KEY_ID"),
			KeySecret: viper.GetString("PAYMENT_KEY_SECRET"),
		},
		Reminder: ReminderConfig{
			Enabled: viper.GetBool("REMINDER_ENABLED"),
			Hour:    viper.GetInt("REMINDER_HOUR"),
		},
	}

	return config, nil
}
