package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Path            string `mapstructure:"path"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	Iterations int `mapstructure:"iterations"`
}

type SessionConfig struct {
	TTLDays int `mapstructure:"ttl_days"`
}

type CookieConfig struct {
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

// LockoutConfig controls the login rate limiter state machine.
type LockoutConfig struct {
	MaxFailures     int `mapstructure:"max_failures"`
	WindowMinutes   int `mapstructure:"window_minutes"`
	DurationMinutes int `mapstructure:"duration_minutes"`
}

type AuthConfig struct {
	// BootstrapPassword seeds the first credential when the store is empty.
	// The plaintext is hashed immediately and never persisted.
	BootstrapPassword string         `mapstructure:"bootstrap_password"`
	IdentitySalt      string         `mapstructure:"identity_salt"`
	Password          PasswordConfig `mapstructure:"password"`
	Session           SessionConfig  `mapstructure:"session"`
	Cookie            CookieConfig   `mapstructure:"cookie"`
	Lockout           LockoutConfig  `mapstructure:"lockout"`
}

// ThrottleConfig bounds public comment submission per hashed client identifier.
type ThrottleConfig struct {
	Limit         int `mapstructure:"limit"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type CommentsConfig struct {
	RequireReview    bool           `mapstructure:"require_review"`
	MaxBodyLength    int            `mapstructure:"max_body_length"`
	ReviewBodyLength int            `mapstructure:"review_body_length"`
	Throttle         ThrottleConfig `mapstructure:"throttle"`
}

type CaptchaConfig struct {
	TurnstileSecret string `mapstructure:"turnstile_secret"`
	VerifyURL       string `mapstructure:"verify_url"`
}

type SchemaConfig struct {
	AllowBootstrap bool `mapstructure:"allow_bootstrap"`
}
