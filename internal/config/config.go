package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// PayrollConfig holds the injected statutory constants: deduction rates
// (percent of gross), the night window boundaries and the night-allowance
// multiplier. Rates are jurisdiction-specific and must never be hard-coded
// in the calculation path.
type PayrollConfig struct {
	EmploymentInsuranceRate decimal.Decimal
	HealthInsuranceRate     decimal.Decimal
	IndustrialAccidentRate  decimal.Decimal
	NationalPensionRate     decimal.Decimal
	IncomeTaxRate           decimal.Decimal

	NightWindowStart int // minutes of day, inclusive
	NightWindowEnd   int // minutes of day, exclusive
	NightMultiplier  decimal.Decimal
}

func Load() (*Config, error) {
	// A missing .env file is fine in production; env vars take over.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "moup"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	payroll, err := loadPayrollConfig()
	if err != nil {
		return nil, err
	}
	config.Payroll = payroll

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Default rates follow the Korean "4 major insurances" employee shares plus
// the flat withholding income tax. All overridable per deployment.
func loadPayrollConfig() (PayrollConfig, error) {
	cfg := PayrollConfig{}

	rates := []struct {
		dst      *decimal.Decimal
		key      string
		fallback string
	}{
		{&cfg.EmploymentInsuranceRate, "RATE_EMPLOYMENT_INSURANCE", "0.9"},
		{&cfg.HealthInsuranceRate, "RATE_HEALTH_INSURANCE", "3.545"},
		{&cfg.IndustrialAccidentRate, "RATE_INDUSTRIAL_ACCIDENT", "0.7"},
		{&cfg.NationalPensionRate, "RATE_NATIONAL_PENSION", "4.5"},
		{&cfg.IncomeTaxRate, "RATE_INCOME_TAX", "3.3"},
	}
	for _, r := range rates {
		v, err := decimal.NewFromString(getEnv(r.key, r.fallback))
		if err != nil {
			return PayrollConfig{}, fmt.Errorf("invalid %s: %w", r.key, err)
		}
		*r.dst = v
	}

	nightStart, err := strconv.Atoi(getEnv("NIGHT_WINDOW_START_MINUTE", "1320")) // 22:00
	if err != nil {
		return PayrollConfig{}, fmt.Errorf("invalid NIGHT_WINDOW_START_MINUTE: %w", err)
	}
	nightEnd, err := strconv.Atoi(getEnv("NIGHT_WINDOW_END_MINUTE", "360")) // 06:00
	if err != nil {
		return PayrollConfig{}, fmt.Errorf("invalid NIGHT_WINDOW_END_MINUTE: %w", err)
	}
	cfg.NightWindowStart = nightStart
	cfg.NightWindowEnd = nightEnd

	mult, err := decimal.NewFromString(getEnv("NIGHT_ALLOWANCE_MULTIPLIER", "1.5"))
	if err != nil {
		return PayrollConfig{}, fmt.Errorf("invalid NIGHT_ALLOWANCE_MULTIPLIER: %w", err)
	}
	cfg.NightMultiplier = mult

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1")
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS")
	}
	if c.Payroll.NightWindowStart < 0 || c.Payroll.NightWindowStart > 1439 {
		return fmt.Errorf("NIGHT_WINDOW_START_MINUTE out of range")
	}
	if c.Payroll.NightWindowEnd < 0 || c.Payroll.NightWindowEnd > 1439 {
		return fmt.Errorf("NIGHT_WINDOW_END_MINUTE out of range")
	}
	if c.Payroll.NightMultiplier.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("NIGHT_ALLOWANCE_MULTIPLIER must be >= 1")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
