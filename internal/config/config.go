package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field maps 1:1 to a documented env var (see README §Configuration).
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Auth
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// Google Sheets store
	SpreadsheetID   string `mapstructure:"SPREADSHEET_ID"`
	CredentialsJSON string `mapstructure:"GOOGLE_CREDENTIALS_JSON"`
	CredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`
	ScansSheet      string `mapstructure:"SCANS_SHEET"`
	UsersSheet      string `mapstructure:"USERS_SHEET"`
	// BinColumn names the scans-sheet column matched by delete_scan.
	// Deployments have used both "Bin ID" and "Bin Name"; the sheet owns
	// the naming, so it is configuration rather than a constant.
	BinColumn string `mapstructure:"BIN_COLUMN"`

	// Retention
	CleanupSecretKey string `mapstructure:"CLEANUP_SECRET_KEY"`

	// Static frontend
	FrontendPath string `mapstructure:"FRONTEND_PATH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Defaults are for development only; production must set real values.
	// Keys without a meaningful default still need an empty one registered,
	// otherwise Unmarshal never looks them up and AutomaticEnv alone cannot
	// deliver their env values.
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("JWT_SECRET", "dev-only-signing-secret")
	viper.SetDefault("SPREADSHEET_ID", "")
	viper.SetDefault("GOOGLE_CREDENTIALS_JSON", "")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")
	viper.SetDefault("SCANS_SHEET", "scans")
	viper.SetDefault("USERS_SHEET", "users")
	viper.SetDefault("BIN_COLUMN", "Bin ID")
	viper.SetDefault("CLEANUP_SECRET_KEY", "dev-only-cleanup-key")
	viper.SetDefault("FRONTEND_PATH", "frontend")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.Env == "production" {
		if cfg.JWTSecret == "dev-only-signing-secret" {
			return nil, errors.New("JWT_SECRET must be set in production")
		}
		if cfg.CleanupSecretKey == "dev-only-cleanup-key" {
			return nil, errors.New("CLEANUP_SECRET_KEY must be set in production")
		}
	}
	return cfg, nil
}
