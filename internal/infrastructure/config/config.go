package config

import (
	"os"
	"strconv"

	usecasecontract "github.com/mikiasgoitom/Notebook/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port              string
	BcryptCost        int
	SeedUserPassword  string
	SeedAdminPassword string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		Port:       getEnv("PORT", "8080"),
		BcryptCost: getEnvAsInt("BCRYPT_COST", 10),
		// Demo defaults matching the seeded fixtures; override in any
		// deployment that keeps the seed accounts.
		SeedUserPassword:  getEnv("SEED_USER_PASSWORD", "password1"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", "password1"),
	}
}

// GetPort returns the HTTP listen port.
func (c *Config) GetPort() string {
	return c.Port
}

// GetBcryptCost returns the bcrypt cost factor for password hashing.
func (c *Config) GetBcryptCost() int {
	return c.BcryptCost
}

// GetSeedUserPassword returns the seed password for the baseline user account.
func (c *Config) GetSeedUserPassword() string {
	return c.SeedUserPassword
}

// GetSeedAdminPassword returns the seed password for the baseline admin account.
func (c *Config) GetSeedAdminPassword() string {
	return c.SeedAdminPassword
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
