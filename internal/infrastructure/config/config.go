package config

import (
	"os"
	"strconv"
	"strings"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreMemory   = "memory"
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
)

type Config struct {
	Port                 string
	GinMode              string
	StoreDriver          string
	LogLevel             string
	LogFormat            string
	DashboardRecentLimit int
	DynamoDB             DynamoDB
	Postgres             Postgres
}

type DynamoDB struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	CustomersTable  string
	PoliciesTable   string
	ClaimsTable     string
	CountersTable   string
}

type Postgres struct {
	DSN      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Load reads the configuration from the environment. A .env file, when
// present, is loaded earlier by godotenv/autoload in main.
func Load() Config {
	return Config{
		Port:                 getenvDefault("PORT", "8080"),
		GinMode:              getenvDefault("GIN_MODE", "debug"),
		StoreDriver:          strings.ToLower(getenvDefault("STORE_DRIVER", StoreMemory)),
		LogLevel:             getenvDefault("LOG_LEVEL", "info"),
		LogFormat:            getenvDefault("LOG_FORMAT", "json"),
		DashboardRecentLimit: getenvInt("DASHBOARD_RECENT_LIMIT", 5),
		DynamoDB: DynamoDB{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			CustomersTable:  getenvDefault("CUSTOMERS_TABLE", "customers"),
			PoliciesTable:   getenvDefault("POLICIES_TABLE", "policies"),
			ClaimsTable:     getenvDefault("CLAIMS_TABLE", "claims"),
			CountersTable:   getenvDefault("COUNTERS_TABLE", "counters"),
		},
		Postgres: Postgres{
			DSN:      os.Getenv("DB_DSN"),
			Host:     getenvDefault("DB_HOST", "localhost"),
			Port:     getenvDefault("DB_PORT", "5432"),
			User:     firstNonEmpty(os.Getenv("DB_USER"), os.Getenv("POSTGRES_USER"), "postgres"),
			Password: firstNonEmpty(os.Getenv("DB_PASSWORD"), os.Getenv("POSTGRES_PASSWORD"), "postgres"),
			Name:     firstNonEmpty(os.Getenv("DB_NAME"), os.Getenv("POSTGRES_DB"), "insurance"),
			SSLMode:  getenvDefault("DB_SSLMODE", "disable"),
		},
	}
}

// ConnString returns DB_DSN when set, otherwise a key/value DSN built from
// the DB_* variables.
func (p Postgres) ConnString() string {
	if strings.TrimSpace(p.DSN) != "" {
		return p.DSN
	}
	return "host=" + p.Host + " user=" + p.User + " password=" + p.Password +
		" dbname=" + p.Name + " port=" + p.Port + " sslmode=" + p.SSLMode
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
