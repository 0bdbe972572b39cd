// Package env loads the .env file once at startup and answers key lookups
// with a default. Keys the application reads:
//
//	APP_ENV, APP_HOST, APP_PORT    runtime mode and listen address
//	DB_USER, DB_PASSWORD,
//	DB_HOST, DB_PORT, DB_NAME      MySQL mirror database
//	CACHE_HOST, CACHE_PORT         Redis for dashboard counts
//	STRIPE_SECRET_KEY              provider API credential
//	ADMIN_USER, ADMIN_PASSWORD     basic auth for the admin pages
package env

import (
	"os"

	"github.com/joho/godotenv"
)

var Env map[string]string

// GetEnv answers from the loaded .env map first, then the process
// environment (containers and tests set keys there), then the default.
func GetEnv(key, def string) string {
	if val, ok := Env[key]; ok {
		return val
	}
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// SetupEnvFile reads the .env file into Env. The binary may be started from
// the project root or from within cmd/paymirror, so a few locations are
// tried before giving up.
func SetupEnvFile() {
	candidates := []string{
		".env",
		"../../.env",
		"../../../.env",
	}

	var err error
	for _, path := range candidates {
		if Env, err = godotenv.Read(path); err == nil {
			return
		}
	}
	panic("no .env file found; create one next to the binary or the project root")
}

func IsDev() bool {
	return GetEnv("APP_ENV", "prod") == "dev"
}
