// Package config loads hotelcore runtime configuration from environment
// variables, optionally overlaid from a .env file.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"hotelcore/internal/slot"
)

// Config holds every runtime setting. Each field corresponds to one
// HOTELCORE_* environment variable; unset variables keep the zero value and
// the consuming component applies its own default.
type Config struct {
	SlotDriver string // memory|fs|sqlite|postgres|redis|s3 (default sqlite)
	SlotKey    string // slot key inside the backend

	FSPath     string // document path when driver=fs
	SQLitePath string // database path when driver=sqlite

	PostgresDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3PathStyle bool

	LogLevel  string // debug|info|warn|error (default info)
	LogFormat string // json|console (default json)
}

// Load reads the configuration from the environment. When a .env file exists
// in the working directory it is loaded first; a missing file is not an
// error.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		SlotDriver:    os.Getenv("HOTELCORE_SLOT_DRIVER"),
		SlotKey:       os.Getenv("HOTELCORE_SLOT_KEY"),
		FSPath:        os.Getenv("HOTELCORE_FS_PATH"),
		SQLitePath:    os.Getenv("HOTELCORE_SQLITE_PATH"),
		PostgresDSN:   os.Getenv("HOTELCORE_POSTGRES_DSN"),
		RedisAddr:     os.Getenv("HOTELCORE_REDIS_ADDR"),
		RedisPassword: os.Getenv("HOTELCORE_REDIS_PASSWORD"),
		RedisDB:       intEnv("HOTELCORE_REDIS_DB"),
		S3Bucket:      os.Getenv("HOTELCORE_S3_BUCKET"),
		S3Region:      os.Getenv("HOTELCORE_S3_REGION"),
		S3Endpoint:    os.Getenv("HOTELCORE_S3_ENDPOINT"),
		S3PathStyle:   boolEnv("HOTELCORE_S3_PATH_STYLE"),
		LogLevel:      os.Getenv("HOTELCORE_LOG_LEVEL"),
		LogFormat:     os.Getenv("HOTELCORE_LOG_FORMAT"),
	}
}

// SlotConfig maps the configuration onto the slot factory's parameters.
func (c Config) SlotConfig() slot.Config {
	path := c.SQLitePath
	if slot.Driver(c.SlotDriver) == slot.DriverFS {
		path = c.FSPath
	}
	return slot.Config{
		Driver:            slot.Driver(c.SlotDriver),
		Key:               c.SlotKey,
		Path:              path,
		PostgresDSN:       c.PostgresDSN,
		RedisAddr:         c.RedisAddr,
		RedisPassword:     c.RedisPassword,
		RedisDB:           c.RedisDB,
		S3Bucket:          c.S3Bucket,
		S3Region:          c.S3Region,
		S3Endpoint:        c.S3Endpoint,
		S3PathStyle:       c.S3PathStyle,
		S3AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		S3SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
	}
}

func intEnv(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func boolEnv(key string) bool {
	v := os.Getenv(key)
	return strings.EqualFold(v, "true") || v == "1"
}
