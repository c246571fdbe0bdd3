// Package slot provides the persisted document slot: one well-known key in a
// key-value persistence mechanism holding the serialized store document.
// Drivers cover ephemeral (memory), local (fs, sqlite), and server-backed
// (postgres, redis, s3) deployments.
package slot

import (
	"context"
	"fmt"
)

// Driver identifies a concrete slot implementation.
type Driver string

const (
	DriverMemory   Driver = "memory"   // in-memory only (tests / ephemeral)
	DriverFS       Driver = "fs"       // single JSON file on disk
	DriverSQLite   Driver = "sqlite"   // embedded sqlite file (default)
	DriverPostgres Driver = "postgres" // PostgreSQL server
	DriverRedis    Driver = "redis"    // Redis key
	DriverS3       Driver = "s3"       // S3 / MinIO object
)

// DefaultKey names the slot when configuration leaves it empty.
const DefaultKey = "hotel_management_db"

// Slot stores one opaque document under one well-known key.
type Slot interface {
	// Load returns the stored document. found is false when the slot has
	// never been written; that is not an error.
	Load(ctx context.Context) (data []byte, found bool, err error)
	// Save overwrites the stored document.
	Save(ctx context.Context, data []byte) error
	Driver() Driver
}

// Config holds construction parameters for every driver. Only the fields of
// the selected driver are consulted.
type Config struct {
	Driver Driver
	Key    string // slot key / bucket name inside the backend

	Path string // fs file path or sqlite database path

	PostgresDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	S3Bucket          string
	S3Region          string
	S3Endpoint        string // optional, for MinIO
	S3PathStyle       bool
	S3AccessKeyID     string // optional (falls back to default credentials chain)
	S3SecretAccessKey string
	S3SessionToken    string
}

func (c Config) key() string {
	if c.Key == "" {
		return DefaultKey
	}
	return c.Key
}

// Open selects a Slot implementation from the configuration.
// Defaults to sqlite when the driver is unset.
func Open(ctx context.Context, cfg Config) (Slot, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverSQLite
	}
	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFS:
		return NewFS(cfg.Path)
	case DriverSQLite:
		return NewSQLite(cfg.Path, cfg.key())
	case DriverPostgres:
		return NewPostgres(ctx, cfg.PostgresDSN, cfg.key())
	case DriverRedis:
		return NewRedis(ctx, cfg)
	case DriverS3:
		return NewS3(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown slot driver %s", driver)
	}
}
