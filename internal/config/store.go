package config

import (
	"fmt"
	"strings"
)

// Store selects and configures the inventory store backend.
type Store struct {
	Driver   StoreDriver `env:"STORE_DRIVER" envDefault:"mongo"`
	Mongo    Mongo
	Postgres Postgres
	SQLite   SQLite
}

// StoreDriver names a supported inventory store backend.
type StoreDriver uint8

const (
	StoreDriverMongo StoreDriver = iota
	StoreDriverPostgres
	StoreDriverSQLite
)

var storeDriverNames = []string{"mongo", "postgres", "sqlite"}

func (d StoreDriver) String() string {
	if int(d) >= len(storeDriverNames) {
		return "unknown"
	}
	return storeDriverNames[d]
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *StoreDriver) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "mongo", "mongodb":
		*d = StoreDriverMongo
	case "postgres", "postgresql":
		*d = StoreDriverPostgres
	case "sqlite", "sqlite3":
		*d = StoreDriverSQLite
	default:
		return fmt.Errorf("unknown store driver: %s", text)
	}
	return nil
}

func (d StoreDriver) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
