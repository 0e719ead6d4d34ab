package config

type SQLite struct {
	Path string `env:"SQLITE_PATH" envDefault:"inventory.db"`
}
