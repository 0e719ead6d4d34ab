package config

import "time"

type Mongo struct {
	URI        string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	Database   string        `env:"MONGO_DATABASE" envDefault:"inventory"`
	Collection string        `env:"MONGO_COLLECTION" envDefault:"inventory"`
	Timeout    time.Duration `env:"MONGO_TIMEOUT" envDefault:"10s"`
}
