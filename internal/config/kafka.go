package config

import "time"

// Kafka configures the inventory change feed. An empty address list disables publishing.
type Kafka struct {
	Addresses      []string `env:"KAFKA_ADDRESSES" envSeparator:","`
	Group          string   `env:"KAFKA_GROUP" envDefault:"inventory"`
	InventoryTopic string   `env:"KAFKA_INVENTORY_TOPIC" envDefault:"inventory.changed"`

	// PublishTimeout bounds delivery of one change event, retries included.
	PublishTimeout time.Duration `env:"KAFKA_PUBLISH_TIMEOUT" envDefault:"5s"`
}

// Enabled reports whether any broker is configured.
func (k Kafka) Enabled() bool {
	return len(k.Addresses) > 0
}
