package ircapture

import "fmt"

// DefaultStoreCapacity is how many codes are retained unless configured
// otherwise.
const DefaultStoreCapacity = 5

// MaxStoreCapacity bounds the store; the codes are listed over a 9600 baud
// line.
const MaxStoreCapacity = 64

// Config holds the tunables of a receiver.
type Config struct {
	// StoreCapacity is the number of codes kept before the oldest is
	// evicted.
	StoreCapacity int

	// RequireResync makes the decoder ignore edges after a completed frame
	// until the next long gap.
	RequireResync bool
}

func DefaultConfig() Config {
	return Config{StoreCapacity: DefaultStoreCapacity}
}

func (c Config) Validate() error {
	if c.StoreCapacity < 1 || c.StoreCapacity > MaxStoreCapacity {
		return fmt.Errorf("ircapture: store capacity %d out of range [1, %d]", c.StoreCapacity, MaxStoreCapacity)
	}
	return nil
}
