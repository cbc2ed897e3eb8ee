package cache

import (
	"errors"
	"time"
)

// Config holds the knobs for the in-process cache. TTL is process-wide:
// every entry written through Set expires after the same duration.
type Config struct {
	// Capacity is the maximum number of entries the cache can hold.
	Capacity int

	// NumShards is the number of shards used for concurrent access.
	NumShards int

	// TTL is the time-to-live applied to every entry.
	TTL time.Duration

	// EvictionPercentage is the share of entries evicted once capacity is reached.
	EvictionPercentage int
}

// DefaultConfig returns a small cache: 100 entries with a 60 second TTL.
func DefaultConfig() Config {
	return Config{
		Capacity:           100,
		NumShards:          64,
		TTL:                60 * time.Second,
		EvictionPercentage: 10,
	}
}

func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return errors.New("capacity must be greater than 0")
	}

	if c.NumShards <= 0 {
		return errors.New("num shards must be greater than 0")
	}

	if c.TTL <= 0 {
		return errors.New("ttl must be greater than 0")
	}

	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return errors.New("eviction percentage must be between 1 and 100")
	}

	return nil
}
