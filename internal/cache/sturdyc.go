package cache

import (
	"fmt"

	"github.com/viccon/sturdyc"

	"github.com/menaget/ordermgmt/internal/port"
)

type sturdycCache struct {
	client *sturdyc.Client[any]
}

// New builds the bounded in-process cache behind port.Cache. Eviction and
// expiry are delegated to sturdyc.
func New(cfg Config) (port.Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cfg.Validate: %w", err)
	}

	client := sturdyc.New[any](cfg.Capacity, cfg.NumShards, cfg.TTL, cfg.EvictionPercentage)

	return &sturdycCache{client: client}, nil
}

func (c *sturdycCache) Get(key string) (any, bool) {
	return c.client.Get(key)
}

func (c *sturdycCache) Set(key string, value any) {
	c.client.Set(key, value)
}

func (c *sturdycCache) Delete(key string) {
	c.client.Delete(key)
}
