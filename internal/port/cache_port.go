package port

// Cache is the narrow cache-aside surface the services need: read a value,
// store one under the process-wide TTL, drop one. Eviction and expiry belong
// to the implementation.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Delete(key string)
}
