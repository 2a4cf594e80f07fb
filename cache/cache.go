package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Byte store for computed results.
//
// Get reports a miss with hit == false and a nil error. A ttl of 0 stores
// without expiration.
type ICache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

type Options struct {
	// "memory", "redis" or "none"
	Type     string        `yaml:"type" toml:"type" validate:"omitempty,oneof=memory redis none"`
	Addr     string        `yaml:"addr" toml:"addr" validate:"required_if=Type redis"`
	Password string        `yaml:"password" toml:"password"`
	DB       int           `yaml:"db" toml:"db" validate:"gte=0"`
	Prefix   string        `yaml:"prefix" toml:"prefix"`
	TTL      time.Duration `yaml:"ttl" toml:"ttl"`
	// entry limit of the memory cache, 0 for no limit
	MaxEntries int `yaml:"max_entries" toml:"max_entries" validate:"gte=0"`
}

// Creates the cache configured by options, the memory cache by default.
func New(ctx context.Context, options Options) (ICache, error) {
	switch options.Type {
	case "", "memory":
		return NewMemoryCache(options.MaxEntries), nil
	case "redis":
		return NewRedisCache(ctx, options)
	case "none":
		return NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache type %q", options.Type)
	}
}

// Builds a key from prefix and the sha256 of the json encoded parts.
func HashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

//*******************************************
// null cache
//*******************************************

var _ ICache = &NullCache{}

// Never stores anything.
type NullCache struct{}

func NewNullCache() *NullCache {
	return &NullCache{}
}

func (self *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}
func (self *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}
func (self *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}
func (self *NullCache) Close() error {
	return nil
}
