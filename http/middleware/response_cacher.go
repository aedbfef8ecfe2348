package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

var (
	cacheLock sync.Mutex
	_         ResponseCacher = make(CachedResMap)
	_         ResponseCacher = CachedResRedis{}
)

// A ResponseCacher can store responses paired to idempotency keys.
//
// A ResponseCacher ought return a newly initialized CachedRes
// when a key does not match an existing CachedRes.
type ResponseCacher interface {
	Get(ctx context.Context, key string) (CachedRes, bool)
	Set(ctx context.Context, key string, cr CachedRes)
}

// A CachedResMap stores idempotency key, CachedRes value pairs in a map.
//
// Server restarts reset this map.
// CachedResMap ought not be used for production environments.
type CachedResMap map[string]CachedResMapVal

// NewCachedResMap initializes a CachedResMap
// for use in a CacheResponses middleware as a cache.
func NewCachedResMap() CachedResMap { return make(CachedResMap) }

// A CachedResMapVal is stored in a CachedResMap,
// wrapping a CachedRes.
type CachedResMapVal struct {
	CachedRes

	at time.Time
}

// Get retrieves the result of the request matching the idempotency key
// much like a regular map.
func (c CachedResMap) Get(ctx context.Context, key string) (CachedRes, bool) {
	if key == "" {
		return CachedRes{}, false
	}

	select {
	case <-ctx.Done():
		return CachedRes{}, false

	default:
		cacheLock.Lock()
		defer cacheLock.Unlock()

		v, ok := c[key]
		return v.CachedRes, ok
	}
}

// Set overwrites the value paired to key in the map.
//
// For each call to Set, keys older than 24 hours are evicted.
func (c CachedResMap) Set(ctx context.Context, key string, cr CachedRes) {
	select {
	case <-ctx.Done():
		return
	default:
		cacheLock.Lock()
		defer cacheLock.Unlock()

		yesterday := time.Now().AddDate(0, 0, -1)
		for k, v := range c {
			if v.at.Before(yesterday) {
				delete(c, k)
			}
		}

		c[key] = CachedResMapVal{CachedRes: cr, at: time.Now()}
	}
}

// A CachedResRedis connects to a Redis backend
// for the purposes of caching responses.
type CachedResRedis struct {
	client *redis.Client
}

// NewRedisCache constructs a CachedResRedis with the options passed in.
func NewRedisCache(opts *redis.Options) CachedResRedis {
	return CachedResRedis{client: redis.NewClient(opts)}
}

// Get retrieves the CachedRes paired to key from the connected Redis backend.
func (c CachedResRedis) Get(ctx context.Context, key string) (CachedRes, bool) {
	select {
	case <-ctx.Done():
		return CachedRes{}, false
	default:
		b, err := c.client.Get(ctx, key).Bytes()
		if err != nil {
			return CachedRes{}, false
		}

		cr := new(CachedRes)
		if err := cr.GobDecode(b); err != nil {
			return CachedRes{}, false
		}

		return *cr, true
	}
}

// Set saves the CachedRes by pairing it to the key in the Redis backend.
func (c CachedResRedis) Set(ctx context.Context, key string, cr CachedRes) {
	select {
	case <-ctx.Done():
		return
	default:
		b, err := cr.GobEncode()
		if err != nil {
			return
		}
		c.client.Set(ctx, key, b, 24*time.Hour)
	}
}
