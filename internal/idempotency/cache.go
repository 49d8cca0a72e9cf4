// Package idempotency remembers responses to requests carrying an
// Idempotency-Key header, so retried submissions are answered without being
// stored twice. Entries live in process memory only.
package idempotency

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	HeaderKey      = "Idempotency-Key"
	HeaderReplayed = "Idempotent-Replayed"

	megabyte   = 1024 * 1024
	maxKeySize = 255
)

var (
	ErrInvalidKey = errors.New("invalid idempotency key")
	ErrInFlight   = errors.New("request with this idempotency key is in progress")
)

// Response is the stored answer to the first request with a given key.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       []byte `json:"body"`
}

type Cache struct {
	cache         *freecache.Cache
	expirySeconds int

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewCache(sizeMB int, expiry time.Duration) *Cache {
	return newCache(freecache.NewCache(sizeMB*megabyte), expiry)
}

func newCacheWithTimer(sizeMB int, expiry time.Duration, timer freecache.Timer) *Cache {
	return newCache(freecache.NewCacheCustomTimer(sizeMB*megabyte, timer), expiry)
}

func newCache(cache *freecache.Cache, expiry time.Duration) *Cache {
	return &Cache{
		cache:         cache,
		expirySeconds: int(expiry.Seconds()),
		inFlight:      make(map[string]struct{}),
	}
}

func ValidateKey(key string) error {
	if key == "" || len(key) > maxKeySize {
		return fmt.Errorf("%w: length must be between 1 and %d", ErrInvalidKey, maxKeySize)
	}
	return nil
}

// keys are scoped by owner, two owners may use the same key
func cacheKey(ownerID, key string) []byte {
	return []byte(ownerID + "||" + key)
}

// Begin marks the key of the owner as being processed. It fails with ErrInFlight
// while another request with the same key has not called its release func yet.
// Release only after the response is Set, so later requests find it.
func (c *Cache) Begin(ownerID, key string) (func(), error) {
	k := string(cacheKey(ownerID, key))

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.inFlight[k]; ok {
		return nil, ErrInFlight
	}
	c.inFlight[k] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.inFlight, k)
			c.mu.Unlock()
		})
	}, nil
}

func (c *Cache) Get(ownerID, key string) (*Response, bool) {
	stored, err := c.cache.Get(cacheKey(ownerID, key))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("idempotency cache get: %s", err)
		}
		return nil, false
	}

	var resp Response
	if err := json.Unmarshal(stored, &resp); err != nil {
		log.Errorf("idempotency cache unmarshal response: %s", err)
		return nil, false
	}
	return &resp, true
}

func (c *Cache) Set(ownerID, key string, resp Response) error {
	encoded, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	if err := c.cache.Set(cacheKey(ownerID, key), encoded, c.expirySeconds); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *Cache) EntryCount() int64 {
	return c.cache.EntryCount()
}
