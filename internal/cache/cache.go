package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

// Cache stores JSON encoded values by string key.
type Cache interface {
	Get(key string, dst any) bool
	Set(key string, value any, expire time.Duration)
	Del(key string)
	Clear()
}

var _ Cache = (*JSONCache)(nil)

// JSONCache is a size bounded in-memory cache backed by freecache.
// Values are stored JSON encoded, so callers always get their own copy.
type JSONCache struct {
	cache *freecache.Cache
	name  string
}

func NewJSONCache(name string, sizeMB int) *JSONCache {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &JSONCache{
		cache: freecache.NewCache(sizeMB * megabyte),
		name:  name,
	}
}

func (c *JSONCache) Get(key string, dst any) bool {
	valueBytes, err := c.cache.Get([]byte(key))
	if err != nil {
		if err != freecache.ErrNotFound {
			log.Errorf("%s cache get [%s]: %s", c.name, key, err)
		}
		return false
	}
	if err := json.Unmarshal(valueBytes, dst); err != nil {
		log.Errorf("%s cache, unmarshal [%s]: %s", c.name, key, err)
		c.cache.Del([]byte(key))
		return false
	}
	return true
}

func (c *JSONCache) Set(key string, value any, expire time.Duration) {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		log.Errorf("%s cache, marshal [%s]: %s", c.name, key, err)
		return
	}
	if err := c.cache.Set([]byte(key), valueBytes, int(expire.Seconds())); err != nil {
		log.Errorf("%s cache set [%s]: %s", c.name, key, err)
	}
}

func (c *JSONCache) Del(key string) {
	c.cache.Del([]byte(key))
}

func (c *JSONCache) Clear() {
	c.cache.Clear()
}

func (c *JSONCache) String() string {
	return fmt.Sprintf("%s cache: %d entries, hit rate %.2f", c.name, c.cache.EntryCount(), c.cache.HitRate())
}
