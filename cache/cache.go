package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordhand/config"
)

// The cache holds objects that are expensive to load and safe to share, such
// as word lists. A shell that starts several games reuses the same lexicon.

type cache struct {
	sync.Mutex
	objects map[string]any
}

type LoadFunc func(cfg *config.Config, key string) (any, error)

// GlobalObjectCache is the process-wide cache.
var GlobalObjectCache *cache

var globalMu sync.Mutex

func (c *cache) load(cfg *config.Config, key string, loadFunc LoadFunc) error {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(cfg, key)
	if err != nil {
		return err
	}
	c.objects[key] = obj

	return nil
}

func (c *cache) get(cfg *config.Config, key string, loadFunc LoadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	if err := c.load(cfg, key, loadFunc); err != nil {
		return nil, err
	}
	return c.objects[key], nil
}

func CreateGlobalObjectCache() {
	globalMu.Lock()
	defer globalMu.Unlock()
	GlobalObjectCache = &cache{objects: make(map[string]any)}
}

// Load returns the object cached under name, calling loadFunc to populate the
// cache the first time. A failed load is not cached.
func Load(cfg *config.Config, name string, loadFunc LoadFunc) (any, error) {
	globalMu.Lock()
	if GlobalObjectCache == nil {
		GlobalObjectCache = &cache{objects: make(map[string]any)}
	}
	c := GlobalObjectCache
	globalMu.Unlock()
	return c.get(cfg, name, loadFunc)
}
