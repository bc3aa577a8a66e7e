package cache

import (
	"strings"
	"sync"
	"time"
)

type item[V any] struct {
	value      V
	expiration int64
}

// Cache es un caché en memoria con expiración por entrada
type Cache[V any] struct {
	items map[string]item[V]
	mu    sync.RWMutex
	ttl   time.Duration

	// maxEntries limita el número de claves; 0 es sin límite
	maxEntries int
	stop       chan struct{}
	once       sync.Once
}

// New crea el caché y arranca la limpieza periódica de items expirados
func New[V any](defaultTTL, cleanupInterval time.Duration) *Cache[V] {
	c := &Cache[V]{
		items: make(map[string]item[V]),
		ttl:   defaultTTL,
		stop:  make(chan struct{}),
	}
	go c.cleanupExpired(cleanupInterval)
	return c
}

// SetMaxEntries limita el caché a n claves. Al llenarse se descartan
// primero las expiradas y luego las que vencen antes.
func (c *Cache[V]) SetMaxEntries(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxEntries = n
}

// Set guarda un valor en caché con el TTL por defecto
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && c.maxEntries > 0 {
		for len(c.items) >= c.maxEntries {
			c.evictLocked()
		}
	}

	c.items[key] = item[V]{
		value:      value,
		expiration: time.Now().Add(c.ttl).UnixNano(),
	}
}

// Get obtiene un valor del caché
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero V
	it, found := c.items[key]
	if !found {
		return zero, false
	}

	// Verificar si expiró
	if time.Now().UnixNano() > it.expiration {
		return zero, false
	}

	return it.value, true
}

// DeleteByPrefix elimina todas las claves que empiecen con un prefijo
func (c *Cache[V]) DeleteByPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
}

// Size retorna el número de items en caché
func (c *Cache[V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stop detiene la limpieza periódica
func (c *Cache[V]) Stop() {
	c.once.Do(func() { close(c.stop) })
}

// cleanupExpired limpia items expirados periódicamente
func (c *Cache[V]) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

func (c *Cache[V]) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeExpiredLocked()
}

func (c *Cache[V]) removeExpiredLocked() {
	now := time.Now().UnixNano()
	for key, it := range c.items {
		if now > it.expiration {
			delete(c.items, key)
		}
	}
}

// evictLocked libera al menos una clave; requiere c.mu tomado
func (c *Cache[V]) evictLocked() {
	before := len(c.items)
	c.removeExpiredLocked()
	if len(c.items) < before {
		return
	}

	var (
		oldestKey string
		oldestExp int64
		first     = true
	)
	for key, it := range c.items {
		if first || it.expiration < oldestExp {
			oldestKey, oldestExp, first = key, it.expiration, false
		}
	}
	delete(c.items, oldestKey)
}
