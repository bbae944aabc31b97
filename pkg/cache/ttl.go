// Package cache implementa a memoização por tempo usada pelas consultas do painel.
//
// Cada entrada guarda o valor, o instante de inserção e o TTL com que foi carregada.
// GetOrLoad reaproveita o valor enquanto ele for mais novo que o TTL pedido; em caso
// de miss, cargas simultâneas da mesma chave são agrupadas (singleflight) e apenas uma
// chega à função de carga. Erros de carga não são memorizados.
package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-panel-api/pkg/metrics"
	"golang.org/x/sync/singleflight"
)

// Purger é qualquer cache que sabe remover entradas expiradas
type Purger interface {
	Name() string
	PurgeExpired() int
}

// Option configura um cache
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock troca o relógio usado para calcular a idade das entradas
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

type entry[V any] struct {
	value      V
	insertedAt time.Time
	ttl        time.Duration
}

// TTL é um cache chave -> (valor, instante de inserção) seguro para uso concorrente
type TTL[K comparable, V any] struct {
	name    string
	mu      sync.RWMutex
	entries map[K]entry[V]
	group   singleflight.Group
	now     func() time.Time
}

// New cria um cache identificado por name (usado em métricas e logs)
func New[K comparable, V any](name string, opts ...Option) *TTL[K, V] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &TTL[K, V]{
		name:    name,
		entries: make(map[K]entry[V]),
		now:     o.now,
	}
}

// Name retorna o nome do cache
func (c *TTL[K, V]) Name() string {
	return c.name
}

// Get retorna o valor se existir uma entrada mais nova que ttl
func (c *TTL[K, V]) Get(key K, ttl time.Duration) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().Sub(e.insertedAt) >= ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set grava o valor com o instante atual
func (c *TTL[K, V]) Set(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, insertedAt: c.now(), ttl: ttl}
	size := len(c.entries)
	c.mu.Unlock()

	metrics.CacheEntries.WithLabelValues(c.name).Set(float64(size))
}

// GetOrLoad devolve o valor memorizado para key ou executa load e memoriza o resultado
func (c *TTL[K, V]) GetOrLoad(key K, ttl time.Duration, load func() (V, error)) (V, error) {
	if v, ok := c.Get(key, ttl); ok {
		metrics.CacheRequests.WithLabelValues(c.name, "hit").Inc()
		return v, nil
	}

	flightKey := fmt.Sprintf("%#v", key)
	result, err, shared := c.group.Do(flightKey, func() (any, error) {
		// outra chamada pode ter preenchido a entrada enquanto aguardávamos
		if v, ok := c.Get(key, ttl); ok {
			return v, nil
		}

		metrics.CacheRequests.WithLabelValues(c.name, "miss").Inc()
		started := c.now()
		v, err := load()
		metrics.CacheLoadDuration.WithLabelValues(c.name).Observe(time.Since(started).Seconds())
		if err != nil {
			metrics.CacheLoadErrors.WithLabelValues(c.name).Inc()
			return v, err
		}

		c.Set(key, v, ttl)
		return v, nil
	})
	if shared {
		metrics.CacheRequests.WithLabelValues(c.name, "shared").Inc()
	}
	if err != nil {
		var zero V
		return zero, err
	}

	return result.(V), nil
}

// Invalidate remove uma chave
func (c *TTL[K, V]) Invalidate(key K) {
	c.mu.Lock()
	delete(c.entries, key)
	size := len(c.entries)
	c.mu.Unlock()

	metrics.CacheEntries.WithLabelValues(c.name).Set(float64(size))
}

// Clear remove todas as entradas
func (c *TTL[K, V]) Clear() {
	c.mu.Lock()
	c.entries = make(map[K]entry[V])
	c.mu.Unlock()

	metrics.CacheEntries.WithLabelValues(c.name).Set(0)
}

// Len retorna o número de entradas, expiradas ou não
func (c *TTL[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// PurgeExpired remove as entradas mais velhas que o TTL com que foram carregadas
func (c *TTL[K, V]) PurgeExpired() int {
	now := c.now()

	c.mu.Lock()
	removed := 0
	for k, e := range c.entries {
		if now.Sub(e.insertedAt) >= e.ttl {
			delete(c.entries, k)
			removed++
		}
	}
	size := len(c.entries)
	c.mu.Unlock()

	metrics.CacheEntries.WithLabelValues(c.name).Set(float64(size))
	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"cache":   c.name,
			"removed": removed,
			"entries": size,
		}).Debug("cache: expired entries purged")
	}

	return removed
}
