package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

// Cache caché de listados del content API. Las claves se componen por recurso
// para poder invalidar de forma gruesa: toda mutación sobre un recurso borra
// todos sus listados cacheados, sin importar con qué parámetros se pidieron.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	InvalidateResource(ctx context.Context, resource string) error
}

// Key compone la clave de un listado: query:<recurso>:<hash de los parámetros>.
// El hash hace la clave estable frente a parámetros largos o con caracteres raros.
func Key(resource, serializedParams string) string {
	sum := sha256.Sum256([]byte(serializedParams))
	return resourcePrefix(resource) + hex.EncodeToString(sum[:])
}

func resourcePrefix(resource string) string {
	return "query:" + resource + ":"
}

// ── Implementación en memoria ─────────────────────────────────────────────────

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// Memory caché en memoria del proceso; es el backend por defecto cuando no hay Redis.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemory crea el caché en memoria.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

// Get devuelve el valor cacheado si existe y no expiró.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set guarda el valor con el TTL indicado.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	m.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

// InvalidateResource borra todas las entradas del recurso (prefijo query:<recurso>:).
func (m *Memory) InvalidateResource(_ context.Context, resource string) error {
	prefix := resourcePrefix(resource)
	m.mu.Lock()
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
		}
	}
	m.mu.Unlock()
	return nil
}
