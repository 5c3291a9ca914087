package strapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/cache"
)

// Page listado con la forma que lo entrega el content API.
type Page[T any] struct {
	Data []T             `json:"data"`
	Meta json.RawMessage `json:"meta,omitempty"`
}

type single[T any] struct {
	Data *T `json:"data"`
}

// Config configuración de un recurso: endpoint de la colección, clave de caché
// y parámetros por defecto de sus listados (qué relaciones poblar, orden...).
type Config struct {
	Endpoint      string
	CacheKey      string
	DefaultParams Params
}

// Resource cliente tipado genérico de una colección REST del content API:
// list / get / create / update / delete, con caché de listados e invalidación
// gruesa por recurso en cada mutación.
type Resource[T any] struct {
	client *Client
	cfg    Config
	cache  cache.Cache
	ttl    time.Duration
}

// NewResource construye el recurso sobre el cliente compartido.
func NewResource[T any](client *Client, cfg Config, qc cache.Cache, ttl time.Duration) *Resource[T] {
	return &Resource[T]{client: client, cfg: cfg, cache: qc, ttl: ttl}
}

// List trae el listado con los parámetros dados (superpuestos a los defaults).
// El resultado queda cacheado bajo recurso + parámetros serializados.
func (r *Resource[T]) List(ctx context.Context, params Params) (*Page[T], error) {
	merged := Merge(r.cfg.DefaultParams, params)
	rawQuery := merged.Encode()
	key := cache.Key(r.cfg.CacheKey, rawQuery)

	if raw, ok := r.cache.Get(ctx, key); ok {
		var page Page[T]
		if err := json.Unmarshal(raw, &page); err == nil {
			return &page, nil
		}
		// Entrada ilegible: se ignora y se refetchea.
	}

	var page Page[T]
	if err := r.client.do(ctx, http.MethodGet, r.cfg.Endpoint, rawQuery, nil, true, &page); err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(&page); err == nil {
		_ = r.cache.Set(ctx, key, raw, r.ttl)
	}
	return &page, nil
}

// Get trae un registro por id. Un id vacío corta en seco: no emite petición y
// reporta "sin datos" (nil, nil) en lugar de fallar.
func (r *Resource[T]) Get(ctx context.Context, id string, params Params) (*T, error) {
	if id == "" {
		return nil, nil
	}
	merged := Merge(r.cfg.DefaultParams, params)
	var out single[T]
	if err := r.client.do(ctx, http.MethodGet, r.cfg.Endpoint+"/"+id, merged.Encode(), nil, true, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Create crea un registro envolviendo la carga como {data: payload} e invalida
// todos los listados cacheados del recurso.
func (r *Resource[T]) Create(ctx context.Context, payload any) (*T, error) {
	var out single[T]
	if err := r.client.do(ctx, http.MethodPost, r.cfg.Endpoint, "", envelope{Data: payload}, true, &out); err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return out.Data, nil
}

// Update actualiza un registro; misma envoltura e invalidación que Create.
func (r *Resource[T]) Update(ctx context.Context, id string, payload any) (*T, error) {
	var out single[T]
	if err := r.client.do(ctx, http.MethodPut, r.cfg.Endpoint+"/"+id, "", envelope{Data: payload}, true, &out); err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return out.Data, nil
}

// Delete borra un registro e invalida los listados del recurso.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	if err := r.client.do(ctx, http.MethodDelete, r.cfg.Endpoint+"/"+id, "", nil, true, nil); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Invalidate borra los listados cacheados del recurso; lo usan también las
// mutaciones no CRUD (carga masiva de stock).
func (r *Resource[T]) Invalidate(ctx context.Context) {
	r.invalidate(ctx)
}

// La invalidación es deliberadamente gruesa (todo el recurso, no solo los
// parámetros del llamador) para que ninguna lectura relacionada quede vieja.
func (r *Resource[T]) invalidate(ctx context.Context) {
	if err := r.cache.InvalidateResource(ctx, r.cfg.CacheKey); err != nil {
		r.client.log.Warn().Err(err).Str("resource", r.cfg.CacheKey).Msg("invalidación de caché fallida")
	}
}
