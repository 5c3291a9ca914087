package strapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FLAVIOALFA/stockflow-admin/internal/domain"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain/entity"
	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/cache"
	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/strapi"
	"github.com/FLAVIOALFA/stockflow-admin/pkg/config"
	"github.com/FLAVIOALFA/stockflow-admin/pkg/logger"
)

// fakeTokens TokenSource de prueba con contador de descartes.
type fakeTokens struct {
	token   string
	cleared atomic.Int32
}

func (f *fakeTokens) Token() string { return f.token }
func (f *fakeTokens) Clear() error {
	f.cleared.Add(1)
	f.token = ""
	return nil
}

func newTestResource(t *testing.T, handler http.Handler) (*strapi.Resource[entity.Branch], *fakeTokens, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := &fakeTokens{token: "tok-123"}
	client := strapi.NewClient(config.StrapiConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, tokens, logger.Nop())
	res := strapi.NewResource[entity.Branch](client, strapi.Config{
		Endpoint: "/branches",
		CacheKey: "branches",
	}, cache.NewMemory(), time.Minute)
	return res, tokens, srv
}

func TestResource_ListCacheaYAdjuntaToken(t *testing.T) {
	var calls atomic.Int32
	res, _, _ := newTestResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":1,"documentId":"SUC-A","name":"Central","type":"local","address":"Av. Siempreviva 742"}]}`))
	}))

	ctx := context.Background()
	page, err := res.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Central", page.Data[0].Name)

	// Segunda lectura con los mismos parámetros: sale del caché, sin petición.
	_, err = res.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load(), "el segundo List debe servirse del caché")

	// Parámetros distintos -> clave distinta -> nueva petición.
	_, err = res.List(ctx, strapi.Params{}.Set("sort", "name:asc"))
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

// Toda mutación invalida los listados del recurso: el List posterior refetchea.
func TestResource_MutacionInvalidaListados(t *testing.T) {
	var listCalls atomic.Int32
	res, _, _ := newTestResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			listCalls.Add(1)
			_, _ = w.Write([]byte(`{"data":[]}`))
		case http.MethodPost:
			// La carga debe viajar envuelta como {data: ...}
			raw, _ := io.ReadAll(r.Body)
			var body map[string]any
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Contains(t, body, "data")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"data":{"id":2,"name":"Norte","type":"deposit"}}`))
		}
	}))

	ctx := context.Background()
	_, err := res.List(ctx, nil)
	require.NoError(t, err)
	_, err = res.List(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, int32(1), listCalls.Load())

	created, err := res.Create(ctx, map[string]any{"name": "Norte", "type": "deposit"})
	require.NoError(t, err)
	assert.Equal(t, "Norte", created.Name)

	_, err = res.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(2), listCalls.Load(), "tras la mutación el listado debe refetchearse")
}

// Un id vacío corta sin emitir petición y reporta "sin datos", no error.
func TestResource_GetConIdVacio(t *testing.T) {
	res, _, _ := newTestResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no debe llegar ninguna petición")
	}))
	got, err := res.Get(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResource_GetPorId(t *testing.T) {
	res, _, _ := newTestResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/branches/SUC-A", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":1,"documentId":"SUC-A","name":"Central","type":"local"}}`))
	}))
	got, err := res.Get(context.Background(), "SUC-A", nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Central", got.Name)
}

// Un 401 se maneja global: descarta la sesión y devuelve ErrSessionExpired.
func TestResource_401DescartaSesion(t *testing.T) {
	res, tokens, _ := newTestResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	_, err := res.List(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Equal(t, int32(1), tokens.cleared.Load(), "el 401 debe limpiar la sesión")
}

// Los errores del backend se propagan sin transformar y sin reintentos.
func TestResource_ErroresSePropagan(t *testing.T) {
	var calls atomic.Int32
	res, _, _ := newTestResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	}))
	_, err := res.List(context.Background(), nil)
	require.Error(t, err)

	var apiErr *strapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, int32(1), calls.Load(), "sin reintentos")
}

func TestResource_404EsNotFound(t *testing.T) {
	res, _, _ := newTestResource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	_, err := res.Get(context.Background(), "NOEXISTE", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParams_EncodeDeterminista(t *testing.T) {
	p := strapi.Populate("origin", "destination", "items", "items.product")
	assert.Equal(t,
		"populate%5B0%5D=origin&populate%5B1%5D=destination&populate%5B2%5D=items&populate%5B3%5D=items.product",
		p.Encode())

	merged := strapi.Merge(p, strapi.Params{}.Set("sort", "createdAt:desc"))
	assert.Equal(t, merged.Encode(), strapi.Merge(p, strapi.Params{}.Set("sort", "createdAt:desc")).Encode(),
		"la codificación debe ser estable entre llamadas")
}
