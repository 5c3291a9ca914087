package usecase_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FLAVIOALFA/stockflow-admin/internal/application/dto"
	"github.com/FLAVIOALFA/stockflow-admin/internal/application/usecase"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain/entity"
	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/cache"
	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/strapi"
	"github.com/FLAVIOALFA/stockflow-admin/pkg/config"
	"github.com/FLAVIOALFA/stockflow-admin/pkg/logger"
)

type staticTokens struct{ token string }

func (s *staticTokens) Token() string { return s.token }
func (s *staticTokens) Clear() error  { s.token = ""; return nil }

// newTestClient levanta un backend falso y devuelve el cliente apuntándole.
func newTestClient(t *testing.T, handler http.Handler) *strapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return strapi.NewClient(config.StrapiConfig{BaseURL: srv.URL, Timeout: 5 * time.Second},
		&staticTokens{token: "tok-test"}, logger.Nop())
}

// decodeData desenvuelve el {data: ...} de una mutación recibida por el backend falso.
func decodeData(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body.Data
}

func newBrandUseCase(t *testing.T, handler http.Handler) *usecase.BrandUseCase {
	t.Helper()
	client := newTestClient(t, handler)
	res := strapi.NewResource[entity.Brand](client, strapi.Config{
		Endpoint: "/brands",
		CacheKey: "brands",
	}, cache.NewMemory(), time.Minute)
	return usecase.NewBrandUseCase(res)
}

func TestBrand_CreateDerivaSlug(t *testing.T) {
	uc := newBrandUseCase(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data := decodeData(t, r)
		// Caso 1: el slug se deriva del nombre, con diacríticos plegados.
		assert.Equal(t, "cafe-del-sur", data["slug"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":1,"documentId":"MARCA-1","name":"Café del Sur","slug":"cafe-del-sur"}}`))
	}))

	brand, err := uc.Create(context.Background(), dto.BrandPayload{Name: "Café del Sur"})
	require.NoError(t, err)
	assert.Equal(t, "cafe-del-sur", brand.Slug)
}

func TestBrand_CreateRespetaSlugExplicito(t *testing.T) {
	uc := newBrandUseCase(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data := decodeData(t, r)
		assert.Equal(t, "mi-slug", data["slug"], "un slug provisto no debe recalcularse")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":2,"name":"Otra","slug":"mi-slug"}}`))
	}))

	_, err := uc.Create(context.Background(), dto.BrandPayload{Name: "Otra", Slug: "mi-slug"})
	require.NoError(t, err)
}

// Al editar, un slug vacío directamente no viaja: el existente queda intacto
// aunque el nombre cambie.
func TestBrand_UpdateNoPisaSlug(t *testing.T) {
	uc := newBrandUseCase(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		data := decodeData(t, r)
		assert.Equal(t, "Nombre Nuevo", data["name"])
		assert.NotContains(t, data, "slug", "la edición sin slug no debe enviar el campo")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":1,"documentId":"MARCA-1","name":"Nombre Nuevo","slug":"cafe-del-sur"}}`))
	}))

	brand, err := uc.Update(context.Background(), "MARCA-1", dto.BrandPayload{Name: "Nombre Nuevo"})
	require.NoError(t, err)
	assert.Equal(t, "cafe-del-sur", brand.Slug)
}

func TestBrand_CreateSinNombre(t *testing.T) {
	uc := newBrandUseCase(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("la validación debe cortar antes de emitir petición")
	}))
	_, err := uc.Create(context.Background(), dto.BrandPayload{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
