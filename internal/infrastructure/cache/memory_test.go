package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/cache"
)

func TestMemory_SetGet(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory()

	key := cache.Key("movements", "populate[0]=origin")
	require.NoError(t, c.Set(ctx, key, []byte(`{"data":[]}`), time.Minute))

	val, ok := c.Get(ctx, key)
	require.True(t, ok)
	assert.Equal(t, `{"data":[]}`, string(val))

	_, ok = c.Get(ctx, cache.Key("movements", "otros-params"))
	assert.False(t, ok, "parámetros distintos producen clave distinta")
}

func TestMemory_Expiracion(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory()

	key := cache.Key("brands", "")
	require.NoError(t, c.Set(ctx, key, []byte("x"), -time.Second))

	_, ok := c.Get(ctx, key)
	assert.False(t, ok, "una entrada vencida es un miss")
}

// La invalidación es gruesa: borra todos los listados del recurso sin importar
// los parámetros, y no toca los de otros recursos.
func TestMemory_InvalidacionPorRecurso(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory()

	k1 := cache.Key("stocks", "populate[0]=branch")
	k2 := cache.Key("stocks", "sort=createdAt:desc")
	k3 := cache.Key("products", "populate[0]=brand")
	for _, k := range []string{k1, k2, k3} {
		require.NoError(t, c.Set(ctx, k, []byte("v"), time.Minute))
	}

	require.NoError(t, c.InvalidateResource(ctx, "stocks"))

	_, ok := c.Get(ctx, k1)
	assert.False(t, ok)
	_, ok = c.Get(ctx, k2)
	assert.False(t, ok)
	_, ok = c.Get(ctx, k3)
	assert.True(t, ok, "products no debe invalidarse al mutar stocks")
}
