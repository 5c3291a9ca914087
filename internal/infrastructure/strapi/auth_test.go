package strapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/strapi"
	"github.com/FLAVIOALFA/stockflow-admin/pkg/config"
	"github.com/FLAVIOALFA/stockflow-admin/pkg/logger"
)

func newAuthClient(t *testing.T, handler http.Handler) (*strapi.Client, *fakeTokens) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	tokens := &fakeTokens{token: "token-viejo"}
	return strapi.NewClient(config.StrapiConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, tokens, logger.Nop()), tokens
}

// El login va sin bearer: un token vencido no debe interferir con el relogin.
func TestLogin(t *testing.T) {
	client, _ := newAuthClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/local", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "el login no debe llevar bearer")

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "flavio@example.com", body["identifier"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jwt":"nuevo-jwt","user":{"id":1,"username":"flavio","email":"flavio@example.com"}}`))
	}))

	out, err := client.Login(context.Background(), "flavio@example.com", "secreta")
	require.NoError(t, err)
	assert.Equal(t, "nuevo-jwt", out.JWT)
	assert.Equal(t, "flavio", out.User.Username)
}

// Credenciales inválidas: el 401 de /auth/local NO es sesión expirada, es un
// error de API que se propaga tal cual (y no descarta nada).
func TestLogin_CredencialesInvalidas(t *testing.T) {
	client, tokens := newAuthClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid identifier or password"}}`))
	}))

	_, err := client.Login(context.Background(), "flavio@example.com", "mala")
	var apiErr *strapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, int32(0), tokens.cleared.Load())
}

func TestProviderCallback(t *testing.T) {
	client, _ := newAuthClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/auth0/callback", r.URL.Path)
		assert.Equal(t, "access_token=abc123", r.URL.RawQuery, "la query del proveedor viaja tal cual")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jwt":"jwt-oauth","user":{"id":2,"username":"ana","email":"ana@example.com"}}`))
	}))

	out, err := client.ProviderCallback(context.Background(), "auth0", "access_token=abc123")
	require.NoError(t, err)
	assert.Equal(t, "jwt-oauth", out.JWT)
	assert.Equal(t, 2, out.User.ID)
}
