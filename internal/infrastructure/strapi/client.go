package strapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/FLAVIOALFA/stockflow-admin/internal/domain"
	"github.com/FLAVIOALFA/stockflow-admin/pkg/config"
	"github.com/FLAVIOALFA/stockflow-admin/pkg/logger"
)

// TokenSource provee el bearer token de la sesión activa y permite descartarla
// cuando el backend responde 401. Lo implementa el store de sesión.
type TokenSource interface {
	Token() string
	Clear() error
}

// APIError error HTTP del content API distinto de 401/404. Se propaga al
// llamador sin reintentos ni transformación.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("content API respondió %d: %s", e.Status, e.Body)
}

// Client cliente HTTP del content API (Strapi). Adjunta el bearer token a cada
// petición y trata el 401 de forma global: descarta la sesión y devuelve
// domain.ErrSessionExpired.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *logger.Logger
}

// NewClient construye el cliente con el timeout de red configurado.
func NewClient(cfg config.StrapiConfig, tokens TokenSource, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		tokens:  tokens,
		log:     log.Named("strapi"),
	}
}

// envelope envoltura {data: ...} que el content API espera en mutaciones y
// devuelve en lecturas.
type envelope struct {
	Data any `json:"data"`
}

// do ejecuta una petición y decodifica la respuesta en out (si out != nil).
// withAuth controla si viaja el bearer token; los endpoints de auth van sin él
// para que un token vencido no contamine el login.
func (c *Client) do(ctx context.Context, method, path, rawQuery string, body any, withAuth bool, out any) error {
	u := c.baseURL + path
	if rawQuery != "" {
		u += "?" + rawQuery
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())
	if withAuth {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && withAuth {
		// Manejo global del 401: sesión fuera y a reloguear.
		if cerr := c.tokens.Clear(); cerr != nil {
			c.log.Warn().Err(cerr).Msg("no se pudo descartar la sesión tras un 401")
		}
		return domain.ErrSessionExpired
	}
	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Error().
			Int("status", resp.StatusCode).
			Str("method", method).
			Str("path", path).
			Msg("petición al content API fallida")
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta de %s: %w", path, err)
	}
	return nil
}

// Post ejecuta un POST autenticado sin envoltura {data}, para endpoints no
// CRUD como /stocks/bulk-update.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, "", body, true, out)
}
