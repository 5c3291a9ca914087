package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/FLAVIOALFA/stockflow-admin/internal/domain/entity"
	"github.com/FLAVIOALFA/stockflow-admin/pkg/logger"
)

// Session la sesión autenticada contra el content API: el JWT emitido por el
// backend y el usuario mapeado. Se persiste tal cual en el archivo de sesión
// (el análogo del browser storage del dashboard).
type Session struct {
	JWT  string       `json:"jwt"`
	User *entity.User `json:"user,omitempty"`
}

// Store estado de sesión explícito con ciclo de vida
// init (hidratar desde disco) -> update (login/callback) -> clear (logout/401).
// Se inyecta donde haga falta; nunca es un global.
type Store struct {
	path string
	log  *logger.Logger

	mu  sync.RWMutex
	cur *Session
}

// NewStore construye el store sobre la ruta configurada.
func NewStore(path string, log *logger.Logger) *Store {
	return &Store{path: path, log: log.Named("session")}
}

// Hydrate carga la sesión persistida si existe. Un archivo ilegible o un token
// ya vencido se tratan como ausencia de sesión, no como error.
func (s *Store) Hydrate() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("no se pudo leer la sesión persistida")
		}
		return
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil || sess.JWT == "" {
		s.log.Warn().Str("path", s.path).Msg("archivo de sesión corrupto, se descarta")
		return
	}
	if tokenExpired(sess.JWT) {
		s.log.Info().Msg("el token persistido ya venció, se descarta la sesión")
		_ = os.Remove(s.path)
		return
	}
	s.mu.Lock()
	s.cur = &sess
	s.mu.Unlock()
	s.log.Info().Msg("sesión hidratada desde disco")
}

// Current devuelve la sesión activa o nil.
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Token devuelve el bearer token activo, o cadena vacía si no hay sesión.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return ""
	}
	return s.cur.JWT
}

// Update reemplaza la sesión (login o callback de proveedor) y la persiste.
func (s *Store) Update(sess Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return err
	}
	s.mu.Lock()
	s.cur = &sess
	s.mu.Unlock()
	return nil
}

// Clear descarta la sesión (logout o 401 del backend) y borra el archivo.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.cur = nil
	s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// tokenExpired inspecciona el claim exp sin verificar la firma: la verificación
// real la hace el content API; aquí solo se evita arrancar con un token muerto.
func tokenExpired(token string) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
