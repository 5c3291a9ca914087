package auth

import (
	"context"
	"fmt"

	"github.com/FLAVIOALFA/stockflow-admin/internal/domain"
	"github.com/FLAVIOALFA/stockflow-admin/internal/domain/entity"
	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/session"
	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/strapi"
	"github.com/FLAVIOALFA/stockflow-admin/pkg/logger"
)

// UseCase ciclo de vida de la sesión: login por credenciales o por proveedor
// externo, cierre de sesión y consulta de la sesión activa.
type UseCase struct {
	client   *strapi.Client
	sessions *session.Store
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(client *strapi.Client, sessions *session.Store, log *logger.Logger) *UseCase {
	return &UseCase{client: client, sessions: sessions, log: log}
}

// Login autentica por identificador y contraseña contra el content API y deja
// la sesión persistida. La petición viaja sin token: las credenciales son la
// autenticación.
func (uc *UseCase) Login(ctx context.Context, identifier, password string) (*entity.User, error) {
	if identifier == "" || password == "" {
		return nil, fmt.Errorf("identificador y contraseña requeridos: %w", domain.ErrInvalidInput)
	}
	res, err := uc.client.Login(ctx, identifier, password)
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.Update(session.Session{JWT: res.JWT, User: &res.User}); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user", res.User.Username).Msg("sesión iniciada")
	return &res.User, nil
}

// HandleProviderCallback completa el login por proveedor externo: reenvía la
// query cruda del callback y persiste la sesión resultante.
func (uc *UseCase) HandleProviderCallback(ctx context.Context, provider, rawQuery string) (*entity.User, error) {
	if provider == "" {
		return nil, fmt.Errorf("proveedor requerido: %w", domain.ErrInvalidInput)
	}
	res, err := uc.client.ProviderCallback(ctx, provider, rawQuery)
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.Update(session.Session{JWT: res.JWT, User: &res.User}); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user", res.User.Username).Str("provider", provider).Msg("sesión iniciada por proveedor")
	return &res.User, nil
}

// Logout descarta la sesión activa. Cerrar sesión sin sesión no es error.
func (uc *UseCase) Logout() error {
	return uc.sessions.Clear()
}

// Current devuelve el usuario de la sesión activa.
func (uc *UseCase) Current() (*entity.User, error) {
	sess := uc.sessions.Current()
	if sess == nil {
		return nil, domain.ErrNoSession
	}
	return sess.User, nil
}
