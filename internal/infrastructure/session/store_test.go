package session_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FLAVIOALFA/stockflow-admin/internal/domain/entity"
	"github.com/FLAVIOALFA/stockflow-admin/internal/infrastructure/session"
	"github.com/FLAVIOALFA/stockflow-admin/pkg/logger"
)

// tokenWithExp genera un JWT firmado con HS256 y la expiración indicada.
// La firma no importa: el store solo inspecciona claims sin verificar.
func tokenWithExp(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := tok.SignedString([]byte("cualquier-secret"))
	require.NoError(t, err)
	return signed
}

func newStore(t *testing.T) (*session.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return session.NewStore(path, logger.Nop()), path
}

func TestStore_CicloDeVida(t *testing.T) {
	s, path := newStore(t)

	// init: sin archivo no hay sesión
	s.Hydrate()
	assert.Nil(t, s.Current())
	assert.Empty(t, s.Token())

	// update: login persiste la sesión
	sess := session.Session{
		JWT:  tokenWithExp(t, time.Now().Add(time.Hour)),
		User: &entity.User{ID: 1, Username: "flavio", Email: "flavio@example.com"},
	}
	require.NoError(t, s.Update(sess))
	assert.Equal(t, sess.JWT, s.Token())
	_, err := os.Stat(path)
	require.NoError(t, err, "la sesión debe quedar en disco")

	// clear: logout borra memoria y archivo
	require.NoError(t, s.Clear())
	assert.Nil(t, s.Current())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestStore_HidrataDesdeDisco(t *testing.T) {
	s, path := newStore(t)
	sess := session.Session{
		JWT:  tokenWithExp(t, time.Now().Add(time.Hour)),
		User: &entity.User{ID: 2, Username: "ana"},
	}
	require.NoError(t, s.Update(sess))

	// Un store nuevo sobre el mismo archivo recupera la sesión
	s2 := session.NewStore(path, logger.Nop())
	s2.Hydrate()
	require.NotNil(t, s2.Current())
	assert.Equal(t, "ana", s2.Current().User.Username)
}

// Un token vencido en disco cuenta como ausencia de sesión.
func TestStore_TokenVencidoSeDescarta(t *testing.T) {
	s, path := newStore(t)
	require.NoError(t, s.Update(session.Session{JWT: tokenWithExp(t, time.Now().Add(-time.Hour))}))

	s2 := session.NewStore(path, logger.Nop())
	s2.Hydrate()
	assert.Nil(t, s2.Current())
}

func TestStore_ArchivoCorrupto(t *testing.T) {
	s, path := newStore(t)
	require.NoError(t, os.WriteFile(path, []byte("no es json"), 0o600))
	s.Hydrate()
	assert.Nil(t, s.Current())
}
