package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ccl-sistemas/inventario-api/internal/application/auth"
	"github.com/ccl-sistemas/inventario-api/internal/application/dto"
	"github.com/ccl-sistemas/inventario-api/internal/domain"
	pkgjwt "github.com/ccl-sistemas/inventario-api/pkg/jwt"
)

var testJWTOpts = pkgjwt.Options{
	Secret:     "test-secret-key-for-unit-tests",
	Issuer:     "inventario-ccl-test",
	Audience:   "inventario-ccl-clients",
	ExpMinutes: 60,
}

func newTestUseCase(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.NewAuthUseCase(auth.Credential{User: "admin", PasswordHash: string(hash)}, testJWTOpts)
}

func TestLogin_CredencialCorrecta_EmiteToken(t *testing.T) {
	uc := newTestUseCase(t)

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "password"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.Token)

	// El token emitido debe pasar la validación del gate (round-trip)
	subject, err := pkgjwt.Parse(testJWTOpts, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestLogin_PasswordIncorrecta_RetornaUnauthorized(t *testing.T) {
	uc := newTestUseCase(t)

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioDesconocido_RetornaMismoError(t *testing.T) {
	uc := newTestUseCase(t)

	_, errUser := uc.Login(dto.LoginRequest{Username: "otro", Password: "password"})
	_, errPass := uc.Login(dto.LoginRequest{Username: "admin", Password: "wrong"})

	// Usuario desconocido y contraseña incorrecta son indistinguibles
	assert.ErrorIs(t, errUser, domain.ErrUnauthorized)
	assert.Equal(t, errPass, errUser)
}

func TestLogin_CamposVacios_RetornaInvalidInput(t *testing.T) {
	uc := newTestUseCase(t)

	for _, in := range []dto.LoginRequest{
		{Username: "", Password: "password"},
		{Username: "admin", Password: ""},
		{},
	} {
		_, err := uc.Login(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
