package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/ccl-sistemas/inventario-api/internal/application/dto"
	"github.com/ccl-sistemas/inventario-api/internal/domain"
	pkgjwt "github.com/ccl-sistemas/inventario-api/pkg/jwt"
)

// Credential credencial única de administrador, inyectada desde configuración.
// PasswordHash es un hash bcrypt; la API no guarda usuarios en base de datos.
type Credential struct {
	User         string
	PasswordHash string
}

// AuthUseCase caso de uso de autenticación: login con credencial fija y emisión de JWT.
type AuthUseCase struct {
	cred   Credential
	jwtOpt pkgjwt.Options
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(cred Credential, jwtOpt pkgjwt.Options) *AuthUseCase {
	return &AuthUseCase{cred: cred, jwtOpt: jwtOpt}
}

// Login verifica username/password contra la credencial configurada y genera el JWT.
// Cualquier discrepancia (usuario o contraseña) devuelve el mismo ErrUnauthorized
// para no permitir enumeración de usuarios.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	err := bcrypt.CompareHashAndPassword([]byte(uc.cred.PasswordHash), []byte(in.Password))
	if in.Username != uc.cred.User || err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := pkgjwt.Generate(uc.jwtOpt, in.Username)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}
