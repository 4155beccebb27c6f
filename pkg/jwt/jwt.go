package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Options parámetros de emisión y validación de tokens.
// Issuer y Audience se validan en Parse además de la firma y la expiración.
type Options struct {
	Secret     string
	Issuer     string
	Audience   string
	ExpMinutes int
}

// Generate genera un token JWT HS256 con subject, issuer, audience y expiración.
func Generate(opts Options, subject string) (string, error) {
	if opts.Secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    opts.Issuer,
		Subject:   subject,
		Audience:  jwt.ClaimStrings{opts.Audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(opts.ExpMinutes) * time.Minute)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(opts.Secret))
}

// Parse valida firma, expiración, issuer y audience, y devuelve el subject.
// Retorna error si el token es inválido, expirado o con firma incorrecta.
func Parse(opts Options, tokenString string) (string, error) {
	if opts.Secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
			}
			return []byte(opts.Secret), nil
		},
		jwt.WithIssuer(opts.Issuer),
		jwt.WithAudience(opts.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("claims inválidos")
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("subject vacío")
	}
	return claims.Subject, nil
}
