package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		JWT: JWTConfig{
			Secret:     "secret",
			Issuer:     "inventario-ccl",
			Audience:   "inventario-ccl-clients",
			Expiration: 60,
		},
		Auth: AuthConfig{
			AdminUser:     "admin",
			AdminPassword: "password",
		},
	}
}

func TestValidate_ConfiguracionCompleta_NoFalla(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidate_JWTIncompleto_Falla(t *testing.T) {
	cases := map[string]func(*Config){
		"secret vacío":    func(c *Config) { c.JWT.Secret = "" },
		"issuer vacío":    func(c *Config) { c.JWT.Issuer = "" },
		"audience vacía":  func(c *Config) { c.JWT.Audience = "" },
		"expiración cero": func(c *Config) { c.JWT.Expiration = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_SinCredencialAdmin_Falla(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.AdminUser = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Auth.AdminPassword = ""
	cfg.Auth.AdminPasswordHash = ""
	assert.Error(t, cfg.Validate())

	// Con hash basta, no hace falta password en texto plano
	cfg = validConfig()
	cfg.Auth.AdminPassword = ""
	cfg.Auth.AdminPasswordHash = "$2a$10$abcdefghijklmnopqrstuv"
	assert.NoError(t, cfg.Validate())
}

func TestDSN_CodificaCaracteresEspeciales(t *testing.T) {
	db := DBConfig{
		Host: "localhost", Port: 5432,
		User: "postgres", Password: "p@ss:word/1",
		DBName: "inventario_ccl", SSLMode: "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%3Aword%2F1")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	db := DBConfig{DatabaseURL: "postgres://u:p@host:5432/db", Host: "otro"}
	assert.Equal(t, "postgres://u:p@host:5432/db", db.ConnectionString())
}
