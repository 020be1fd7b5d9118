package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Eventos-api/pkg/jwt"
)

var testCfg = pkgjwt.Config{
	AccessSecret:  "access-secret-de-prueba",
	RefreshSecret: "refresh-secret-de-prueba",
	AccessExp:     15 * time.Minute,
	RefreshExp:    7 * 24 * time.Hour,
	Issuer:        "eventos-pro-test",
}

func TestGenerateAccess_ParseDevuelveClaims(t *testing.T) {
	tok, err := pkgjwt.GenerateAccess(testCfg, "user-1", "Laura", "EXECUTIVE", false)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testCfg.AccessSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Laura", claims.Name)
	assert.Equal(t, "EXECUTIVE", claims.Role)
	assert.False(t, claims.IsAdmin)
}

func TestSecretsPorFamilia_NoSonIntercambiables(t *testing.T) {
	access, err := pkgjwt.GenerateAccess(testCfg, "user-1", "Laura", "ADMIN", true)
	require.NoError(t, err)
	refresh, err := pkgjwt.GenerateRefresh(testCfg, "user-1", "Laura", "ADMIN", true)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testCfg.RefreshSecret, access)
	assert.Error(t, err, "un access token no debe validar con el secret de refresh")
	_, err = pkgjwt.Parse(testCfg.AccessSecret, refresh)
	assert.Error(t, err, "un refresh token no debe validar con el secret de access")
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	cfg := testCfg
	cfg.AccessExp = -1 * time.Minute
	tok, err := pkgjwt.GenerateAccess(cfg, "user-1", "Laura", "INTERNAL", false)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(cfg.AccessSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.GenerateAccess(testCfg, "user-1", "Laura", "ADMIN", false)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestParse_TokenMalformado_RetornaError(t *testing.T) {
	_, err := pkgjwt.Parse(testCfg.AccessSecret, "token.invalido.aqui")
	assert.Error(t, err)
}

func TestParseExpired_AceptaExpiradoPeroNoFirmaInvalida(t *testing.T) {
	cfg := testCfg
	cfg.RefreshExp = -1 * time.Hour
	tok, err := pkgjwt.GenerateRefresh(cfg, "user-9", "Pedro", "FREELANCE", false)
	require.NoError(t, err)

	claims, err := pkgjwt.ParseExpired(cfg.RefreshSecret, tok)
	require.NoError(t, err, "ParseExpired debe aceptar un token vencido con firma válida")
	assert.Equal(t, "user-9", claims.UserID)

	_, err = pkgjwt.ParseExpired("secret-equivocado", tok)
	assert.Error(t, err, "la firma sí debe verificarse aunque se ignore la expiración")
}
