package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Eventos-api/internal/application/auth"
	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Eventos-api/internal/interfaces/http"
	"github.com/jhoicas/Eventos-api/pkg/cipher"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	data map[string]string
}

func newMemStore() *memStore { return &memStore{data: map[string]string{}} }

func (s *memStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	s.data[key] = value
	return nil
}

func (s *memStore) Get(_ context.Context, key string) (string, error) {
	v, ok := s.data[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

func (s *memStore) Del(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

type memUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[string]*entity.User{}, byEmail: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(u *entity.User) error {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}
func (r *memUserRepo) GetByID(id string) (*entity.User, error)       { return r.byID[id], nil }
func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) { return r.byEmail[email], nil }
func (r *memUserRepo) Update(u *entity.User) error                   { return r.Create(u) }
func (r *memUserRepo) List(_, _ int) ([]*entity.User, error)         { return nil, nil }

// buildAuthApp levanta la app con las rutas de auth y un usuario activo
// registrado con las credenciales indicadas.
func buildAuthApp(t *testing.T) (*fiber.App, *entity.User) {
	t.Helper()
	cph, err := cipher.New("secret-de-cifrado-en-tests")
	require.NoError(t, err)

	repo := newMemUserRepo()
	user := &entity.User{
		ID:             testUserID,
		Name:           "Usuario Test",
		Email:          "usuario@test.com",
		PasswordCipher: cph.Encrypt("contraseña123"),
		Role:           entity.RoleExecutive,
		IsActive:       true,
		StartedAt:      time.Now(),
	}
	require.NoError(t, repo.Create(user))

	authUC := auth.NewAuthUseCase(repo, newMemStore(), cph, testJWTConfig())
	app := fiber.New()
	handler := apphttp.NewAuthHandler(authUC, testAccessSecret)
	app.Post("/api/auth/login", handler.Login)
	app.Get("/api/auth/logout", handler.Logout)
	app.Post("/api/auth/ack", handler.Ack)
	return app, user
}

func postJSON(t *testing.T, app *fiber.App, path string, body any, cookies []*http.Cookie) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func cookieByName(resp *http.Response, name string) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del ciclo de vida de la sesión vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

// Login exitoso fija las dos cookies http-only con expiración.
func TestAuthHandler_LoginFijaCookiesDeSesion(t *testing.T) {
	app, _ := buildAuthApp(t)
	resp := postJSON(t, app, "/api/auth/login",
		fiber.Map{"email": "Usuario@Test.com", "password": "contraseña123"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	access := cookieByName(resp, "accessToken")
	refresh := cookieByName(resp, "refreshToken")
	require.NotNil(t, access, "debe fijarse la cookie accessToken")
	require.NotNil(t, refresh, "debe fijarse la cookie refreshToken")
	assert.True(t, access.HttpOnly)
	assert.True(t, refresh.HttpOnly)
	assert.True(t, refresh.Expires.After(access.Expires),
		"el refresh token vive más que el access token")
}

// Credenciales incorrectas responden 401 con mensaje uniforme.
func TestAuthHandler_LoginCredencialesInvalidas(t *testing.T) {
	app, _ := buildAuthApp(t)

	for _, body := range []fiber.Map{
		{"email": "usuario@test.com", "password": "incorrecta"},
		{"email": "nadie@test.com", "password": "contraseña123"},
	} {
		resp := postJSON(t, app, "/api/auth/login", body, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

// Ack con el refresh cookie recién emitido renueva el access token.
func TestAuthHandler_AckRenuevaAccessToken(t *testing.T) {
	app, user := buildAuthApp(t)
	login := postJSON(t, app, "/api/auth/login",
		fiber.Map{"email": "usuario@test.com", "password": "contraseña123"}, nil)
	require.Equal(t, http.StatusOK, login.StatusCode)
	refresh := cookieByName(login, "refreshToken")
	require.NotNil(t, refresh)

	resp := postJSON(t, app, "/api/auth/ack",
		fiber.Map{"id": user.ID}, []*http.Cookie{refresh})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, cookieByName(resp, "accessToken"))
}

// Logout limpia las cookies y el ack posterior con el mismo cookie falla.
func TestAuthHandler_LogoutInvalidaLaSesion(t *testing.T) {
	app, user := buildAuthApp(t)
	login := postJSON(t, app, "/api/auth/login",
		fiber.Map{"email": "usuario@test.com", "password": "contraseña123"}, nil)
	refresh := cookieByName(login, "refreshToken")
	require.NotNil(t, refresh)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/logout", nil)
	req.AddCookie(refresh)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cleared := cookieByName(resp, "refreshToken")
	require.NotNil(t, cleared)
	assert.True(t, cleared.Expires.Before(time.Now()), "la cookie debe quedar vencida")

	ack := postJSON(t, app, "/api/auth/ack",
		fiber.Map{"id": user.ID}, []*http.Cookie{refresh})
	assert.Equal(t, http.StatusUnauthorized, ack.StatusCode)
}
