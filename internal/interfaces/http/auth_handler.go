package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Eventos-api/internal/application/auth"
	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
)

// AuthHandler maneja login, logout, ack y tokens de registro.
type AuthHandler struct {
	uc           *auth.AuthUseCase
	accessSecret string
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, accessSecret string) *AuthHandler {
	return &AuthHandler{uc: uc, accessSecret: accessSecret}
}

func setSessionCookies(c *fiber.Ctx, pair *auth.TokenPair) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieAccessToken,
		Value:    pair.AccessToken,
		Expires:  pair.AccessExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     CookieRefreshToken,
		Value:    pair.RefreshToken,
		Expires:  pair.RefreshExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearSessionCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	for _, name := range []string{CookieAccessToken, CookieRefreshToken} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  expired,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
}

// Login valida credenciales, fija las cookies de sesión y devuelve la
// identidad. Cualquier falla de credenciales responde 401 con el mismo
// mensaje.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	user, pair, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return failFromErr(c, err)
	}
	setSessionCookies(c, pair)
	return ok(c, fiber.StatusOK, "sesión iniciada", user)
}

// Logout invalida la sesión del Session Store y limpia las cookies.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	err := h.uc.Logout(c.Context(), c.Cookies(CookieRefreshToken))
	clearSessionCookies(c)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, "sesión cerrada", nil)
}

// Ack renueva el access token si el refresh cookie coincide exactamente con
// el valor del Session Store. Responde la nueva cookie de access.
func (h *AuthHandler) Ack(c *fiber.Ctx) error {
	var in dto.AckRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	access, expiresAt, err := h.uc.Ack(c.Context(), in.ID, c.Cookies(CookieRefreshToken))
	if err != nil {
		return failFromErr(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieAccessToken,
		Value:    access,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return ok(c, fiber.StatusOK, "token renovado", nil)
}

// CheckToken responde si un token de registro sigue vigente, sin consumirlo.
func (h *AuthHandler) CheckToken(c *fiber.Ctx) error {
	var in dto.CheckTokenRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	valid, err := h.uc.VerifyRegisterToken(c.Context(), in.Token)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, "verificación realizada", dto.CheckTokenResponse{Valid: valid})
}

// Register da de alta una identidad con un token de invitación vigente. El
// token viaja cifrado en el query param y se consume al registrar.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	user, err := h.uc.Register(c.Context(), c.Query("token"), in)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusCreated, "identidad registrada", user)
}

// GenToken emite un token de registro con rol y duración (segundos).
// Restringido a ADMIN/EXECUTIVE.
func (h *AuthHandler) GenToken(c *fiber.Ctx) error {
	if !CheckRole(c, h.accessSecret, entity.RoleSetAdminExecutive) {
		return fail(c, fiber.StatusForbidden, "acceso denegado")
	}
	duration, err := strconv.Atoi(c.Query("duration", "0"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "duration inválido")
	}
	out, err := h.uc.GenerateRegisterToken(c.Context(), entity.Role(c.Query("role")), duration)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusCreated, "token de registro generado", out)
}
