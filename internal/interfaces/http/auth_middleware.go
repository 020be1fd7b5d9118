package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/pkg/jwt"
)

// Nombres de las cookies de sesión (http-only, emitidas en login y ack).
const (
	CookieAccessToken  = "accessToken"
	CookieRefreshToken = "refreshToken"
)

// Locals keys con la identidad decodificada del access token.
const (
	LocalUserID  = "user_id"
	LocalName    = "name"
	LocalRole    = "role"
	LocalIsAdmin = "is_admin"
)

// Rutas públicas exactas: no pasan por el gate.
var publicPaths = map[string]struct{}{
	"/health":               {},
	"/login":                {},
	"/403":                  {},
	"/api/auth/login":       {},
	"/api/auth/register":    {},
	"/api/auth/ack":         {},
	"/api/auth/logout":      {},
	"/api/auth/check-token": {},
}

// Prefijos públicos (documentación y assets).
var publicPrefixes = []string{"/docs", "/static"}

// Allow-list de roles por prefijo de ruta. Primer prefijo que matchea gana;
// las rutas sin entrada exigen solo identidad autenticada.
var rolesByPrefix = []struct {
	prefix string
	set    entity.RoleSet
}{
	{"/api/users", entity.RoleSetAdminExecutive},
	{"/api/inventories", entity.RoleSetAdminExecutiveInternal},
	{"/api/proposals", entity.RoleSetAdminExecutive},
	{"/api/events", entity.RoleSetAll},
	{"/api/tasks", entity.RoleSetAll},
}

func isPublic(path string) bool {
	if _, ok := publicPaths[path]; ok {
		return true
	}
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// wantsHTML distingue navegador de cliente API: los navegadores reciben
// redirects, los clientes API respuestas JSON con el status correcto.
func wantsHTML(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), "text/html")
}

// tokenFromRequest extrae el access token: cookie primero, header
// Authorization Bearer como fallback para clientes no-navegador.
func tokenFromRequest(c *fiber.Ctx) string {
	if tok := c.Cookies(CookieAccessToken); tok != "" {
		return tok
	}
	authHeader := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// AccessGate middleware de borde: decodifica el access token y aplica la
// allow-list de roles por prefijo antes de servir cualquier ruta no pública.
// Token ausente o inválido responde 401 (o redirect a login con return_to);
// identidad válida con rol insuficiente responde 403 (o redirect a /403).
// Son fallas distintas y nunca se colapsan en una sola respuesta.
func AccessGate(accessSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if isPublic(path) {
			return c.Next()
		}

		tok := tokenFromRequest(c)
		if tok == "" {
			return unauthenticated(c)
		}
		claims, err := jwt.Parse(accessSecret, tok)
		if err != nil {
			// Expirado, malformado o firma incorrecta: siempre la misma
			// respuesta, sin detalle criptográfico.
			return unauthenticated(c)
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalName, claims.Name)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalIsAdmin, claims.IsAdmin)

		for _, rule := range rolesByPrefix {
			if strings.HasPrefix(path, rule.prefix) {
				if !rule.set.Allows(entity.Role(claims.Role), claims.IsAdmin) {
					return forbidden(c)
				}
				break
			}
		}
		return c.Next()
	}
}

func unauthenticated(c *fiber.Ctx) error {
	if wantsHTML(c) {
		return c.Redirect("/login?return_to="+url.QueryEscape(c.Path()), fiber.StatusFound)
	}
	return c.Status(fiber.StatusUnauthorized).JSON(dto.Error(fiber.StatusUnauthorized, "no autorizado"))
}

func forbidden(c *fiber.Ctx) error {
	if wantsHTML(c) {
		return c.Redirect("/403", fiber.StatusFound)
	}
	return c.Status(fiber.StatusForbidden).JSON(dto.Error(fiber.StatusForbidden, "acceso denegado"))
}

// CheckRole guardia a nivel handler: re-decodifica el token del request y
// verifica pertenencia al conjunto (o is_admin). Los handlers mutadores
// restringidos por rol lo llaman antes de tocar estado persistente y
// responden 403 si devuelve false. Role e is_admin salen siempre del token
// decodificado, nunca de headers del cliente.
func CheckRole(c *fiber.Ctx, accessSecret string, set entity.RoleSet) bool {
	tok := tokenFromRequest(c)
	if tok == "" {
		return false
	}
	claims, err := jwt.Parse(accessSecret, tok)
	if err != nil {
		return false
	}
	return set.Allows(entity.Role(claims.Role), claims.IsAdmin)
}

// GetUserID devuelve el id de la identidad autenticada (tras AccessGate).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devuelve el rol de la identidad autenticada (tras AccessGate).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetIsAdmin devuelve el flag is_admin de la identidad autenticada.
func GetIsAdmin(c *fiber.Ctx) bool {
	b, _ := c.Locals(LocalIsAdmin).(bool)
	return b
}
