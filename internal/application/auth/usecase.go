package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
	"github.com/jhoicas/Eventos-api/pkg/cipher"
	"github.com/jhoicas/Eventos-api/pkg/jwt"
)

// Prefijos de llave en el Session Store. La parte variable siempre va
// cifrada: ni ids ni tokens de registro aparecen en crudo como llaves.
const (
	refreshKeyPrefix  = "refreshToken:"
	registerKeyPrefix = "registerToken:"
)

// TokenPair par de tokens emitidos en login, con sus expiraciones para fijar
// las cookies con el mismo vencimiento.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// AuthUseCase gestor del ciclo de vida de la sesión: login, ack (renovación
// del access token), logout y tokens de registro de un solo uso.
//
// Política de sesión única por identidad: un segundo login sobreescribe la
// única entrada del Session Store (last writer wins), invalidando el refresh
// token de la sesión anterior. Los acks concurrentes no usan compare-and-swap:
// pueden emitir dos access tokens del mismo refresh, aceptable porque el
// access token es stateless y de vida corta.
type AuthUseCase struct {
	userRepo repository.UserRepository
	store    repository.SessionStore
	cph      *cipher.Cipher
	jwtCfg   jwt.Config
	fold     cases.Caser
}

// NewAuthUseCase construye el gestor de sesiones.
func NewAuthUseCase(userRepo repository.UserRepository, store repository.SessionStore, cph *cipher.Cipher, jwtCfg jwt.Config) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		store:    store,
		cph:      cph,
		jwtCfg:   jwtCfg,
		fold:     cases.Fold(),
	}
}

// NormalizeEmail normaliza un email para comparación case-insensitive.
func (uc *AuthUseCase) NormalizeEmail(email string) string {
	return uc.fold.String(strings.TrimSpace(email))
}

// RefreshKey arma la llave de sesión de una identidad. La usa también la baja
// de usuarios para invalidar la sesión al desactivar.
func RefreshKey(cph *cipher.Cipher, userID string) string {
	return refreshKeyPrefix + cph.Encrypt(userID)
}

func (uc *AuthUseCase) refreshKey(userID string) string {
	return RefreshKey(uc.cph, userID)
}

// registerKey recibe el token ya cifrado (la forma que viaja en el link de
// invitación y se guarda como llave).
func registerKey(encryptedToken string) string {
	return registerKeyPrefix + encryptedToken
}

// Login valida email+password contra una identidad activa, emite el par de
// tokens y persiste el refresh token en el Session Store con TTL igual a su
// vida. Credenciales incorrectas, identidad inexistente o dada de baja
// responden todas ErrUnauthorized, sin distinguir el caso (evita enumeración
// de usuarios).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.UserResponse, *TokenPair, error) {
	if in.Email == "" || in.Password == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(uc.NormalizeEmail(in.Email))
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.ErrUnauthorized
	}
	enc := uc.cph.Encrypt(in.Password)
	if subtle.ConstantTimeCompare([]byte(enc), []byte(user.PasswordCipher)) != 1 {
		return nil, nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, nil, domain.ErrUnauthorized
	}

	pair, err := uc.issuePair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return uc.toUserResponse(user), pair, nil
}

func (uc *AuthUseCase) issuePair(ctx context.Context, user *entity.User) (*TokenPair, error) {
	now := time.Now()
	access, err := jwt.GenerateAccess(uc.jwtCfg, user.ID, user.Name, string(user.Role), user.IsAdmin)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateRefresh(uc.jwtCfg, user.ID, user.Name, string(user.Role), user.IsAdmin)
	if err != nil {
		return nil, err
	}
	// Un solo slot por identidad: el Set sobreescribe la sesión anterior.
	if err := uc.store.Set(ctx, uc.refreshKey(user.ID), refresh, uc.jwtCfg.RefreshExp); err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  now.Add(uc.jwtCfg.AccessExp),
		RefreshToken:     refresh,
		RefreshExpiresAt: now.Add(uc.jwtCfg.RefreshExp),
	}, nil
}

// Ack renueva el access token de una sesión vigente. El valor almacenado en
// el Session Store debe ser exactamente igual (igualdad de strings) al del
// cookie; cualquier diferencia o ausencia responde ErrSessionExpired y el
// cliente debe reloguearse. El refresh token no se rota en este flujo.
func (uc *AuthUseCase) Ack(ctx context.Context, userID, refreshCookie string) (string, time.Time, error) {
	if userID == "" || refreshCookie == "" {
		return "", time.Time{}, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return "", time.Time{}, err
	}
	// La baja invalida la sesión aunque el string almacenado siga intacto.
	if user == nil || !user.IsActive {
		return "", time.Time{}, domain.ErrUnauthorized
	}
	stored, err := uc.store.Get(ctx, uc.refreshKey(userID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", time.Time{}, domain.ErrSessionExpired
		}
		return "", time.Time{}, err
	}
	if stored != refreshCookie {
		return "", time.Time{}, domain.ErrSessionExpired
	}
	access, err := jwt.GenerateAccess(uc.jwtCfg, user.ID, user.Name, string(user.Role), user.IsAdmin)
	if err != nil {
		return "", time.Time{}, err
	}
	return access, time.Now().Add(uc.jwtCfg.AccessExp), nil
}

// Logout invalida la sesión: decodifica el refresh cookie solo para extraer
// el id (acepta firma válida con expiración vencida) y borra la entrada del
// Session Store. Sin cookie no hay sesión que cerrar: es error, no éxito
// silencioso.
func (uc *AuthUseCase) Logout(ctx context.Context, refreshCookie string) error {
	if refreshCookie == "" {
		return domain.ErrUnauthorized
	}
	claims, err := jwt.ParseExpired(uc.jwtCfg.RefreshSecret, refreshCookie)
	if err != nil {
		return domain.ErrUnauthorized
	}
	return uc.store.Del(ctx, uc.refreshKey(claims.UserID))
}

// GenerateRegisterToken emite un token de invitación opaco con el rol que
// tendrá la identidad registrada y lo guarda cifrado con el TTL solicitado
// (segundos).
func (uc *AuthUseCase) GenerateRegisterToken(ctx context.Context, role entity.Role, durationSec int) (*dto.GenTokenResponse, error) {
	if !role.Valid() || durationSec <= 0 {
		return nil, domain.ErrInvalidInput
	}
	token := uuid.New().String()
	encrypted := uc.cph.Encrypt(token)
	ttl := time.Duration(durationSec) * time.Second
	if err := uc.store.Set(ctx, registerKey(encrypted), string(role), ttl); err != nil {
		return nil, err
	}
	return &dto.GenTokenResponse{
		Token:     token,
		Encrypted: encrypted,
		Role:      string(role),
		Duration:  durationSec,
	}, nil
}

// VerifyRegisterToken responde si un token de registro (en crudo) sigue
// vigente. No lo consume: el consumo ocurre en Register.
func (uc *AuthUseCase) VerifyRegisterToken(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	_, err := uc.store.Get(ctx, registerKey(uc.cph.Encrypt(token)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Register crea una identidad a partir de un token de invitación vigente
// (recibido ya cifrado en el query param) y lo consume al terminar. El rol de
// la nueva identidad es el que se fijó al generar el token.
func (uc *AuthUseCase) Register(ctx context.Context, encryptedToken string, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if encryptedToken == "" || in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	roleValue, err := uc.store.Get(ctx, registerKey(encryptedToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	role := entity.Role(roleValue)
	if !role.Valid() {
		role = entity.RoleFreelance
	}

	email := uc.NormalizeEmail(in.Email)
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	now := time.Now()
	user := &entity.User{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Email:          email,
		PasswordCipher: uc.cph.Encrypt(in.Password),
		PhoneCipher:    uc.cph.Encrypt(in.Phone),
		Role:           role,
		IsAdmin:        false,
		IsActive:       true,
		StartedAt:      now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	// Token de un solo uso: se consume con el registro exitoso.
	if err := uc.store.Del(ctx, registerKey(encryptedToken)); err != nil {
		return nil, err
	}
	return uc.toUserResponse(user), nil
}

func (uc *AuthUseCase) toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	phone, err := uc.cph.Decrypt(u.PhoneCipher)
	if err != nil {
		phone = ""
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     phone,
		Role:      string(u.Role),
		IsAdmin:   u.IsAdmin,
		IsActive:  u.IsActive,
		StartedAt: u.StartedAt,
		EndedAt:   u.EndedAt,
	}
}
