package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Eventos-api/internal/application/auth"
	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
	"github.com/jhoicas/Eventos-api/pkg/cipher"
)

// UserUseCase casos de uso de personal (HR): lectura, edición y baja lógica.
// La baja invalida de inmediato la sesión almacenada de la identidad.
type UserUseCase struct {
	repo  repository.UserRepository
	store repository.SessionStore
	cph   *cipher.Cipher
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, store repository.SessionStore, cph *cipher.Cipher) *UserUseCase {
	return &UserUseCase{repo: repo, store: store, cph: cph}
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(limit, offset int) ([]*dto.UserResponse, error) {
	users, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, uc.toResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario por ID (teléfono descifrado).
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return uc.toResponse(user), nil
}

// Update edición parcial: nombre, teléfono (se cifra en reposo) y rol.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.PhoneCipher = uc.cph.Encrypt(*in.Phone)
	}
	if in.Role != nil {
		role := entity.Role(*in.Role)
		if !role.Valid() {
			return nil, domain.ErrInvalidInput
		}
		user.Role = role
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return uc.toResponse(user), nil
}

// Deactivate baja lógica: IsActive=false y EndedAt, nunca borrado físico.
// Borra además la entrada del Session Store para que ningún ack posterior
// prospere aunque el refresh token siga criptográficamente vigente.
func (uc *UserUseCase) Deactivate(ctx context.Context, id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if !user.IsActive {
		return domain.ErrConflict
	}
	now := time.Now()
	user.IsActive = false
	user.EndedAt = &now
	user.UpdatedAt = now
	if err := uc.repo.Update(user); err != nil {
		return err
	}
	return uc.store.Del(ctx, auth.RefreshKey(uc.cph, id))
}

func (uc *UserUseCase) toResponse(u *entity.User) *dto.UserResponse {
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
