package repository

import "github.com/jhoicas/Eventos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// El email se guarda ya normalizado (case folding); los callers comparan
// siempre la forma normalizada.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
}
