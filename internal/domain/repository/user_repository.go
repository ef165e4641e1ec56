package repository

import "github.com/dcastano/taller-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(id string) (*entity.User, error)
	// GetByLogin devuelve nil, nil si no existe. Ignora usuarios borrados.
	GetByLogin(login string) (*entity.User, error)
}
