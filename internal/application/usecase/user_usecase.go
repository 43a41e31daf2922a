package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/istore-api/internal/application/auth"
	"github.com/jhoicas/istore-api/internal/application/dto"
	"github.com/jhoicas/istore-api/internal/domain"
	"github.com/jhoicas/istore-api/internal/domain/entity"
	"github.com/jhoicas/istore-api/internal/domain/repository"
	"github.com/jhoicas/istore-api/internal/domain/validation"
	"github.com/jhoicas/istore-api/pkg/password"
)

// UserUseCase gestión de usuarios con control de acceso por actor.
type UserUseCase struct {
	userRepo repository.UserRepository
	txRunner TxRunner
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, txRunner TxRunner) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, txRunner: txRunner}
}

// List devuelve todos los usuarios. Las respuestas nunca llevan el hash.
func (uc *UserUseCase) List(actor auth.Actor) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// GetByID devuelve un usuario por ID.
func (uc *UserUseCase) GetByID(actor auth.Actor, id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// Update modifica pseudo, email y opcionalmente la contraseña de un usuario.
// Solo el propio usuario o un admin pueden hacerlo. Password vacío = sin cambio.
func (uc *UserUseCase) Update(actor auth.Actor, userID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if actor.ID != userID && !actor.IsAdmin() {
		return nil, domain.Permission("no tienes permiso para modificar este usuario")
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if err := validation.Pseudo(in.Pseudo); err != nil {
		return nil, err
	}
	if err := validation.Email(in.Email); err != nil {
		return nil, err
	}

	normalizedEmail := validation.NormalizeEmail(in.Email)

	// El email nuevo no puede pertenecer a OTRO usuario.
	existing, err := uc.userRepo.GetByEmail(normalizedEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != userID {
		return nil, domain.Validation("este email ya lo usa otro usuario")
	}

	user.Pseudo = strings.TrimSpace(in.Pseudo)
	user.Email = normalizedEmail

	if in.Password != "" {
		if err := validation.Password(in.Password); err != nil {
			return nil, err
		}
		hash, err := password.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// UpdateRole cambia el rol de un usuario. Solo admin, y nunca el propio rol
// (evita que un admin se bloquee a sí mismo).
func (uc *UserUseCase) UpdateRole(actor auth.Actor, userID string, role string) (*dto.UserResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.Permission("solo un administrador puede modificar roles")
	}
	if actor.ID == userID {
		return nil, domain.Permission("no puedes modificar tu propio rol")
	}
	if role != entity.RoleAdmin && role != entity.RoleEmployee {
		return nil, domain.Validation("rol inválido")
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	user.Role = role
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario. Solo el propio usuario o un admin. Los accesos a
// tiendas se eliminan primero, en la misma transacción.
func (uc *UserUseCase) Delete(ctx context.Context, actor auth.Actor, userID string) error {
	if actor.ID != userID && !actor.IsAdmin() {
		return domain.Permission("no tienes permiso para eliminar este usuario")
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	return uc.txRunner.RunUsers(ctx, func(users repository.UserRepository, access repository.StoreAccessRepository) error {
		if err := access.RevokeAllForUser(userID); err != nil {
			return err
		}
		return users.Delete(userID)
	})
}
