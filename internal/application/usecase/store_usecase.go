package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/istore-api/internal/application/auth"
	"github.com/jhoicas/istore-api/internal/application/dto"
	"github.com/jhoicas/istore-api/internal/domain"
	"github.com/jhoicas/istore-api/internal/domain/entity"
	"github.com/jhoicas/istore-api/internal/domain/repository"
	"github.com/jhoicas/istore-api/internal/domain/validation"
)

// StoreUseCase gestión de tiendas y de accesos de empleados.
type StoreUseCase struct {
	storeRepo  repository.StoreRepository
	accessRepo repository.StoreAccessRepository
	userRepo   repository.UserRepository
	txRunner   TxRunner
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(
	storeRepo repository.StoreRepository,
	accessRepo repository.StoreAccessRepository,
	userRepo repository.UserRepository,
	txRunner TxRunner,
) *StoreUseCase {
	return &StoreUseCase{
		storeRepo:  storeRepo,
		accessRepo: accessRepo,
		userRepo:   userRepo,
		txRunner:   txRunner,
	}
}

// Create crea una tienda (solo admin). El nombre es único sin distinguir mayúsculas.
func (uc *StoreUseCase) Create(actor auth.Actor, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.Permission("solo un administrador puede crear tiendas")
	}
	if err := validation.StoreName(in.Name); err != nil {
		return nil, err
	}

	exists, err := uc.storeRepo.NameExists(in.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Validation("ya existe una tienda con ese nombre")
	}

	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.storeRepo.Create(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// Accessible devuelve las tiendas visibles para el actor: todas si es admin,
// solo las concedidas si es empleado.
func (uc *StoreUseCase) Accessible(actor auth.Actor) ([]dto.StoreResponse, error) {
	var stores []*entity.Store
	var err error
	if actor.IsAdmin() {
		stores, err = uc.storeRepo.List()
	} else {
		stores, err = uc.accessRepo.ListStoresForUser(actor.ID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, *toStoreResponse(s))
	}
	return out, nil
}

// GetByID devuelve una tienda por ID.
func (uc *StoreUseCase) GetByID(actor auth.Actor, id string) (*dto.StoreResponse, error) {
	store, err := uc.storeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	return toStoreResponse(store), nil
}

// HasAccess indica si el actor puede operar sobre la tienda.
// Los admin siempre pueden; los empleados necesitan un acceso explícito.
func (uc *StoreUseCase) HasAccess(actor auth.Actor, storeID string) (bool, error) {
	if actor.IsZero() {
		return false, nil
	}
	if actor.IsAdmin() {
		return true, nil
	}
	return uc.accessRepo.HasAccess(actor.ID, storeID)
}

// Delete borra una tienda en cascada (solo admin): primero sus artículos,
// luego los accesos y por último la tienda, todo en una transacción.
// El orden importa por integridad referencial.
func (uc *StoreUseCase) Delete(ctx context.Context, actor auth.Actor, storeID string) error {
	if !actor.IsAdmin() {
		return domain.Permission("solo un administrador puede eliminar tiendas")
	}

	store, err := uc.storeRepo.GetByID(storeID)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrStoreNotFound
	}

	return uc.txRunner.RunStores(ctx, func(
		stores repository.StoreRepository,
		items repository.ItemRepository,
		access repository.StoreAccessRepository,
	) error {
		if err := items.DeleteByStore(storeID); err != nil {
			return err
		}
		if err := access.RevokeAllForStore(storeID); err != nil {
			return err
		}
		return stores.Delete(storeID)
	})
}

// AddEmployee concede acceso de un usuario a una tienda (solo admin).
// Idempotente: repetir un acceso existente es éxito sin efecto.
func (uc *StoreUseCase) AddEmployee(actor auth.Actor, userID, storeID string) error {
	if !actor.IsAdmin() {
		return domain.Permission("solo un administrador puede asignar empleados")
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	store, err := uc.storeRepo.GetByID(storeID)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrStoreNotFound
	}
	return uc.accessRepo.Grant(userID, storeID)
}

// RemoveEmployee retira el acceso de un usuario a una tienda (solo admin).
func (uc *StoreUseCase) RemoveEmployee(actor auth.Actor, userID, storeID string) error {
	if !actor.IsAdmin() {
		return domain.Permission("solo un administrador puede retirar empleados")
	}
	return uc.accessRepo.Revoke(userID, storeID)
}

// Employees devuelve los usuarios con acceso a la tienda (sin hash).
func (uc *StoreUseCase) Employees(actor auth.Actor, storeID string) ([]dto.UserResponse, error) {
	users, err := uc.accessRepo.ListUsersForStore(storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
