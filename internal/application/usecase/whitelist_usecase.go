package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/istore-api/internal/application/auth"
	"github.com/jhoicas/istore-api/internal/application/dto"
	"github.com/jhoicas/istore-api/internal/domain"
	"github.com/jhoicas/istore-api/internal/domain/entity"
	"github.com/jhoicas/istore-api/internal/domain/repository"
	"github.com/jhoicas/istore-api/internal/domain/validation"
)

// WhitelistUseCase gestión de los emails pre-aprobados para registro.
type WhitelistUseCase struct {
	whitelistRepo repository.WhitelistRepository
	userRepo      repository.UserRepository
}

// NewWhitelistUseCase construye el caso de uso.
func NewWhitelistUseCase(whitelistRepo repository.WhitelistRepository, userRepo repository.UserRepository) *WhitelistUseCase {
	return &WhitelistUseCase{whitelistRepo: whitelistRepo, userRepo: userRepo}
}

// Add pre-aprueba un email (solo admin). Rechaza emails ya whitelisteados
// y emails que ya tienen cuenta.
func (uc *WhitelistUseCase) Add(actor auth.Actor, in dto.AddWhitelistRequest) (*dto.WhitelistEntryResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.Permission("solo un administrador puede modificar la whitelist")
	}
	if err := validation.Email(in.Email); err != nil {
		return nil, err
	}

	normalizedEmail := validation.NormalizeEmail(in.Email)

	whitelisted, err := uc.whitelistRepo.IsWhitelisted(normalizedEmail)
	if err != nil {
		return nil, err
	}
	if whitelisted {
		return nil, domain.Validation("este email ya está en la whitelist")
	}

	existing, err := uc.userRepo.GetByEmail(normalizedEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	entry := &entity.WhitelistEntry{
		ID:        uuid.New().String(),
		Email:     normalizedEmail,
		CreatedAt: time.Now(),
	}
	if err := uc.whitelistRepo.Create(entry); err != nil {
		return nil, err
	}
	return toWhitelistResponse(entry), nil
}

// Remove elimina una entrada de la whitelist (solo admin).
func (uc *WhitelistUseCase) Remove(actor auth.Actor, id string) error {
	if !actor.IsAdmin() {
		return domain.Permission("solo un administrador puede modificar la whitelist")
	}
	return uc.whitelistRepo.Delete(id)
}

// List devuelve todas las entradas (solo admin: es una pantalla de administración).
func (uc *WhitelistUseCase) List(actor auth.Actor) ([]dto.WhitelistEntryResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.Permission("solo un administrador puede consultar la whitelist")
	}
	entries, err := uc.whitelistRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.WhitelistEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, *toWhitelistResponse(e))
	}
	return out, nil
}

// IsWhitelisted indica si el email está pre-aprobado.
func (uc *WhitelistUseCase) IsWhitelisted(email string) (bool, error) {
	return uc.whitelistRepo.IsWhitelisted(validation.NormalizeEmail(email))
}

func toWhitelistResponse(e *entity.WhitelistEntry) *dto.WhitelistEntryResponse {
	if e == nil {
		return nil
	}
	return &dto.WhitelistEntryResponse{
		ID:        e.ID,
		Email:     e.Email,
		CreatedAt: e.CreatedAt,
	}
}
