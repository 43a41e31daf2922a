package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/istore-api/internal/application/dto"
	"github.com/jhoicas/istore-api/internal/domain"
	"github.com/jhoicas/istore-api/internal/domain/entity"
	"github.com/jhoicas/istore-api/internal/domain/repository"
	"github.com/jhoicas/istore-api/internal/domain/validation"
	pkgjwt "github.com/jhoicas/istore-api/pkg/jwt"
	"github.com/jhoicas/istore-api/pkg/password"
)

// TxRunner ejecuta el flujo de registro (crear usuario + consumir whitelist)
// dentro de una transacción. Lo implementa postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		whitelistRepo repository.WhitelistRepository,
	) error) error
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo      repository.UserRepository
	whitelistRepo repository.WhitelistRepository
	txRunner      TxRunner
	jwtCfg        JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	whitelistRepo repository.WhitelistRepository,
	txRunner TxRunner,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:      userRepo,
		whitelistRepo: whitelistRepo,
		txRunner:      txRunner,
		jwtCfg:        jwtCfg,
	}
}

// Login verifica email/password y genera un JWT. El mensaje de fallo es
// genérico a propósito: no distingue "usuario inexistente" de "contraseña
// incorrecta" para no revelar qué cuentas existen.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validation.Email(in.Email); err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, domain.Validation("la contraseña es requerida")
	}

	user, err := uc.userRepo.GetByEmail(validation.NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !password.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := pkgjwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// Register crea una cuenta. El primer usuario del sistema siempre es admin y
// no pasa por la whitelist; los siguientes deben estar pre-aprobados y la
// entrada de whitelist se consume en la misma transacción que crea el usuario.
// El orden de las validaciones es fijo: email → pseudo → password →
// confirmación → email duplicado → whitelist.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := validation.Email(in.Email); err != nil {
		return nil, err
	}
	if err := validation.Pseudo(in.Pseudo); err != nil {
		return nil, err
	}
	if err := validation.Password(in.Password); err != nil {
		return nil, err
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.Validation("las contraseñas no coinciden")
	}

	normalizedEmail := validation.NormalizeEmail(in.Email)

	existing, err := uc.userRepo.GetByEmail(normalizedEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	count, err := uc.userRepo.Count()
	if err != nil {
		return nil, err
	}
	isFirstUser := count == 0

	if !isFirstUser {
		whitelisted, err := uc.whitelistRepo.IsWhitelisted(normalizedEmail)
		if err != nil {
			return nil, err
		}
		if !whitelisted {
			return nil, domain.Permission("tu email no está autorizado para crear una cuenta, contacta a un administrador")
		}
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	role := entity.RoleEmployee
	if isFirstUser {
		role = entity.RoleAdmin
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        normalizedEmail,
		Pseudo:       strings.TrimSpace(in.Pseudo),
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Crear usuario y consumir la whitelist en una sola transacción:
	// la entrada es de un solo uso.
	err = uc.txRunner.Run(ctx, func(users repository.UserRepository, whitelist repository.WhitelistRepository) error {
		if err := users.Create(user); err != nil {
			return err
		}
		if !isFirstUser {
			return whitelist.DeleteByEmail(normalizedEmail)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	message := "cuenta creada con éxito"
	if isFirstUser {
		message = "cuenta de administrador creada con éxito"
	}
	return &dto.RegisterResponse{
		Message: message,
		User:    *ToUserResponse(user),
	}, nil
}

// ToUserResponse mapea la entidad a su DTO de salida (sin hash de contraseña).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Pseudo:    u.Pseudo,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
