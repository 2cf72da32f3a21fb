// Package auth registra y autentica operadores. Sin roles: un operador
// autenticado puede operar todo el sistema.
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/dto"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/entity"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/repository"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/pkg/config"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/pkg/jwt"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/pkg/validator"
)

// UseCase casos de uso de autenticación.
type UseCase struct {
	repo   repository.UserRepository
	jwtCfg config.JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.UserRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{repo: repo, jwtCfg: jwtCfg}
}

// Register da de alta un operador. El email se normaliza a minúsculas; si ya
// existe devuelve ErrEmailAlreadyExists.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	ve := &domain.ValidationError{}
	ve.AddAll(validator.Reasons(in))
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear contraseña: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(in.Name),
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica credenciales y emite un token. Credenciales malas y cuentas
// deshabilitadas devuelven el mismo ErrUnauthorized: la respuesta no revela
// si el email existe.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	ve := &domain.ValidationError{}
	ve.AddAll(validator.Reasons(in))
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := uc.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != "active" {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// GetByID obtiene un operador por ID. Devuelve nil si no existe.
func (uc *UseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
