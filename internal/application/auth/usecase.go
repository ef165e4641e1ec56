package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/dcastano/taller-api/internal/application/dto"
	"github.com/dcastano/taller-api/internal/domain"
	"github.com/dcastano/taller-api/internal/domain/entity"
	"github.com/dcastano/taller-api/internal/domain/repository"
	"github.com/dcastano/taller-api/pkg/config"
	pkgjwt "github.com/dcastano/taller-api/pkg/jwt"
)

// UseCase registro, login y refresh de sesión. Emite pares access/refresh
// firmados con secrets distintos.
type UseCase struct {
	users repository.UserRepository
	cfg   config.JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(users repository.UserRepository, cfg config.JWTConfig) *UseCase {
	return &UseCase{users: users, cfg: cfg}
}

// Register da de alta un usuario con la contraseña hasheada (bcrypt).
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Login == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: login y password son obligatorios", domain.ErrInvalidInput)
	}
	existing, err := uc.users.GetByLogin(in.Login)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrLoginAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Login:        in.Login,
		FirstName:    in.FirstName,
		MiddleName:   in.MiddleName,
		LastName:     in.LastName,
		PasswordHash: string(hash),
		Email:        in.Email,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	log.Info().Str("login", user.Login).Msg("usuario registrado")
	return toUserResponse(user), nil
}

// Login valida credenciales y emite el par access/refresh.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.TokenPairResponse, error) {
	user, err := uc.users.GetByLogin(in.Login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		log.Warn().Str("login", in.Login).Msg("login fallido")
		return nil, domain.ErrUnauthorized
	}
	return uc.tokenPair(user.ID)
}

// Refresh valida un refresh token y emite un par nuevo. Un access token no
// sirve aquí: el tipo va en los claims y se verifica.
func (uc *UseCase) Refresh(refreshToken string) (*dto.TokenPairResponse, error) {
	userID, tokenType, err := pkgjwt.Parse(uc.cfg.RefreshSecret, refreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if tokenType != pkgjwt.TokenTypeRefresh {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Deleted {
		return nil, domain.ErrUnauthorized
	}
	return uc.tokenPair(user.ID)
}

// Me devuelve el perfil del usuario autenticado.
func (uc *UseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func (uc *UseCase) tokenPair(userID string) (*dto.TokenPairResponse, error) {
	access, err := pkgjwt.Generate(uc.cfg.Secret, userID, pkgjwt.TokenTypeAccess, uc.cfg.Issuer, uc.cfg.Expiration)
	if err != nil {
		return nil, err
	}
	refresh, err := pkgjwt.Generate(uc.cfg.RefreshSecret, userID, pkgjwt.TokenTypeRefresh, uc.cfg.Issuer, uc.cfg.RefreshExpiration)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:         u.ID,
		Login:      u.Login,
		Email:      u.Email,
		FirstName:  u.FirstName,
		MiddleName: u.MiddleName,
		LastName:   u.LastName,
		CreatedAt:  u.CreatedAt,
	}
}
