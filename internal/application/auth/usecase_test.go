package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastano/taller-api/internal/application/auth"
	"github.com/dcastano/taller-api/internal/application/dto"
	"github.com/dcastano/taller-api/internal/domain"
	"github.com/dcastano/taller-api/internal/domain/entity"
	"github.com/dcastano/taller-api/pkg/config"
	pkgjwt "github.com/dcastano/taller-api/pkg/jwt"
)

// memUserRepo repositorio de usuarios en memoria para los tests.
type memUserRepo struct {
	users map[string]*entity.User // por id
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Login == user.Login {
			return domain.ErrLoginAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByLogin(login string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Login == login && !u.Deleted {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

var testJWT = config.JWTConfig{
	Secret:            "access-secret-for-tests",
	RefreshSecret:     "refresh-secret-for-tests",
	Expiration:        30,
	RefreshExpiration: 60,
	Issuer:            "taller-api-test",
}

func newAuthFixture() (*auth.UseCase, *memUserRepo) {
	repo := newMemUserRepo()
	return auth.NewUseCase(repo, testJWT), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register / Login
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuario(t *testing.T) {
	uc, repo := newAuthFixture()

	out, err := uc.Register(dto.RegisterRequest{Login: "dcastano", Password: "secreta123"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "dcastano", out.Login)
	assert.NotEmpty(t, out.ID)

	stored, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash,
		"la contraseña nunca se guarda en claro")
}

func TestRegister_LoginDuplicado(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.Register(dto.RegisterRequest{Login: "dcastano", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Login: "dcastano", Password: "otra"})
	assert.True(t, errors.Is(err, domain.ErrLoginAlreadyExists))
}

func TestRegister_SinCredenciales(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.Register(dto.RegisterRequest{Login: "", Password: ""})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestLogin_EmiteParDeTokens(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.Register(dto.RegisterRequest{Login: "dcastano", Password: "secreta123"})
	require.NoError(t, err)

	pair, err := uc.Login(dto.LoginRequest{Login: "dcastano", Password: "secreta123"})
	require.NoError(t, err)
	require.NotNil(t, pair)

	// El access se valida con el secret de access; el refresh con el suyo.
	_, tokenType, err := pkgjwt.Parse(testJWT.Secret, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.TokenTypeAccess, tokenType)

	_, tokenType, err = pkgjwt.Parse(testJWT.RefreshSecret, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.TokenTypeRefresh, tokenType)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.Register(dto.RegisterRequest{Login: "dcastano", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Login: "dcastano", Password: "incorrecta"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.Login(dto.LoginRequest{Login: "nadie", Password: "x"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Refresh
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_EmiteParNuevo(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.Register(dto.RegisterRequest{Login: "dcastano", Password: "secreta123"})
	require.NoError(t, err)
	pair, err := uc.Login(dto.LoginRequest{Login: "dcastano", Password: "secreta123"})
	require.NoError(t, err)

	renewed, err := uc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renewed.AccessToken)
	assert.NotEmpty(t, renewed.RefreshToken)
}

// Un access token no sirve para renovar: firma con otro secret y tipo distinto.
func TestRefresh_RechazaAccessToken(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.Register(dto.RegisterRequest{Login: "dcastano", Password: "secreta123"})
	require.NoError(t, err)
	pair, err := uc.Login(dto.LoginRequest{Login: "dcastano", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Refresh(pair.AccessToken)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestRefresh_UsuarioBorrado(t *testing.T) {
	uc, repo := newAuthFixture()
	out, err := uc.Register(dto.RegisterRequest{Login: "dcastano", Password: "secreta123"})
	require.NoError(t, err)
	pair, err := uc.Login(dto.LoginRequest{Login: "dcastano", Password: "secreta123"})
	require.NoError(t, err)

	repo.users[out.ID].Deleted = true

	_, err = uc.Refresh(pair.RefreshToken)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized),
		"un usuario borrado no renueva sesión")
}

func TestMe_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.Me("no-existe")
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
}
