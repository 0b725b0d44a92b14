package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/infrastructure/memory"
	"github.com/jhoicas/finanzas-api/pkg/jwt"
)

const secret = "test-secret"

func newUseCase() *AuthUseCase {
	return NewAuthUseCase(memory.NewUserRepository(), JWTConfig{Secret: secret, ExpMinutes: 5, Issuer: "test"}, "IDR")
}

func TestRegisterYLogin(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	user, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "Ana@Example.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "IDR", user.Currency)
	assert.Equal(t, "active", user.Status)

	res, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)
	userID, err := jwt.Parse(secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	me, err := uc.Me(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, me.Email)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "A@B.CO", Password: "otroSecreto"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_EntradaInvalida(t *testing.T) {
	uc := newUseCase()
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "sin-arroba", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "a@b.co", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.co", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@b.co", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
