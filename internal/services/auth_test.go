package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func authFixture(t *testing.T) (AuthServiceInterface, *entities.User) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entities.User{
		ID:       "user-1",
		Email:    "maya@gearguard.local",
		Role:     "technician",
		Password: string(hash),
	}
	userRepo := &mockUserRepo{
		FindUserByEmailFn: func(ctx context.Context, email string) (*entities.User, error) {
			if email == user.Email {
				return user, nil
			}
			return nil, apperrors.ErrNotFound
		},
		FindUserByIDFn: func(ctx context.Context, id string) (*entities.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, apperrors.ErrNotFound
		},
	}

	jwtSvc := service.NewJWTService("test-secret", time.Hour, 24*time.Hour, zap.NewNop())
	return NewAuthService(userRepo, jwtSvc, zap.NewNop()), user
}

func TestLoginSuccess(t *testing.T) {
	svc, user := authFixture(t)

	res, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    user.Email,
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Tokens.AccessToken)
	assert.NotEmpty(t, res.Tokens.RefreshToken)
	assert.Equal(t, int64(3600), res.Tokens.ExpiresIn)
	assert.Equal(t, user.ID, res.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, user := authFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    user.Email,
		Password: "wrong",
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestLoginUnknownEmailIndistinguishable(t *testing.T) {
	svc, _ := authFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "nobody@gearguard.local",
		Password: "whatever",
	})

	// Unknown email answers exactly like a wrong password.
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	assert.Equal(t, apperrors.ErrInvalidCredentials.Error(), httpErr.Message)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, user := authFixture(t)

	res, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    user.Email,
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), res.Tokens.AccessToken)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRefreshRotatesTokens(t *testing.T) {
	svc, user := authFixture(t)

	login, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    user.Email,
		Password: "correct-horse",
	})
	require.NoError(t, err)

	pair, err := svc.Refresh(context.Background(), login.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}
