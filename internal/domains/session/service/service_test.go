package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"borrowdung/config"
	"borrowdung/infras/jwt"
	"borrowdung/infras/otel/mocks"
	authMocks "borrowdung/internal/domains/auth/mocks"
	authModel "borrowdung/internal/domains/auth/model"
	authDto "borrowdung/internal/domains/auth/model/dto"
	"borrowdung/internal/domains/session/model"
	"borrowdung/internal/domains/session/repository"
	"borrowdung/internal/domains/session/service"
	"borrowdung/shared/cache"
	"borrowdung/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc      service.Session
	authRepo *authMocks.MockAuth
	repo     repository.Session
	store    cache.Cache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "Borrowdung"
	cfg.JWT.SessionSecret = "test-secret"
	cfg.Session.TTLSeconds = 3600

	ctrl := gomock.NewController(t)
	authRepo := authMocks.NewMockAuth(ctrl)
	store := cache.NewMemoryCache(mocks.NewOtel())
	repo := repository.New(store, cfg, mocks.NewOtel())

	return fixture{
		svc:      service.New(authRepo, repo, service.NewAuthFailure(repo), jwt.New(cfg), mocks.NewOtel()),
		authRepo: authRepo,
		repo:     repo,
		store:    store,
	}
}

func TestSessionService_LoginLogoutRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	req := authDto.LoginRequest{Username: "admin", Password: "admin123"}

	f.authRepo.EXPECT().Login(gomock.Any(), req).Return(authDto.LoginResponse{
		Token:    "api-token",
		Username: "admin",
		Email:    "admin@kampus.ac.id",
		FullName: "Administrator",
		Role:     "Admin",
	}, nil)

	session, cookie, err := f.svc.Login(ctx, req)
	require.NoError(t, err)
	require.NotEmpty(t, cookie)

	want := authModel.User{ID: 0, Username: "admin", Email: "admin@kampus.ac.id", FullName: "Administrator", Role: "Admin"}
	assert.Equal(t, "api-token", session.Token)
	assert.Equal(t, want, session.User)

	restored, err := f.svc.Restore(ctx, cookie)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, session.ID, restored.ID)
	assert.Equal(t, "api-token", restored.Token)
	assert.Equal(t, want, restored.User)

	require.NoError(t, f.svc.Logout(ctx, restored))

	var value string
	assert.ErrorIs(t, f.store.Get(ctx, model.TokenKey(session.ID), &value), cache.Nil)
	assert.ErrorIs(t, f.store.Get(ctx, model.UserKey(session.ID), &value), cache.Nil)

	restored, err = f.svc.Restore(ctx, cookie)
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestSessionService_LoginFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	req := authDto.LoginRequest{Username: "admin", Password: "salah"}
	apiErr := failure.FromStatus(http.StatusUnauthorized, "Username atau password salah")

	f.authRepo.EXPECT().Login(gomock.Any(), req).Return(authDto.LoginResponse{}, apiErr)

	session, cookie, err := f.svc.Login(ctx, req)

	assert.ErrorIs(t, err, apiErr)
	assert.Nil(t, session)
	assert.Empty(t, cookie)
}

func TestSessionService_LoginRequiresCredentials(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.svc.Login(context.Background(), authDto.LoginRequest{Username: " ", Password: "x"})

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestSessionService_Restore(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		cookie string
	}{
		{name: "no cookie", cookie: ""},
		{name: "tampered cookie", cookie: "eyJhbGciOiJIUzI1NiJ9.e30.invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := f.svc.Restore(context.Background(), tt.cookie)

			assert.NoError(t, err)
			assert.Nil(t, session)
		})
	}
}

func TestSessionService_RefreshProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	session := model.New("s1", "api-token", authModel.User{Username: "admin"})
	require.NoError(t, f.repo.Save(ctx, session))

	profile := authModel.User{ID: 7, Username: "admin", Email: "admin@kampus.ac.id", FullName: "Administrator", Role: "Admin"}

	f.authRepo.EXPECT().Me(gomock.Any()).DoAndReturn(func(ctx context.Context) (authModel.User, error) {
		assert.Same(t, session, model.FromContext(ctx))

		return profile, nil
	})

	got, err := f.svc.RefreshProfile(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, profile, got)

	stored, err := f.repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), stored.User.ID)
}

func TestSessionService_RefreshProfileError(t *testing.T) {
	f := newFixture(t)

	session := model.New("s1", "api-token", authModel.User{Username: "admin"})
	f.authRepo.EXPECT().Me(gomock.Any()).Return(authModel.User{}, errors.New("boom"))

	_, err := f.svc.RefreshProfile(context.Background(), session)

	assert.Error(t, err)
	assert.Equal(t, "admin", session.User.Username)
}

func TestSessionService_HandleAuthFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	session := model.New("s1", "api-token", authModel.User{Username: "admin"})
	require.NoError(t, f.repo.Save(ctx, session))

	require.NoError(t, f.svc.HandleAuthFailure(ctx, session))
	require.NoError(t, f.svc.HandleAuthFailure(ctx, session))

	stored, err := f.repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, stored)
	assert.False(t, session.Authenticated())
}
