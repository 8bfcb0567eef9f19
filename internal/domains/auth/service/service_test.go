package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"borrowdung/infras/otel/mocks"
	authMocks "borrowdung/internal/domains/auth/mocks"
	"borrowdung/internal/domains/auth/model/dto"
	"borrowdung/internal/domains/auth/service"
	"borrowdung/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthService_Register(t *testing.T) {
	valid := dto.RegisterRequest{
		FullName:        "Budi Santoso",
		Username:        "budi",
		Email:           "budi@example.com",
		Password:        "rahasia",
		ConfirmPassword: "rahasia",
	}

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func(repo *authMocks.MockAuth)
		wantMsg   string
		wantCode  int
	}{
		{
			name: "successful registration",
			req:  valid,
			setupMock: func(repo *authMocks.MockAuth) {
				repo.EXPECT().Register(gomock.Any(), valid).Return(nil)
			},
		},
		{
			name: "password mismatch never reaches the api",
			req: func() dto.RegisterRequest {
				r := valid
				r.ConfirmPassword = "berbeda"

				return r
			}(),
			setupMock: func(*authMocks.MockAuth) {},
			wantMsg:   dto.ErrPasswordMismatch,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "short password never reaches the api",
			req: func() dto.RegisterRequest {
				r := valid
				r.Password, r.ConfirmPassword = "12345", "12345"

				return r
			}(),
			setupMock: func(*authMocks.MockAuth) {},
			wantMsg:   dto.ErrPasswordTooShort,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "server message is kept",
			req:  valid,
			setupMock: func(repo *authMocks.MockAuth) {
				repo.EXPECT().Register(gomock.Any(), valid).
					Return(failure.FromStatus(http.StatusBadRequest, "Username sudah digunakan"))
			},
			wantMsg:  "Username sudah digunakan",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "transport failure",
			req:  valid,
			setupMock: func(repo *authMocks.MockAuth) {
				repo.EXPECT().Register(gomock.Any(), valid).Return(errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := authMocks.NewMockAuth(ctrl)
			tt.setupMock(repo)

			svc := service.New(repo, mocks.NewOtel())

			err := svc.Register(context.Background(), tt.req)
			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, failure.Message(err, ""))
			}
		})
	}
}
