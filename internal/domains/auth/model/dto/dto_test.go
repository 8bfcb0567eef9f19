package dto_test

import (
	"encoding/json"
	"testing"

	"borrowdung/internal/domains/auth/model"
	"borrowdung/internal/domains/auth/model/dto"
	"borrowdung/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_Validate(t *testing.T) {
	valid := dto.RegisterRequest{
		FullName:        "Siti Aminah",
		Username:        "siti",
		Email:           "siti@example.com",
		Password:        "rahasia",
		ConfirmPassword: "rahasia",
	}

	tests := []struct {
		name    string
		mutate  func(r *dto.RegisterRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(*dto.RegisterRequest) {}},
		{
			name: "confirmation mismatch",
			mutate: func(r *dto.RegisterRequest) {
				r.ConfirmPassword = "rahasia2"
			},
			wantErr: dto.ErrPasswordMismatch,
		},
		{
			name: "mismatch reported before length",
			mutate: func(r *dto.RegisterRequest) {
				r.Password = "abc"
				r.ConfirmPassword = "abd"
			},
			wantErr: dto.ErrPasswordMismatch,
		},
		{
			name: "too short",
			mutate: func(r *dto.RegisterRequest) {
				r.Password = "abc12"
				r.ConfirmPassword = "abc12"
			},
			wantErr: dto.ErrPasswordTooShort,
		},
		{
			name: "blank full name",
			mutate: func(r *dto.RegisterRequest) {
				r.FullName = "   "
			},
			wantErr: "Nama Lengkap wajib diisi",
		},
		{
			name: "invalid email",
			mutate: func(r *dto.RegisterRequest) {
				r.Email = "siti"
			},
			wantErr: "Email harus berupa alamat email yang valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, tt.wantErr, failure.Message(err, ""))
		})
	}
}

func TestRegisterRequest_ConfirmationIsNotSent(t *testing.T) {
	raw, err := json.Marshal(dto.RegisterRequest{
		FullName:        "Siti",
		Username:        "siti",
		Email:           "siti@example.com",
		Password:        "rahasia",
		ConfirmPassword: "rahasia",
	})

	assert.NoError(t, err)
	assert.JSONEq(t, `{"fullName":"Siti","username":"siti","email":"siti@example.com","password":"rahasia"}`, string(raw))
}

func TestLoginResponse_ToUser(t *testing.T) {
	res := dto.LoginResponse{Token: "t", Username: "admin", Email: "a@x.id", FullName: "Admin", Role: "Admin"}

	assert.Equal(t, model.User{ID: 0, Username: "admin", Email: "a@x.id", FullName: "Admin", Role: "Admin"}, res.ToUser())
}
