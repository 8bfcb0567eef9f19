package dto

import (
	"borrowdung/internal/domains/auth/model"
	"borrowdung/shared/failure"
	"borrowdung/shared/validator"
)

const (
	passwordMinLength = 6

	ErrPasswordMismatch = "Password dan konfirmasi password tidak sama"
	ErrPasswordTooShort = "Password minimal 6 karakter"
)

type LoginRequest struct {
	Username string `form:"username" json:"username" label:"Username" validate:"notblank"`
	Password string `form:"password" json:"password" label:"Password" validate:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// ToUser synthesizes the user record kept in the session. The login response
// carries no id, so it is left at 0.
func (r LoginResponse) ToUser() model.User {
	return model.User{
		ID:       0,
		Username: r.Username,
		Email:    r.Email,
		FullName: r.FullName,
		Role:     r.Role,
	}
}

type RegisterRequest struct {
	FullName        string `form:"fullName"        json:"fullName" label:"Nama Lengkap" validate:"notblank"`
	Username        string `form:"username"        json:"username" label:"Username"     validate:"notblank,min=3"`
	Email           string `form:"email"           json:"email"    label:"Email"        validate:"required,email"`
	Password        string `form:"password"        json:"password" label:"Password"     validate:"required"`
	ConfirmPassword string `form:"confirmPassword" json:"-"`
}

// Validate runs the checks that must pass before the account is submitted.
// The confirmation is compared before the length rule.
func (r *RegisterRequest) Validate() error {
	if err := validator.ValidateStruct(r); err != nil {
		return err
	}

	if r.Password != r.ConfirmPassword {
		return failure.BadRequestFromString(ErrPasswordMismatch) //nolint:wrapcheck
	}

	if len(r.Password) < passwordMinLength {
		return failure.BadRequestFromString(ErrPasswordTooShort) //nolint:wrapcheck
	}

	return nil
}
