package validator_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"borrowdung/shared/constant"
	"borrowdung/shared/failure"
	"borrowdung/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomForm struct {
	Name     string `form:"name"     label:"Nama Ruangan" validate:"required,max=100"`
	Email    string `form:"email"    label:"Email"        validate:"omitempty,email"`
	Capacity int    `form:"capacity" label:"Kapasitas"    validate:"gt=0"`
	Reason   string `form:"reason"   label:"Alasan"       validate:"omitempty,notblank"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    roomForm
		wantErr string
	}{
		{
			name: "valid struct",
			data: roomForm{Name: "Lab A", Capacity: 30},
		},
		{
			name:    "missing required field uses label",
			data:    roomForm{Capacity: 30},
			wantErr: "Nama Ruangan wajib diisi",
		},
		{
			name:    "capacity must be positive",
			data:    roomForm{Name: "Lab A"},
			wantErr: "Kapasitas harus lebih dari 0",
		},
		{
			name:    "invalid email",
			data:    roomForm{Name: "Lab A", Capacity: 1, Email: "bukan-email"},
			wantErr: "Email harus berupa alamat email yang valid",
		},
		{
			name:    "whitespace only is blank",
			data:    roomForm{Name: "Lab A", Capacity: 1, Reason: "   "},
			wantErr: "Alasan wajib diisi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("Ruangan sedang direnovasi", "notblank"))
	assert.Error(t, validator.ValidateVar("", "notblank"))
	assert.Error(t, validator.ValidateVar("\t\n", "notblank"))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		values   url.Values
		expected roomForm
		wantErr  bool
	}{
		{
			name:     "valid form",
			values:   url.Values{"name": {"Lab A"}, "capacity": {"30"}},
			expected: roomForm{Name: "Lab A", Capacity: 30},
		},
		{
			name:    "non numeric capacity",
			values:  url.Values{"name": {"Lab A"}, "capacity": {"tiga puluh"}},
			wantErr: true,
		},
		{
			name:    "empty form",
			values:  url.Values{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/rooms", strings.NewReader(tt.values.Encode()))
			req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)

			var got roomForm
			err := validator.Decode(req, &got)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
