package validator_test

import (
	"lumen/shared/failure"
	"lumen/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submission struct {
	Name     string `json:"name"     validate:"required,max=10"`
	Email    string `json:"email"    validate:"required,email,dotdomain"`
	Message  string `json:"message"  validate:"required,min=10,max=1000"`
	Age      int    `json:"age"      validate:"gte=0,lte=120"`
	Category string `json:"category" validate:"omitempty,oneof=user admin guest"`
	Date     string `json:"date"     validate:"omitempty,isodate"`
}

func valid() submission {
	return submission{
		Name:    "Jane",
		Email:   "user@sub.example.com",
		Message: "0123456789",
		Age:     30,
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(s *submission)
		wantField  string
		wantReason string
	}{
		{
			name:   "valid struct",
			mutate: func(_ *submission) {},
		},
		{
			name:       "missing required field",
			mutate:     func(s *submission) { s.Name = "" },
			wantField:  "name",
			wantReason: failure.ReasonMissingField,
		},
		{
			name:       "string too long",
			mutate:     func(s *submission) { s.Name = strings.Repeat("a", 11) },
			wantField:  "name",
			wantReason: failure.ReasonFieldTooLong,
		},
		{
			name:       "string too short",
			mutate:     func(s *submission) { s.Message = "012345678" },
			wantField:  "message",
			wantReason: failure.ReasonFieldTooShort,
		},
		{
			name:       "invalid email",
			mutate:     func(s *submission) { s.Email = "not-an-email" },
			wantField:  "email",
			wantReason: failure.ReasonInvalidEmailFormat,
		},
		{
			name:       "email without dotted domain",
			mutate:     func(s *submission) { s.Email = "user@localhost" },
			wantField:  "email",
			wantReason: failure.ReasonInvalidEmailFormat,
		},
		{
			name:       "number out of range",
			mutate:     func(s *submission) { s.Age = 150 },
			wantField:  "age",
			wantReason: failure.ReasonOutOfRange,
		},
		{
			name:       "value outside set",
			mutate:     func(s *submission) { s.Category = "owner" },
			wantField:  "category",
			wantReason: failure.ReasonInvalidValue,
		},
		{
			name:       "malformed date",
			mutate:     func(s *submission) { s.Date = "yesterday" },
			wantField:  "date",
			wantReason: failure.ReasonInvalidFormat,
		},
		{
			name:   "plain date accepted",
			mutate: func(s *submission) { s.Date = "2024-05-01" },
		},
		{
			name:   "timestamp accepted",
			mutate: func(s *submission) { s.Date = "2024-05-01T10:00:00Z" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := valid()
			tt.mutate(&data)

			err := validator.ValidateStruct(&data)

			if tt.wantField == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)

			fields := failure.GetFields(err)
			require.Len(t, fields, 1)
			assert.Equal(t, tt.wantField, fields[0].Field)
			assert.Equal(t, tt.wantReason, fields[0].Reason)
		})
	}
}

func TestValidateStruct_ReportsEveryField(t *testing.T) {
	err := validator.ValidateStruct(&submission{Email: "bad"})
	require.Error(t, err)

	fields := failure.GetFields(err)
	names := make([]string, len(fields))

	for i, f := range fields {
		names[i] = f.Field
	}

	assert.ElementsMatch(t, []string{"name", "email", "message"}, names)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"name":"Jane","email":"jane@example.com","message":"hello there!","age":25}`,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"name":"Jane","email":"invalid-email","message":"hello there!","age":25}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Jane","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data submission

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("test@example.com", "email,dotdomain"))
	assert.Error(t, validator.ValidateVar("invalid-email", "email"))
	assert.Error(t, validator.ValidateVar("", "required"))
	assert.NoError(t, validator.ValidateVar(25, "gte=0,lte=100"))
}

func TestParseISODate(t *testing.T) {
	d, err := validator.ParseISODate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 29, d.Day())

	_, err = validator.ParseISODate("29/02/2024")
	assert.Error(t, err)
}

type defaultedRequest struct {
	Status string `json:"status" validate:"required,oneof=new read"`
}

func (r *defaultedRequest) SetDefaults() {
	if r.Status == "" {
		r.Status = "new"
	}
}

func TestValidateStruct_AppliesDefaultsFirst(t *testing.T) {
	req := defaultedRequest{}

	require.NoError(t, validator.ValidateStruct(&req))
	assert.Equal(t, "new", req.Status)

	req = defaultedRequest{Status: "bogus"}
	err := validator.ValidateStruct(&req)
	require.Error(t, err)
	assert.Equal(t, failure.ReasonInvalidValue, failure.GetFields(err)[0].Reason)
}
