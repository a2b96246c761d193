package dto_test

import (
	"lumen/internal/domains/booking/model"
	"lumen/internal/domains/booking/model/dto"
	"lumen/shared/failure"
	gModel "lumen/shared/model"
	"lumen/shared/validator"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		Name:          "Sarah Johnson",
		Email:         "sarah@example.com",
		Phone:         "555-0100",
		Address:       "123 Main St, Anytown, ST",
		Service:       "Premium Package",
		PreferredDate: "2024-12-01",
		PreferredTime: "18:00",
	}
}

func TestCreateBookingRequest_Validation(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(req *dto.CreateBookingRequest)
		wantField  string
		wantReason string
	}{
		{
			name:   "valid with defaults",
			mutate: func(_ *dto.CreateBookingRequest) {},
		},
		{
			name:       "missing name",
			mutate:     func(req *dto.CreateBookingRequest) { req.Name = "   " },
			wantField:  "name",
			wantReason: failure.ReasonMissingField,
		},
		{
			name:       "invalid email",
			mutate:     func(req *dto.CreateBookingRequest) { req.Email = "not-an-email" },
			wantField:  "email",
			wantReason: failure.ReasonInvalidEmailFormat,
		},
		{
			name:       "email without dotted domain",
			mutate:     func(req *dto.CreateBookingRequest) { req.Email = "user@localhost" },
			wantField:  "email",
			wantReason: failure.ReasonInvalidEmailFormat,
		},
		{
			name:       "phone too long",
			mutate:     func(req *dto.CreateBookingRequest) { req.Phone = strings.Repeat("1", 21) },
			wantField:  "phone",
			wantReason: failure.ReasonFieldTooLong,
		},
		{
			name:       "address too long",
			mutate:     func(req *dto.CreateBookingRequest) { req.Address = strings.Repeat("a", 201) },
			wantField:  "address",
			wantReason: failure.ReasonFieldTooLong,
		},
		{
			name:       "notes too long",
			mutate:     func(req *dto.CreateBookingRequest) { req.Notes = strings.Repeat("n", 501) },
			wantField:  "notes",
			wantReason: failure.ReasonFieldTooLong,
		},
		{
			name:       "malformed preferred date",
			mutate:     func(req *dto.CreateBookingRequest) { req.PreferredDate = "01/12/2024" },
			wantField:  "preferred_date",
			wantReason: failure.ReasonInvalidFormat,
		},
		{
			name: "negative total price",
			mutate: func(req *dto.CreateBookingRequest) {
				price := int64(-1)
				req.TotalPrice = &price
			},
			wantField:  "total_price",
			wantReason: failure.ReasonOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, model.DefaultDuration, req.Duration)

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

func TestCreateBookingRequest_ReportsEveryMissingField(t *testing.T) {
	req := dto.CreateBookingRequest{}

	err := validator.ValidateStruct(&req)
	require.Error(t, err)

	var names []string
	for _, field := range failure.GetFields(err) {
		assert.Equal(t, failure.ReasonMissingField, field.Reason)
		names = append(names, field.Field)
	}

	assert.ElementsMatch(t, []string{"name", "email", "phone", "address", "service", "preferred_date", "preferred_time"}, names)
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := validRequest()
	req.SetDefaults()

	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	booking, err := req.ToModel(now)
	require.NoError(t, err)

	assert.Zero(t, booking.ID)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, model.DefaultDuration, booking.Duration)
	assert.Equal(t, now, booking.CreatedDate)
	assert.Equal(t, "2024-12-01", booking.PreferredDate.Format(time.DateOnly))
	assert.Regexp(t, regexp.MustCompile(`^LL-20240315-[0-9A-F]{8}$`), booking.BookingReference)
}

func TestNewBookingReference_Distinct(t *testing.T) {
	now := time.Now()
	seen := map[string]struct{}{}

	for range 100 {
		ref := dto.NewBookingReference(now)
		_, dup := seen[ref]
		assert.False(t, dup, ref)
		seen[ref] = struct{}{}
	}
}

func TestUpdateBookingRequest_Validation(t *testing.T) {
	empty := ""
	status := "archived"
	confirmed := model.StatusConfirmed

	assert.Error(t, validator.ValidateStruct(&dto.UpdateBookingRequest{Name: &empty}))
	assert.Error(t, validator.ValidateStruct(&dto.UpdateBookingRequest{Status: &status}))
	assert.NoError(t, validator.ValidateStruct(&dto.UpdateBookingRequest{Status: &confirmed}))
	assert.NoError(t, validator.ValidateStruct(&dto.UpdateBookingRequest{}))
}

func TestBookingResponse_FromModel(t *testing.T) {
	created := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	price := int64(750)

	res := dto.BookingResponse{}
	res.FromModel(model.Booking{
		ID:               7,
		BookingReference: "LL-20240315-ABCDEF12",
		Name:             "Sarah Johnson",
		PreferredDate:    time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		Status:           model.StatusPending,
		TotalPrice:       &price,
		Metadata:         gModel.Metadata{CreatedDate: created, ModifiedDate: created},
	})

	assert.Equal(t, int64(7), res.ID)
	assert.Equal(t, "2024-12-01", res.PreferredDate)
	assert.Equal(t, "2024-03-15T10:30:00Z", res.CreatedDate)
	assert.Equal(t, &price, res.TotalPrice)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	res := dto.GetBookingsResponse{}
	res.FromModels([]model.Booking{{ID: 1}, {ID: 2}}, 21, 10)

	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, 21, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
}
