package dto_test

import (
	"lumen/internal/domains/maplocation/model"
	"lumen/internal/domains/maplocation/model/dto"
	"lumen/shared/failure"
	"lumen/shared/validator"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func validRequest() dto.CreateMapLocationRequest {
	return dto.CreateMapLocationRequest{
		Name:         "Johnson Residence",
		Address:      "123 Broadway, New York, NY",
		CustomerName: "Sarah Johnson",
		ServiceType:  "Premium Package",
		Status:       model.StatusCompleted,
		Date:         "2024-11-15T18:30:00Z",
		Value:        2500,
		Latitude:     ptr(40.7128),
		Longitude:    ptr(-74.0060),
	}
}

func TestCreateMapLocationRequest_Validation(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(req *dto.CreateMapLocationRequest)
		wantField  string
		wantReason string
	}{
		{
			name:   "valid",
			mutate: func(_ *dto.CreateMapLocationRequest) {},
		},
		{
			name:   "equator and meridian are valid coordinates",
			mutate: func(req *dto.CreateMapLocationRequest) { req.Latitude, req.Longitude = ptr(0.0), ptr(0.0) },
		},
		{
			name:       "latitude out of range",
			mutate:     func(req *dto.CreateMapLocationRequest) { req.Latitude = ptr(90.5) },
			wantField:  "latitude",
			wantReason: failure.ReasonOutOfRange,
		},
		{
			name:       "longitude out of range",
			mutate:     func(req *dto.CreateMapLocationRequest) { req.Longitude = ptr(-180.1) },
			wantField:  "longitude",
			wantReason: failure.ReasonOutOfRange,
		},
		{
			name:       "missing latitude",
			mutate:     func(req *dto.CreateMapLocationRequest) { req.Latitude = nil },
			wantField:  "latitude",
			wantReason: failure.ReasonMissingField,
		},
		{
			name:       "unknown status",
			mutate:     func(req *dto.CreateMapLocationRequest) { req.Status = "lost" },
			wantField:  "status",
			wantReason: failure.ReasonInvalidValue,
		},
		{
			name:       "negative value",
			mutate:     func(req *dto.CreateMapLocationRequest) { req.Value = -1 },
			wantField:  "value",
			wantReason: failure.ReasonOutOfRange,
		},
		{
			name:       "malformed date",
			mutate:     func(req *dto.CreateMapLocationRequest) { req.Date = "next week" },
			wantField:  "date",
			wantReason: failure.ReasonInvalidFormat,
		},
		{
			name:       "customer name too long",
			mutate:     func(req *dto.CreateMapLocationRequest) { req.CustomerName = strings.Repeat("c", 101) },
			wantField:  "customerName",
			wantReason: failure.ReasonFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantField == "" {
				require.NoError(t, err)

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

func TestCreateMapLocationRequest_DefaultsStatus(t *testing.T) {
	req := validRequest()
	req.Status = ""

	require.NoError(t, validator.ValidateStruct(&req))
	assert.Equal(t, model.StatusPending, req.Status)

	req.Status = " Scheduled "
	require.NoError(t, validator.ValidateStruct(&req))
	assert.Equal(t, model.StatusScheduled, req.Status)
}

func TestMapLocation_RoundTrip(t *testing.T) {
	req := validRequest()
	require.NoError(t, validator.ValidateStruct(&req))

	now := time.Date(2024, 11, 1, 9, 0, 0, 0, time.UTC)

	location, err := req.ToModel(now)
	require.NoError(t, err)

	location.ID = 12
	assert.Equal(t, now, location.CreatedDate)

	res := dto.MapLocationResponse{}
	res.FromModel(location)

	assert.Equal(t, dto.MapLocationResponse{
		ID:           12,
		Name:         "Johnson Residence",
		Address:      "123 Broadway, New York, NY",
		CustomerName: "Sarah Johnson",
		ServiceType:  "Premium Package",
		Status:       model.StatusCompleted,
		Date:         "2024-11-15T18:30:00Z",
		Value:        2500,
		Latitude:     40.7128,
		Longitude:    -74.0060,
	}, res)
}

func TestMapLocationResponse_DateIsUTC(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)

	res := dto.MapLocationResponse{}
	res.FromModel(model.MapLocation{Date: time.Date(2024, 11, 15, 20, 0, 0, 0, est)})

	assert.Equal(t, "2024-11-16T01:00:00Z", res.Date)
}

func TestStatsResponse_FromSummaries(t *testing.T) {
	res := dto.StatsResponse{}
	res.FromSummaries([]model.Summary{
		{Status: model.StatusCompleted, ServiceType: "Premium Package", Total: 3, Value: 7500},
		{Status: model.StatusCompleted, ServiceType: "Basic Package", Total: 1, Value: 900},
		{Status: model.StatusPending, ServiceType: "Premium Package", Total: 2, Value: 0},
	})

	assert.Equal(t, 6, res.Total)
	assert.Equal(t, int64(8400), res.TotalValue)
	assert.Equal(t, map[string]int{
		model.StatusCompleted: 4,
		model.StatusScheduled: 0,
		model.StatusPending:   2,
	}, res.ByStatus)
	assert.Equal(t, map[string]int{"Premium Package": 5, "Basic Package": 1}, res.ByServiceType)
	assert.Equal(t, model.ColorScheduled, res.Colors[model.StatusScheduled])
}
