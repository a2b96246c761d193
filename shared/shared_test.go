package shared_test

import (
	"context"
	"errors"
	"lumen/shared"
	cacheMocks "lumen/shared/cache/mocks"
	"lumen/shared/constant"
	"lumen/shared/dto"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "valid t string",
			input:    "t",
			expected: boolPtr(true),
		},
		{
			name:     "valid f string",
			input:    "f",
			expected: boolPtr(false),
		},
		{
			name:     "valid T string",
			input:    "T",
			expected: boolPtr(true),
		},
		{
			name:     "valid F string",
			input:    "F",
			expected: boolPtr(false),
		},
		{
			name:     "valid TRUE string",
			input:    "TRUE",
			expected: boolPtr(true),
		},
		{
			name:     "valid FALSE string",
			input:    "FALSE",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
		{
			name:     "random string returns nil",
			input:    "random",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "single item",
			total:    1,
			limit:    10,
			expected: 1,
		},
		{
			name:     "limit equals total",
			total:    10,
			limit:    10,
			expected: 1,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
		{
			name:     "large numbers",
			total:    1000000,
			limit:    7,
			expected: 142858,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type TestStruct struct {
		Name       string `db:"name"`
		Email      string `db:"email"`
		EmptyField string `db:"empty_field"`
		NoDBTag    string
		NoTagField string `db:""`
	}

	tests := []struct {
		name     string
		data     any
		expected map[string]any
	}{
		{
			name: "struct with populated fields",
			data: TestStruct{
				Name:       "John Doe",
				Email:      "john@example.com",
				NoDBTag:    "ignored",
				NoTagField: "ignored",
			},
			expected: map[string]any{
				"name":  "John Doe",
				"email": "john@example.com",
			},
		},
		{
			name:     "struct with all zero values",
			data:     TestStruct{},
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data)

			if len(tt.expected) == 0 {
				if len(result) != 0 {
					t.Errorf("expected empty patch, got %+v", result)
				}

				return
			}

			if _, ok := result[constant.FieldModifiedDate].(time.Time); !ok {
				t.Error("expected modified_date to be a time.Time")
			}

			for key, expectedValue := range tt.expected {
				if actualValue, exists := result[key]; !exists {
					t.Errorf("expected field %s to exist", key)
				} else if !reflect.DeepEqual(actualValue, expectedValue) {
					t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
				}
			}

			if len(result) != len(tt.expected)+1 {
				t.Errorf("unexpected fields in result %+v", result)
			}
		})
	}
}

func TestTransformFieldsWithPointers(t *testing.T) {
	type TestStructWithPointers struct {
		Roofline *bool   `db:"roofline"`
		Count    *int    `db:"count"`
		Skipped  *string `db:"skipped"`
	}

	data := TestStructWithPointers{
		Roofline: boolPtr(false),
		Count:    intPtr(0),
	}

	result := shared.TransformFields(data)

	if result["roofline"] != false {
		t.Errorf("expected roofline to be false, got %v", result["roofline"])
	}

	if result["count"] != 0 {
		t.Errorf("expected count to be 0, got %v", result["count"])
	}

	if _, exists := result["skipped"]; exists {
		t.Error("expected nil pointer to be skipped")
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID(42, "id", "bookings")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    int64(42),
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
		},
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}
}

func TestParseID(t *testing.T) {
	tests := map[string]int64{
		"42":  42,
		"0":   0,
		"-3":  0,
		"abc": 0,
		"":    0,
	}

	for raw, expected := range tests {
		if got := shared.ParseID(raw); got != expected {
			t.Errorf("ParseID(%q): expected %d, got %d", raw, expected, got)
		}
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("booking:get", int64(7)); got != "booking:get:7" {
		t.Errorf("expected booking:get:7, got %s", got)
	}

	params := dto.QueryParams{Page: 1, Limit: 10}
	pending := dto.FilterGroup{Filters: []any{dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "pending"}}}
	done := dto.FilterGroup{Filters: []any{dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "completed"}}}

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, pending)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, pending)
	third := shared.BuildCacheKeyWithQuery("booking:gets", params, done)

	if first != second {
		t.Errorf("expected identical keys, got %s and %s", first, second)
	}

	if first == third {
		t.Error("expected different filters to yield different keys")
	}

	if !strings.HasPrefix(first, "booking:gets:") {
		t.Errorf("expected prefix booking:gets:, got %s", first)
	}
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), "booking:gets:*").Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), "booking:count:*").Return(errors.New("redis down"))

	shared.InvalidateCaches(context.Background(), mockCache, "booking:gets")
	shared.InvalidateCaches(context.Background(), mockCache, "booking:count")
}

// Helper functions for creating pointers
func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}
