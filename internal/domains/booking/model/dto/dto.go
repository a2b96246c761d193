package dto

import (
	"fmt"
	"lumen/internal/domains/booking/model"
	"lumen/shared"
	"lumen/shared/constant"
	gDto "lumen/shared/dto"
	gModel "lumen/shared/model"
	"lumen/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	referencePrefix    = "LL"
	referenceDayLayout = "20060102"
	referenceSuffixLen = 8
)

// NewBookingReference returns a reference such as LL-20240315-9F8E7D6C. The day is taken
// in the application timezone, the suffix from a random UUID.
func NewBookingReference(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:referenceSuffixLen]

	return fmt.Sprintf("%s-%s-%s", referencePrefix, timezone.Format(now, referenceDayLayout), suffix)
}

type CreateBookingRequest struct {
	Name          string `json:"name"           validate:"required,max=100"`
	Email         string `json:"email"          validate:"required,email,dotdomain,max=100"`
	Phone         string `json:"phone"          validate:"required,max=20"`
	Address       string `json:"address"        validate:"required,max=200"`
	Service       string `json:"service"        validate:"required,max=50"`
	PreferredDate string `json:"preferred_date" validate:"required,datetime=2006-01-02"`
	PreferredTime string `json:"preferred_time" validate:"required,max=20"`
	Duration      string `json:"duration"       validate:"required,max=20"`
	Notes         string `json:"notes"          validate:"max=500"`
	TotalPrice    *int64 `json:"total_price"    validate:"omitempty,gte=0"`
}

func (c *CreateBookingRequest) SetDefaults() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	c.Service = strings.TrimSpace(c.Service)
	c.PreferredDate = strings.TrimSpace(c.PreferredDate)
	c.PreferredTime = strings.TrimSpace(c.PreferredTime)
	c.Duration = strings.TrimSpace(c.Duration)
	c.Notes = strings.TrimSpace(c.Notes)

	if c.Duration == "" {
		c.Duration = model.DefaultDuration
	}
}

// ToModel builds a pending booking stamped with now. The request must already be validated.
func (c *CreateBookingRequest) ToModel(now time.Time) (model.Booking, error) {
	preferredDate, err := time.Parse(constant.DateOnlyFormat, c.PreferredDate)
	if err != nil {
		return model.Booking{}, fmt.Errorf("parse preferred date: %w", err)
	}

	now = now.UTC()

	return model.Booking{
		BookingReference: NewBookingReference(now),
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		Address:          c.Address,
		Service:          c.Service,
		PreferredDate:    preferredDate,
		PreferredTime:    c.PreferredTime,
		Duration:         c.Duration,
		Notes:            c.Notes,
		Status:           model.StatusPending,
		TotalPrice:       c.TotalPrice,
		Metadata: gModel.Metadata{
			CreatedDate:  now,
			ModifiedDate: now,
		},
	}, nil
}

// UpdateBookingRequest is a partial update. Absent fields are left untouched.
type UpdateBookingRequest struct {
	Name          *string `db:"name"           json:"name"           validate:"omitnil,min=1,max=100"`
	Email         *string `db:"email"          json:"email"          validate:"omitnil,email,dotdomain,max=100"`
	Phone         *string `db:"phone"          json:"phone"          validate:"omitnil,min=1,max=20"`
	Address       *string `db:"address"        json:"address"        validate:"omitnil,min=1,max=200"`
	Service       *string `db:"service"        json:"service"        validate:"omitnil,min=1,max=50"`
	PreferredDate *string `db:"preferred_date" json:"preferred_date" validate:"omitnil,datetime=2006-01-02"`
	PreferredTime *string `db:"preferred_time" json:"preferred_time" validate:"omitnil,min=1,max=20"`
	Duration      *string `db:"duration"       json:"duration"       validate:"omitnil,min=1,max=20"`
	Notes         *string `db:"notes"          json:"notes"          validate:"omitnil,max=500"`
	Status        *string `db:"status"         json:"status"         validate:"omitnil,oneof=pending confirmed completed cancelled"`
	TotalPrice    *int64  `db:"total_price"    json:"total_price"    validate:"omitnil,gte=0"`
}

type BookingResponse struct {
	ID               int64  `json:"id"`
	BookingReference string `json:"booking_reference"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	Service          string `json:"service"`
	PreferredDate    string `json:"preferred_date"`
	PreferredTime    string `json:"preferred_time"`
	Duration         string `json:"duration"`
	Notes            string `json:"notes"`
	Status           string `json:"status"`
	TotalPrice       *int64 `json:"total_price,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.BookingReference = model.BookingReference
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.Service = model.Service
	r.PreferredDate = model.PreferredDate.Format(constant.DateOnlyFormat)
	r.PreferredTime = model.PreferredTime
	r.Duration = model.Duration
	r.Notes = model.Notes
	r.Status = model.Status
	r.TotalPrice = model.TotalPrice
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
