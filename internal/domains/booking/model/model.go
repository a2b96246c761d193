package model

import (
	"lumen/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldBookingReference = "booking_reference"
	FieldName             = "name"
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldAddress          = "address"
	FieldService          = "service"
	FieldPreferredDate    = "preferred_date"
	FieldPreferredTime    = "preferred_time"
	FieldDuration         = "duration"
	FieldNotes            = "notes"
	FieldStatus           = "status"
	FieldTotalPrice       = "total_price"
	FieldCreatedDate      = "created_date"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"

	DefaultDuration = "2-4"
)

// SortableFields are the columns a listing may be ordered by.
var SortableFields = []string{FieldID, FieldCreatedDate, FieldPreferredDate, FieldName, FieldStatus, FieldService}

type Booking struct {
	ID               int64     `db:"id"                generated:"true"`
	BookingReference string    `db:"booking_reference"`
	Name             string    `db:"name"`
	Email            string    `db:"email"`
	Phone            string    `db:"phone"`
	Address          string    `db:"address"`
	Service          string    `db:"service"`
	PreferredDate    time.Time `db:"preferred_date"`
	PreferredTime    string    `db:"preferred_time"`
	Duration         string    `db:"duration"`
	Notes            string    `db:"notes"`
	Status           string    `db:"status"`
	TotalPrice       *int64    `db:"total_price"`
	model.Metadata
}
