package model

import (
	"lumen/shared/model"
	"time"

	"github.com/paulmach/orb"
)

const (
	TableName  = "map_locations"
	EntityName = "map_location"

	FieldID           = "id"
	FieldName         = "name"
	FieldAddress      = "address"
	FieldCustomerName = "customer_name"
	FieldServiceType  = "service_type"
	FieldStatus       = "status"
	FieldDate         = "date"
	FieldValue        = "value"
	FieldLatitude     = "latitude"
	FieldLongitude    = "longitude"
	FieldCreatedDate  = "created_date"
)

const (
	StatusCompleted = "completed"
	StatusScheduled = "scheduled"
	StatusPending   = "pending"
)

// Marker colours used by the admin map legend.
const (
	ColorCompleted = "#28a745"
	ColorPending   = "#ffc107"
	ColorScheduled = "#17a2b8"
	ColorDefault   = "#6c757d"
)

var SortableFields = []string{FieldID, FieldDate, FieldName, FieldStatus, FieldServiceType, FieldValue, FieldCreatedDate}

type MapLocation struct {
	ID           int64     `db:"id"            generated:"true"`
	Name         string    `db:"name"`
	Address      string    `db:"address"`
	CustomerName string    `db:"customer_name"`
	ServiceType  string    `db:"service_type"`
	Status       string    `db:"status"`
	Date         time.Time `db:"date"`
	Value        int64     `db:"value"`
	Latitude     float64   `db:"latitude"`
	Longitude    float64   `db:"longitude"`
	model.Metadata
}

// Point returns the location in orb's longitude, latitude order.
func (m MapLocation) Point() orb.Point {
	return orb.Point{m.Longitude, m.Latitude}
}

// Summary is one status and service type bucket of the aggregate query.
type Summary struct {
	Status      string `db:"status"`
	ServiceType string `db:"service_type"`
	Total       int    `db:"total"`
	Value       int64  `db:"value"`
}

func StatusColor(status string) string {
	switch status {
	case StatusCompleted:
		return ColorCompleted
	case StatusPending:
		return ColorPending
	case StatusScheduled:
		return ColorScheduled
	default:
		return ColorDefault
	}
}
