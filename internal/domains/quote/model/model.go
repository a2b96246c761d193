package model

import (
	"lumen/shared/model"
)

const (
	TableName  = "quotes"
	EntityName = "quote"

	FieldID            = "id"
	FieldPropertyType  = "property_type"
	FieldPackage       = "package"
	FieldRoofline      = "roofline"
	FieldTrees         = "trees"
	FieldBushes        = "bushes"
	FieldPathway       = "pathway"
	FieldAnimation     = "animation"
	FieldSquareFootage = "square_footage"
	FieldTotalPrice    = "total_price"
	FieldCustomerName  = "customer_name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldStatus        = "status"
	FieldCreatedDate   = "created_date"
)

const (
	StatusPending  = "pending"
	StatusSent     = "sent"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"

	DefaultPropertyType  = "residential"
	DefaultPackage       = "basic"
	DefaultSquareFootage = 2000
)

var SortableFields = []string{FieldID, FieldCreatedDate, FieldTotalPrice, FieldSquareFootage, FieldStatus}

type Quote struct {
	ID            int64  `db:"id"             generated:"true"`
	PropertyType  string `db:"property_type"`
	Package       string `db:"package"`
	Roofline      bool   `db:"roofline"`
	Trees         bool   `db:"trees"`
	Bushes        bool   `db:"bushes"`
	Pathway       bool   `db:"pathway"`
	Animation     bool   `db:"animation"`
	SquareFootage int    `db:"square_footage"`
	TotalPrice    int64  `db:"total_price"`
	CustomerName  string `db:"customer_name"`
	Email         string `db:"email"`
	Phone         string `db:"phone"`
	Status        string `db:"status"`
	model.Metadata
}
