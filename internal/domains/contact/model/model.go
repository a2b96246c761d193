package model

import (
	"lumen/shared/model"
)

const (
	TableName  = "contacts"
	EntityName = "contact"

	FieldID          = "id"
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldService     = "service"
	FieldMessage     = "message"
	FieldStatus      = "status"
	FieldCreatedDate = "created_date"
)

const (
	StatusNew      = "new"
	StatusRead     = "read"
	StatusReplied  = "replied"
	StatusArchived = "archived"
)

var SortableFields = []string{FieldID, FieldCreatedDate, FieldName, FieldStatus}

type Contact struct {
	ID      int64  `db:"id"      generated:"true"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Phone   string `db:"phone"`
	Service string `db:"service"`
	Message string `db:"message"`
	Status  string `db:"status"`
	model.Metadata
}
