package dto

import (
	"lumen/shared/constant"
	"lumen/shared/model"
)

type Metadata struct {
	CreatedDate  string `json:"created_date"`
	ModifiedDate string `json:"modified_date"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedDate = model.CreatedDate.UTC().Format(constant.DateFormat)
	m.ModifiedDate = model.ModifiedDate.UTC().Format(constant.DateFormat)
}
