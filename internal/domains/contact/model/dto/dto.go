package dto

import (
	"lumen/internal/domains/contact/model"
	"lumen/shared"
	gDto "lumen/shared/dto"
	gModel "lumen/shared/model"
	"strings"
	"time"
)

type CreateContactRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email,dotdomain,max=100"`
	Phone   string `json:"phone"   validate:"max=20"`
	Service string `json:"service" validate:"max=50"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

func (c *CreateContactRequest) SetDefaults() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Service = strings.TrimSpace(c.Service)
	c.Message = strings.TrimSpace(c.Message)
}

func (c *CreateContactRequest) ToModel(now time.Time) model.Contact {
	now = now.UTC()

	return model.Contact{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Service: c.Service,
		Message: c.Message,
		Status:  model.StatusNew,
		Metadata: gModel.Metadata{
			CreatedDate:  now,
			ModifiedDate: now,
		},
	}
}

type UpdateContactRequest struct {
	Status *string `db:"status" json:"status" validate:"omitnil,oneof=new read replied archived"`
}

type ContactResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
	Status  string `json:"status"`
	gDto.Metadata
}

func (r *ContactResponse) FromModel(model model.Contact) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Service = model.Service
	r.Message = model.Message
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetContactsResponse struct {
	Contacts  []ContactResponse `json:"contacts"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetContactsResponse) FromModels(models []model.Contact, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Contacts = make([]ContactResponse, len(models))
	for i, mod := range models {
		r.Contacts[i].FromModel(mod)
	}
}
