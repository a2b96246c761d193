package dto

import (
	"lumen/internal/domains/quote/model"
	"lumen/shared"
	gDto "lumen/shared/dto"
	gModel "lumen/shared/model"
	"strings"
	"time"
)

// AddOns are the optional extras priced on top of the package.
type AddOns struct {
	Roofline  bool `json:"roofline"`
	Trees     bool `json:"trees"`
	Bushes    bool `json:"bushes"`
	Pathway   bool `json:"pathway"`
	Animation bool `json:"animation"`
}

// CreateQuoteRequest carries a price computed by the pricing calculator on the client.
// TotalPrice is stored as submitted.
type CreateQuoteRequest struct {
	PropertyType  string `json:"property_type"  validate:"required,max=50"`
	Package       string `json:"package"        validate:"required,max=50"`
	AddOns        AddOns `json:"add_ons"`
	SquareFootage int    `json:"square_footage" validate:"gte=0,lte=1000000"`
	TotalPrice    int64  `json:"total_price"    validate:"gte=0"`
	CustomerName  string `json:"customer_name"  validate:"max=100"`
	Email         string `json:"email"          validate:"omitempty,email,dotdomain,max=100"`
	Phone         string `json:"phone"          validate:"max=20"`
}

func (c *CreateQuoteRequest) SetDefaults() {
	c.PropertyType = strings.TrimSpace(c.PropertyType)
	c.Package = strings.TrimSpace(c.Package)
	c.CustomerName = strings.TrimSpace(c.CustomerName)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)

	if c.PropertyType == "" {
		c.PropertyType = model.DefaultPropertyType
	}

	if c.Package == "" {
		c.Package = model.DefaultPackage
	}

	if c.SquareFootage == 0 {
		c.SquareFootage = model.DefaultSquareFootage
	}
}

func (c *CreateQuoteRequest) ToModel(now time.Time) model.Quote {
	now = now.UTC()

	return model.Quote{
		PropertyType:  c.PropertyType,
		Package:       c.Package,
		Roofline:      c.AddOns.Roofline,
		Trees:         c.AddOns.Trees,
		Bushes:        c.AddOns.Bushes,
		Pathway:       c.AddOns.Pathway,
		Animation:     c.AddOns.Animation,
		SquareFootage: c.SquareFootage,
		TotalPrice:    c.TotalPrice,
		CustomerName:  c.CustomerName,
		Email:         c.Email,
		Phone:         c.Phone,
		Status:        model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedDate:  now,
			ModifiedDate: now,
		},
	}
}

type UpdateQuoteRequest struct {
	Status     *string `db:"status"      json:"status"      validate:"omitnil,oneof=pending sent accepted declined"`
	TotalPrice *int64  `db:"total_price" json:"total_price" validate:"omitnil,gte=0"`
}

type QuoteResponse struct {
	ID            int64  `json:"id"`
	PropertyType  string `json:"property_type"`
	Package       string `json:"package"`
	AddOns        AddOns `json:"add_ons"`
	SquareFootage int    `json:"square_footage"`
	TotalPrice    int64  `json:"total_price"`
	CustomerName  string `json:"customer_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Status        string `json:"status"`
	gDto.Metadata
}

func (r *QuoteResponse) FromModel(model model.Quote) {
	r.ID = model.ID
	r.PropertyType = model.PropertyType
	r.Package = model.Package
	r.AddOns = AddOns{
		Roofline:  model.Roofline,
		Trees:     model.Trees,
		Bushes:    model.Bushes,
		Pathway:   model.Pathway,
		Animation: model.Animation,
	}
	r.SquareFootage = model.SquareFootage
	r.TotalPrice = model.TotalPrice
	r.CustomerName = model.CustomerName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetQuotesResponse struct {
	Quotes    []QuoteResponse `json:"quotes"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetQuotesResponse) FromModels(models []model.Quote, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Quotes = make([]QuoteResponse, len(models))
	for i, mod := range models {
		r.Quotes[i].FromModel(mod)
	}
}
