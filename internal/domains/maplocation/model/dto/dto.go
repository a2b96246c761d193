package dto

import (
	"lumen/internal/domains/maplocation/model"
	"lumen/shared/constant"
	gModel "lumen/shared/model"
	"lumen/shared/validator"
	"strings"
	"time"
)

type CreateMapLocationRequest struct {
	Name         string   `json:"name"         validate:"required,max=100"`
	Address      string   `json:"address"      validate:"required,max=200"`
	CustomerName string   `json:"customerName" validate:"required,max=100"`
	ServiceType  string   `json:"serviceType"  validate:"required,max=50"`
	Status       string   `json:"status"       validate:"required,oneof=completed scheduled pending"`
	Date         string   `json:"date"         validate:"required,isodate"`
	Value        int64    `json:"value"        validate:"gte=0"`
	Latitude     *float64 `json:"latitude"     validate:"required,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude"    validate:"required,gte=-180,lte=180"`
}

func (c *CreateMapLocationRequest) SetDefaults() {
	c.Name = strings.TrimSpace(c.Name)
	c.Address = strings.TrimSpace(c.Address)
	c.CustomerName = strings.TrimSpace(c.CustomerName)
	c.ServiceType = strings.TrimSpace(c.ServiceType)
	c.Status = strings.ToLower(strings.TrimSpace(c.Status))
	c.Date = strings.TrimSpace(c.Date)

	if c.Status == "" {
		c.Status = model.StatusPending
	}
}

// ToModel converts a validated request. Coordinates must be present.
func (c *CreateMapLocationRequest) ToModel(now time.Time) (model.MapLocation, error) {
	date, err := validator.ParseISODate(c.Date)
	if err != nil {
		return model.MapLocation{}, err //nolint:wrapcheck
	}

	now = now.UTC()

	return model.MapLocation{
		Name:         c.Name,
		Address:      c.Address,
		CustomerName: c.CustomerName,
		ServiceType:  c.ServiceType,
		Status:       c.Status,
		Date:         date.UTC(),
		Value:        c.Value,
		Latitude:     *c.Latitude,
		Longitude:    *c.Longitude,
		Metadata: gModel.Metadata{
			CreatedDate:  now,
			ModifiedDate: now,
		},
	}, nil
}

type UpdateMapLocationRequest struct {
	Name         *string  `db:"name"          json:"name"         validate:"omitnil,min=1,max=100"`
	Address      *string  `db:"address"       json:"address"      validate:"omitnil,min=1,max=200"`
	CustomerName *string  `db:"customer_name" json:"customerName" validate:"omitnil,min=1,max=100"`
	ServiceType  *string  `db:"service_type"  json:"serviceType"  validate:"omitnil,min=1,max=50"`
	Status       *string  `db:"status"        json:"status"       validate:"omitnil,oneof=completed scheduled pending"`
	Date         *string  `db:"date"          json:"date"         validate:"omitnil,isodate"`
	Value        *int64   `db:"value"         json:"value"        validate:"omitnil,gte=0"`
	Latitude     *float64 `db:"latitude"      json:"latitude"     validate:"omitnil,gte=-90,lte=90"`
	Longitude    *float64 `db:"longitude"     json:"longitude"    validate:"omitnil,gte=-180,lte=180"`
}

// MapLocationResponse is the record shape consumed by the map front end.
type MapLocationResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	CustomerName string  `json:"customerName"`
	ServiceType  string  `json:"serviceType"`
	Status       string  `json:"status"`
	Date         string  `json:"date"`
	Value        int64   `json:"value"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

func (r *MapLocationResponse) FromModel(model model.MapLocation) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.CustomerName = model.CustomerName
	r.ServiceType = model.ServiceType
	r.Status = model.Status
	r.Date = model.Date.UTC().Format(constant.DateFormat)
	r.Value = model.Value
	r.Latitude = model.Latitude
	r.Longitude = model.Longitude
}

func FromModels(models []model.MapLocation) []MapLocationResponse {
	res := make([]MapLocationResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type StatsResponse struct {
	Total         int               `json:"total"`
	TotalValue    int64             `json:"totalValue"`
	ByStatus      map[string]int    `json:"byStatus"`
	ByServiceType map[string]int    `json:"byServiceType"`
	Colors        map[string]string `json:"colors"`
}

func (r *StatsResponse) FromSummaries(summaries []model.Summary) {
	r.Total = 0
	r.TotalValue = 0
	r.ByStatus = map[string]int{
		model.StatusCompleted: 0,
		model.StatusScheduled: 0,
		model.StatusPending:   0,
	}
	r.ByServiceType = map[string]int{}
	r.Colors = map[string]string{
		model.StatusCompleted: model.ColorCompleted,
		model.StatusScheduled: model.ColorScheduled,
		model.StatusPending:   model.ColorPending,
	}

	for _, summary := range summaries {
		r.Total += summary.Total
		r.TotalValue += summary.Value
		r.ByStatus[summary.Status] += summary.Total
		r.ByServiceType[summary.ServiceType] += summary.Total
	}
}

type ExportResponse struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	Features    int    `json:"features"`
	GeneratedAt string `json:"generatedAt"`
}
