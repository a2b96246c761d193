package dto

import (
	"errors"
	"fmt"
	"lumen/internal/domains/maplocation/model"
	gDto "lumen/shared/dto"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const bboxParts = 4

var ErrInvalidBounds = errors.New("bbox must be west,south,east,north in decimal degrees")

// ParseBounds parses a "west,south,east,north" query value.
func ParseBounds(raw string) (orb.Bound, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != bboxParts {
		return orb.Bound{}, ErrInvalidBounds
	}

	values := make([]float64, bboxParts)

	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return orb.Bound{}, fmt.Errorf("%w: %w", ErrInvalidBounds, err)
		}

		values[i] = value
	}

	west, south, east, north := values[0], values[1], values[2], values[3]

	switch {
	case west < -180 || east > 180 || south < -90 || north > 90:
		return orb.Bound{}, fmt.Errorf("%w: out of range", ErrInvalidBounds)
	case west > east || south > north:
		return orb.Bound{}, fmt.Errorf("%w: min exceeds max", ErrInvalidBounds)
	}

	return orb.Bound{
		Min: orb.Point{west, south},
		Max: orb.Point{east, north},
	}, nil
}

// ToFeatureCollection renders locations as GeoJSON points. Each feature carries the
// record fields and its marker colour; the collection bbox covers every point.
func ToFeatureCollection(models []model.MapLocation) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	points := make(orb.MultiPoint, 0, len(models))

	for _, mod := range models {
		res := MapLocationResponse{}
		res.FromModel(mod)

		feature := geojson.NewFeature(mod.Point())
		feature.ID = mod.ID
		feature.Properties = geojson.Properties{
			"id":           res.ID,
			"name":         res.Name,
			"address":      res.Address,
			"customerName": res.CustomerName,
			"serviceType":  res.ServiceType,
			"status":       res.Status,
			"date":         res.Date,
			"value":        res.Value,
			"latitude":     res.Latitude,
			"longitude":    res.Longitude,
			"color":        model.StatusColor(res.Status),
		}

		fc.Features = append(fc.Features, feature)
		points = append(points, mod.Point())
	}

	if len(points) > 0 {
		fc.BBox = geojson.NewBBox(points.Bound())
	}

	return fc
}

// BoundFilter restricts a listing to locations inside bound, edges included.
func BoundFilter(bound orb.Bound) gDto.FilterGroup {
	return gDto.NewFilterGroup(
		gDto.Filter{ArgName: "bbox_south", Field: model.FieldLatitude, Operator: gDto.FilterOperatorGreaterEq, Value: bound.Bottom(), Table: model.TableName},
		gDto.Filter{ArgName: "bbox_north", Field: model.FieldLatitude, Operator: gDto.FilterOperatorLessEq, Value: bound.Top(), Table: model.TableName},
		gDto.Filter{ArgName: "bbox_west", Field: model.FieldLongitude, Operator: gDto.FilterOperatorGreaterEq, Value: bound.Left(), Table: model.TableName},
		gDto.Filter{ArgName: "bbox_east", Field: model.FieldLongitude, Operator: gDto.FilterOperatorLessEq, Value: bound.Right(), Table: model.TableName},
	)
}
