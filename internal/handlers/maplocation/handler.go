package maplocation

import (
	"lumen/infras/otel"
	"lumen/internal/domains/maplocation/model"
	"lumen/internal/domains/maplocation/model/dto"
	"lumen/internal/domains/maplocation/service"
	"lumen/shared"
	"lumen/shared/constant"
	gDto "lumen/shared/dto"
	"lumen/shared/failure"
	"lumen/shared/validator"
	"lumen/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryBBox        = "bbox"
	queryServiceType = "serviceType"
)

type Handler struct {
	service service.MapLocation
	otel    otel.Otel
}

func New(service service.MapLocation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// AdminRouter mounts the map endpoints. Map data is never public.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Get("/map-locations", handler.GetMapLocations)
	router.Post("/map-locations", handler.CreateMapLocation)
	router.Get("/map-locations/geojson", handler.GetGeoJSON)
	router.Get("/map-locations/stats", handler.GetStats)
	router.Post("/map-locations/export", handler.ExportGeoJSON)
	router.Get("/map-locations/{id}", handler.GetMapLocationByID)
	router.Patch("/map-locations/{id}", handler.UpdateMapLocation)
	router.Delete("/map-locations/{id}", handler.DeleteMapLocation)
}

// filterFromRequest reads the status, serviceType and bbox query parameters.
func filterFromRequest(r *http.Request) (gDto.FilterGroup, error) {
	query := r.URL.Query()

	filterGroup := gDto.NewFilterGroup(
		gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldStatus), Table: model.TableName},
		gDto.Filter{Field: model.FieldServiceType, Operator: gDto.FilterOperatorEq, Value: query.Get(queryServiceType), Table: model.TableName},
	)

	if raw := query.Get(queryBBox); raw != "" {
		bound, err := dto.ParseBounds(raw)
		if err != nil {
			return filterGroup, failure.BadRequest(err)
		}

		filterGroup.AddGroup(dto.BoundFilter(bound))
	}

	return filterGroup, nil
}

// CreateMapLocation adds a marker.
// @Summary Create map location
// @Tags MapLocation
// @Accept json
// @Produce json
// @Param request body dto.CreateMapLocationRequest true "Map location"
// @Success 201 {object} response.Data[dto.MapLocationResponse]
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/map-locations [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateMapLocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMapLocation")
	defer scope.End()

	req := dto.CreateMapLocationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	location, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create map location")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, location)
}

// GetMapLocations lists markers.
// @Summary Get all map locations
// @Tags MapLocation
// @Produce json
// @Param status query string false "Filter by status (completed, scheduled, pending)"
// @Param serviceType query string false "Filter by service type"
// @Param bbox query string false "west,south,east,north"
// @Param sort_by query string false "Sort column"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {object} response.Data[[]dto.MapLocationResponse]
// @Failure 400 {object} response.Error
// @Router /v1/map-locations [get]
// @Security ApiKeyAuth
func (handler *Handler) GetMapLocations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMapLocations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)
	queryParams.AllowSort(model.SortableFields...)

	filterGroup, err := filterFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	locations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get map locations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, locations)
}

// GetGeoJSON returns the markers as a FeatureCollection.
// @Summary Get map locations as GeoJSON
// @Tags MapLocation
// @Produce application/geo+json
// @Param status query string false "Filter by status"
// @Param serviceType query string false "Filter by service type"
// @Param bbox query string false "west,south,east,north"
// @Success 200 {object} object
// @Failure 400 {object} response.Error
// @Router /v1/map-locations/geojson [get]
// @Security ApiKeyAuth
func (handler *Handler) GetGeoJSON(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGeoJSON")
	defer scope.End()

	filterGroup, err := filterFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	collection, err := handler.service.GeoJSON(ctx, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build geojson")

		response.WithError(w, err)

		return
	}

	response.WithGeoJSON(w, http.StatusOK, collection)
}

// @Summary Get map statistics
// @Tags MapLocation
// @Produce json
// @Param status query string false "Filter by status"
// @Param serviceType query string false "Filter by service type"
// @Param bbox query string false "west,south,east,north"
// @Success 200 {object} response.Data[dto.StatsResponse]
// @Router /v1/map-locations/stats [get]
// @Security ApiKeyAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	filterGroup, err := filterFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	stats, err := handler.service.Stats(ctx, filterGroup)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}

// ExportGeoJSON writes a snapshot of every marker to object storage.
// @Summary Export map locations
// @Tags MapLocation
// @Produce json
// @Success 201 {object} response.Data[dto.ExportResponse]
// @Failure 503 {object} response.Error
// @Router /v1/map-locations/export [post]
// @Security ApiKeyAuth
func (handler *Handler) ExportGeoJSON(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportGeoJSON")
	defer scope.End()

	export, err := handler.service.Export(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export map locations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Map locations exported to " + export.Key)

	response.WithJSON(w, http.StatusCreated, export)
}

// @Summary Get map location by ID
// @Tags MapLocation
// @Produce json
// @Param id path int true "Map location ID"
// @Success 200 {object} response.Data[dto.MapLocationResponse]
// @Failure 404 {object} response.Error
// @Router /v1/map-locations/{id} [get]
// @Security ApiKeyAuth
func (handler *Handler) GetMapLocationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMapLocationByID")
	defer scope.End()

	id := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if id == 0 {
		response.WithError(w, failure.NotFound("map location not found"))

		return
	}

	location, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, location)
}

// @Summary Update map location
// @Tags MapLocation
// @Accept json
// @Produce json
// @Param id path int true "Map location ID"
// @Param request body dto.UpdateMapLocationRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.MapLocationResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/map-locations/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateMapLocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMapLocation")
	defer scope.End()

	id := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if id == 0 {
		response.WithError(w, failure.NotFound("map location not found"))

		return
	}

	req := dto.UpdateMapLocationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	location, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update map location")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, location)
}

// @Summary Delete map location
// @Tags MapLocation
// @Produce json
// @Param id path int true "Map location ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/map-locations/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteMapLocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMapLocation")
	defer scope.End()

	id := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if id == 0 {
		response.WithError(w, failure.NotFound("map location not found"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete map location")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Map location deleted successfully")
}
