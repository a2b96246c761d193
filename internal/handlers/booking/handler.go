package booking

import (
	"lumen/infras/otel"
	"lumen/internal/domains/booking/model"
	"lumen/internal/domains/booking/model/dto"
	"lumen/internal/domains/booking/service"
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
	queryPreferredDateFrom = "preferred_date_from"
	queryPreferredDateTo   = "preferred_date_to"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// PublicRouter mounts the booking form endpoint.
func (handler *Handler) PublicRouter(router chi.Router) {
	router.Post("/bookings", handler.CreateBooking)
}

// AdminRouter mounts the booking management endpoints.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Get("/bookings", handler.GetBookings)
	router.Get("/bookings/{id}", handler.GetBookingByID)
	router.Patch("/bookings/{id}", handler.UpdateBooking)
	router.Delete("/bookings/{id}", handler.DeleteBooking)
}

// CreateBooking handles the booking form submission.
// @Summary Create a new booking
// @Description Submit an installation booking. The reference is assigned by the server.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 429 {object} response.Message
// @Failure 503 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("rejected booking request")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created " + booking.BookingReference)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings lists bookings.
// @Summary Get all bookings
// @Description Retrieve bookings with optional filtering and pagination.
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, confirmed, completed, cancelled)"
// @Param service query string false "Filter by service"
// @Param email query string false "Filter by customer email"
// @Param booking_reference query string false "Filter by booking reference"
// @Param preferred_date_from query string false "Earliest preferred date (YYYY-MM-DD)"
// @Param preferred_date_to query string false "Latest preferred date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings [get]
// @Security ApiKeyAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.AllowSort(model.SortableFields...)

	query := r.URL.Query()

	for _, date := range []string{query.Get(queryPreferredDateFrom), query.Get(queryPreferredDateTo)} {
		if date == "" {
			continue
		}

		if err := validator.ValidateVar(date, "datetime=2006-01-02"); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}
	}

	filterGroup := gDto.NewFilterGroup()
	filterGroup.Add(gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldStatus), Table: model.TableName})
	filterGroup.Add(gDto.Filter{Field: model.FieldService, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldService), Table: model.TableName})
	filterGroup.Add(gDto.Filter{Field: model.FieldEmail, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldEmail), Table: model.TableName})
	filterGroup.Add(gDto.Filter{Field: model.FieldBookingReference, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldBookingReference), Table: model.TableName})
	filterGroup.Add(gDto.Filter{
		ArgName:  queryPreferredDateFrom,
		Field:    model.FieldPreferredDate,
		Operator: gDto.FilterOperatorGreaterEq,
		Value:    query.Get(queryPreferredDateFrom),
		Table:    model.TableName,
	})
	filterGroup.Add(gDto.Filter{
		ArgName:  queryPreferredDateTo,
		Field:    model.FieldPreferredDate,
		Operator: gDto.FilterOperatorLessEq,
		Value:    query.Get(queryPreferredDateTo),
		Table:    model.TableName,
	})

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a single booking.
// @Summary Get booking by ID
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security ApiKeyAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if id == 0 {
		response.WithError(w, failure.NotFound("booking not found"))

		return
	}

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking applies a partial update.
// @Summary Update booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if id == 0 {
		response.WithError(w, failure.NotFound("booking not found"))

		return
	}

	req := dto.UpdateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// DeleteBooking removes a booking.
// @Summary Delete booking
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if id == 0 {
		response.WithError(w, failure.NotFound("booking not found"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}
