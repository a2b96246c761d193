package quote

import (
	"lumen/infras/otel"
	"lumen/internal/domains/quote/model"
	"lumen/internal/domains/quote/model/dto"
	"lumen/internal/domains/quote/service"
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

type Handler struct {
	service service.Quote
	otel    otel.Otel
}

func New(service service.Quote, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) PublicRouter(router chi.Router) {
	router.Post("/quotes", handler.CreateQuote)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Get("/quotes", handler.GetQuotes)
	router.Get("/quotes/{id}", handler.GetQuoteByID)
	router.Patch("/quotes/{id}", handler.UpdateQuote)
	router.Delete("/quotes/{id}", handler.DeleteQuote)
}

// CreateQuote stores a quote calculator result.
// @Summary Request a quote
// @Description Store the outcome of the quote calculator. The price is computed client side.
// @Tags Quote
// @Accept json
// @Produce json
// @Param request body dto.CreateQuoteRequest true "Quote Request"
// @Success 201 {object} response.Data[dto.QuoteResponse]
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Message
// @Failure 503 {object} response.Error
// @Router /v1/quotes [post]
func (handler *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateQuote")
	defer scope.End()

	req := dto.CreateQuoteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	quote, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create quote")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, quote)
}

// GetQuotes lists stored quotes.
// @Summary Get all quotes
// @Tags Quote
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, sent, accepted, declined)"
// @Param package query string false "Filter by package"
// @Param property_type query string false "Filter by property type"
// @Param email query string false "Filter by email"
// @Success 200 {object} response.Data[dto.GetQuotesResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/quotes [get]
// @Security ApiKeyAuth
func (handler *Handler) GetQuotes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuotes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.AllowSort(model.SortableFields...)

	query := r.URL.Query()

	filterGroup := gDto.NewFilterGroup(
		gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldStatus), Table: model.TableName},
		gDto.Filter{Field: model.FieldPackage, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldPackage), Table: model.TableName},
		gDto.Filter{Field: model.FieldPropertyType, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldPropertyType), Table: model.TableName},
		gDto.Filter{Field: model.FieldEmail, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldEmail), Table: model.TableName},
	)

	quotes, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get quotes")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, quotes)
}

// @Summary Get quote by ID
// @Tags Quote
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} response.Data[dto.QuoteResponse]
// @Failure 404 {object} response.Error
// @Router /v1/quotes/{id} [get]
// @Security ApiKeyAuth
func (handler *Handler) GetQuoteByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuoteByID")
	defer scope.End()

	id := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if id == 0 {
		response.WithError(w, failure.NotFound("quote not found"))

		return
	}

	quote, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, quote)
}

// @Summary Update quote status or price
// @Tags Quote
// @Accept json
// @Produce json
// @Param id path int true "Quote ID"
// @Param request body dto.UpdateQuoteRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.QuoteResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/quotes/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateQuote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateQuote")
	defer scope.End()

	id := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if id == 0 {
		response.WithError(w, failure.NotFound("quote not found"))

		return
	}

	req := dto.UpdateQuoteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	quote, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update quote")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, quote)
}

// @Summary Delete quote
// @Tags Quote
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/quotes/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteQuote")
	defer scope.End()

	id := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if id == 0 {
		response.WithError(w, failure.NotFound("quote not found"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete quote")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Quote deleted successfully")
}
