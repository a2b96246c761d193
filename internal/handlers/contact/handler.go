package contact

import (
	"lumen/infras/otel"
	"lumen/internal/domains/contact/model"
	"lumen/internal/domains/contact/model/dto"
	"lumen/internal/domains/contact/service"
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
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) PublicRouter(router chi.Router) {
	router.Post("/contacts", handler.CreateContact)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Get("/contacts", handler.GetContacts)
	router.Get("/contacts/{id}", handler.GetContactByID)
	router.Patch("/contacts/{id}", handler.UpdateContact)
	router.Delete("/contacts/{id}", handler.DeleteContact)
}

// CreateContact handles the contact form.
// @Summary Send a contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Contact Request"
// @Success 201 {object} response.Data[dto.ContactResponse]
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Message
// @Failure 503 {object} response.Error
// @Router /v1/contacts [post]
func (handler *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContact")
	defer scope.End()

	req := dto.CreateContactRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	contact, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contact")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, contact)
}

// GetContacts lists contact messages.
// @Summary Get all contacts
// @Tags Contact
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (new, read, replied, archived)"
// @Param email query string false "Filter by email"
// @Param search query string false "Search by name"
// @Success 200 {object} response.Data[dto.GetContactsResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/contacts [get]
// @Security ApiKeyAuth
func (handler *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.AllowSort(model.SortableFields...)

	query := r.URL.Query()

	filterGroup := gDto.NewFilterGroup(
		gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldStatus), Table: model.TableName},
		gDto.Filter{Field: model.FieldEmail, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldEmail), Table: model.TableName},
		gDto.Filter{Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: query.Get("search"), Table: model.TableName},
	)

	contacts, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contacts")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, contacts)
}

// @Summary Get contact by ID
// @Tags Contact
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} response.Data[dto.ContactResponse]
// @Failure 404 {object} response.Error
// @Router /v1/contacts/{id} [get]
// @Security ApiKeyAuth
func (handler *Handler) GetContactByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContactByID")
	defer scope.End()

	id := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if id == 0 {
		response.WithError(w, failure.NotFound("contact not found"))

		return
	}

	contact, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, contact)
}

// @Summary Update contact status
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param request body dto.UpdateContactRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.ContactResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/contacts/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContact")
	defer scope.End()

	id := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if id == 0 {
		response.WithError(w, failure.NotFound("contact not found"))

		return
	}

	req := dto.UpdateContactRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	contact, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update contact")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, contact)
}

// @Summary Delete contact
// @Tags Contact
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/contacts/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteContact")
	defer scope.End()

	id := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if id == 0 {
		response.WithError(w, failure.NotFound("contact not found"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete contact")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Contact deleted successfully")
}
