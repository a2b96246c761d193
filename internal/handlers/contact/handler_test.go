package contact_test

import (
	"lumen/infras/otel/mocks"
	"lumen/internal/domains/contact/model/dto"
	serviceMocks "lumen/internal/domains/contact/service/mocks"
	handler "lumen/internal/handlers/contact"
	gDto "lumen/shared/dto"
	"lumen/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*chi.Mux, *serviceMocks.MockContact) {
	t.Helper()

	svc := serviceMocks.NewMockContact(gomock.NewController(t))
	h := handler.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	h.PublicRouter(router)
	h.AdminRouter(router)

	return router, svc
}

func TestHandler_CreateContact(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *serviceMocks.MockContact)
		wantCode  int
	}{
		{
			name: "created",
			body: `{"name":"Mike Chen","email":"mike@example.com","message":"Please call me about a quote."}`,
			setupMock: func(svc *serviceMocks.MockContact) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.ContactResponse{ID: 1, Status: "new"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "message too short",
			body:     `{"name":"Mike Chen","email":"mike@example.com","message":"hi"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "store unavailable",
			body: `{"name":"Mike Chen","email":"mike@example.com","message":"Please call me about a quote."}`,
			setupMock: func(svc *serviceMocks.MockContact) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.ContactResponse{}, failure.StorageUnavailable(assert.AnError))
			},
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := setup(t)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contacts", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetContacts(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetContactsResponse, error) {
			where, args := filter.GetWhereClause()
			assert.Equal(t, "(contacts.status = :status AND LOWER(contacts.name) LIKE LOWER(:name))", where)
			assert.Equal(t, "%chen%", args["name"])

			return dto.GetContactsResponse{}, nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contacts?status=new&search=chen", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_UpdateContact(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().Update(gomock.Any(), gomock.Any(), int64(2)).Return(dto.ContactResponse{ID: 2, Status: "read"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/contacts/2", strings.NewReader(`{"status":"read"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"read"`)
}

func TestHandler_DeleteContact(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().Delete(gomock.Any(), int64(8)).Return(failure.NotFound("contact not found"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/contacts/8", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
