package quote_test

import (
	"encoding/json"
	"lumen/infras/otel/mocks"
	"lumen/internal/domains/quote/model/dto"
	serviceMocks "lumen/internal/domains/quote/service/mocks"
	handler "lumen/internal/handlers/quote"
	gDto "lumen/shared/dto"
	"lumen/shared/failure"
	"lumen/transport/http/response"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*chi.Mux, *serviceMocks.MockQuote) {
	t.Helper()

	svc := serviceMocks.NewMockQuote(gomock.NewController(t))
	h := handler.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	h.PublicRouter(router)
	h.AdminRouter(router)

	return router, svc
}

func TestHandler_CreateQuote(t *testing.T) {
	t.Run("created with add-ons", func(t *testing.T) {
		router, svc := setup(t)

		svc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req dto.CreateQuoteRequest) (dto.QuoteResponse, error) {
				assert.True(t, req.AddOns.Roofline)
				assert.False(t, req.AddOns.Trees)
				assert.Equal(t, int64(1850), req.TotalPrice)

				return dto.QuoteResponse{ID: 11, Package: req.Package, TotalPrice: req.TotalPrice, Status: "pending"}, nil
			})

		body := `{"property_type":"residential","package":"premium","add_ons":{"roofline":true},"square_footage":2400,"total_price":1850}`

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body)))

		require.Equal(t, http.StatusCreated, rec.Code)

		var res response.Data[dto.QuoteResponse]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, int64(11), res.Data.ID)
		assert.Equal(t, "pending", res.Data.Status)
	})

	t.Run("negative price", func(t *testing.T) {
		router, _ := setup(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(`{"total_price":-1}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_GetQuotes(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetQuotesResponse, error) {
			assert.Equal(t, "total_price", params.SortBy)
			assert.Equal(t, "DESC", params.SortDir)

			where, _ := filter.GetWhereClause()
			assert.Equal(t, "(quotes.package = :package)", where)

			return dto.GetQuotesResponse{}, nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quotes?package=premium&sort_by=total_price&sort_dir=desc", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_GetQuoteByID(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().Get(gomock.Any(), int64(12)).Return(dto.QuoteResponse{}, failure.NotFound("quote not found"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quotes/12", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_UpdateQuote_Empty(t *testing.T) {
	router, svc := setup(t)

	svc.EXPECT().Update(gomock.Any(), gomock.Any(), int64(3)).Return(dto.QuoteResponse{}, failure.EmptyUpdate())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/quotes/3", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
