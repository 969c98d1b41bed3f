package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"

	httpDelivery "github.com/tair/recommendation-service/internal/recommendation/delivery/http"
	"github.com/tair/recommendation-service/internal/recommendation/domain"
	"github.com/tair/recommendation-service/internal/recommendation/repository"
)

type HandlerSuite struct {
	suite.Suite

	repo   *repository.MemoryRecommendationRepository
	router *mux.Router
	// prodRouter has the clear-all route disabled
	prodRouter *mux.Router
}

// SetupSuite builds the handler once; the Prometheus collectors it owns
// may only be registered a single time per process.
func (s *HandlerSuite) SetupSuite() {
	s.repo = repository.NewMemoryRecommendationRepository()
	handler := httpDelivery.NewRecommendationHandler(s.repo)

	s.router = mux.NewRouter()
	handler.RegisterRoutes(s.router, true)

	s.prodRouter = mux.NewRouter()
	handler.RegisterRoutes(s.prodRouter, false)
}

func (s *HandlerSuite) SetupTest() {
	s.Require().NoError(s.repo.Clear())
}

func (s *HandlerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *HandlerSuite) createPair(productID, recommendationProductID int64, relationship string) {
	body := fmt.Sprintf(`{"product_id":%d,"recommendation_product_id":%d,"relationship":%q}`,
		productID, recommendationProductID, relationship)
	rr := s.do(http.MethodPost, "/api/recommendations", body)
	s.Require().Equal(http.StatusCreated, rr.Code)
}

func (s *HandlerSuite) decodeRecord(rr *httptest.ResponseRecorder) domain.Recommendation {
	var rec domain.Recommendation
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &rec))
	return rec
}

func (s *HandlerSuite) TestIndex() {
	rr := s.do(http.MethodGet, "/", "")
	s.Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Body.String(), "Recommendation REST API Service")
}

func (s *HandlerSuite) TestCreateRecommendation() {
	rr := s.do(http.MethodPost, "/api/recommendations",
		`{"product_id":1,"recommendation_product_id":2,"relationship":"UP_SELL"}`)

	s.Equal(http.StatusCreated, rr.Code)
	s.Equal("/api/recommendations/1/recommended-products/2", rr.Header().Get("Location"))

	rec := s.decodeRecord(rr)
	s.Equal(int64(1), rec.ProductID)
	s.Equal(int64(2), rec.RecommendationProductID)
	s.Equal(domain.UpSell, rec.Relationship)
	s.Zero(rec.Likes)
	s.Zero(rec.Dislikes)
}

func (s *HandlerSuite) TestCreateDuplicateReturns400() {
	s.createPair(1, 2, "UP_SELL")

	rr := s.do(http.MethodPost, "/api/recommendations",
		`{"product_id":1,"recommendation_product_id":2,"relationship":"UP_SELL"}`)
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Contains(rr.Body.String(), "already exists")
}

func (s *HandlerSuite) TestCreateWrongContentTypeReturns415() {
	req := httptest.NewRequest(http.MethodPost, "/api/recommendations",
		strings.NewReader(`{"product_id":1,"recommendation_product_id":2,"relationship":"UP_SELL"}`))
	req.Header.Set("Content-Type", "text/plain")
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	s.Equal(http.StatusUnsupportedMediaType, rr.Code)
}

func (s *HandlerSuite) TestCreateMissingFieldNamesField() {
	rr := s.do(http.MethodPost, "/api/recommendations", `{"product_id":1}`)
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Contains(rr.Body.String(), "recommendation_product_id")
}

func (s *HandlerSuite) TestCreateUnknownRelationshipReturns400() {
	rr := s.do(http.MethodPost, "/api/recommendations",
		`{"product_id":1,"recommendation_product_id":2,"relationship":"FRIENDS"}`)
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Contains(rr.Body.String(), "UP_SELL")
}

func (s *HandlerSuite) TestGetRecommendation() {
	s.createPair(1, 2, "CROSS_SELL")

	rr := s.do(http.MethodGet, "/api/recommendations/1/recommended-products/2", "")
	s.Equal(http.StatusOK, rr.Code)
	s.Equal(domain.CrossSell, s.decodeRecord(rr).Relationship)
}

func (s *HandlerSuite) TestGetRecommendationNotFound() {
	rr := s.do(http.MethodGet, "/api/recommendations/8/recommended-products/9", "")
	s.Equal(http.StatusNotFound, rr.Code)
}

func (s *HandlerSuite) TestListRecommendations() {
	rr := s.do(http.MethodGet, "/api/recommendations", "")
	s.Equal(http.StatusOK, rr.Code)
	s.JSONEq(`[]`, rr.Body.String())

	s.createPair(1, 2, "UP_SELL")
	s.createPair(3, 4, "ACCESSORY")

	rr = s.do(http.MethodGet, "/api/recommendations", "")
	s.Equal(http.StatusOK, rr.Code)

	var recs []domain.Recommendation
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &recs))
	s.Len(recs, 2)
}

func (s *HandlerSuite) TestListByProductWithTypeFilter() {
	s.createPair(1, 2, "UP_SELL")
	s.createPair(1, 3, "UP_SELL")
	s.createPair(1, 4, "ACCESSORY")

	rr := s.do(http.MethodGet, "/api/recommendations/1?type=UP_SELL", "")
	s.Equal(http.StatusOK, rr.Code)

	var recs []domain.Recommendation
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &recs))
	s.Len(recs, 2)
	for _, rec := range recs {
		s.Equal(domain.UpSell, rec.Relationship)
	}

	// Without a type filter every record for the product comes back
	rr = s.do(http.MethodGet, "/api/recommendations/1", "")
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &recs))
	s.Len(recs, 3)
}

func (s *HandlerSuite) TestListByProductUnknownTypeReturns400() {
	rr := s.do(http.MethodGet, "/api/recommendations/1?type=BOGUS", "")
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *HandlerSuite) TestUpdateRecommendation() {
	s.createPair(1, 2, "UP_SELL")

	rr := s.do(http.MethodPut, "/api/recommendations/1/recommended-products/2",
		`{"product_id":1,"recommendation_product_id":2,"relationship":"ACCESSORY"}`)
	s.Equal(http.StatusOK, rr.Code)
	s.Equal(domain.Accessory, s.decodeRecord(rr).Relationship)
}

func (s *HandlerSuite) TestUpdateNotFoundReturns404() {
	rr := s.do(http.MethodPut, "/api/recommendations/8/recommended-products/9",
		`{"relationship":"ACCESSORY"}`)
	s.Equal(http.StatusNotFound, rr.Code)
}

func (s *HandlerSuite) TestUpdateInvalidRelationshipReturns400() {
	s.createPair(1, 2, "UP_SELL")

	for _, body := range []string{
		`{"relationship":"BOGUS"}`,
		`{"relationship":""}`,
		`{}`,
	} {
		rr := s.do(http.MethodPut, "/api/recommendations/1/recommended-products/2", body)
		s.Equal(http.StatusBadRequest, rr.Code)
	}

	// Relationship is validated before commit, nothing was persisted
	rr := s.do(http.MethodGet, "/api/recommendations/1/recommended-products/2", "")
	s.Equal(domain.UpSell, s.decodeRecord(rr).Relationship)
}

func (s *HandlerSuite) TestDeleteRecommendation() {
	s.createPair(1, 2, "UP_SELL")

	rr := s.do(http.MethodDelete, "/api/recommendations/1/recommended-products/2", "")
	s.Equal(http.StatusNoContent, rr.Code)
	s.Empty(rr.Body.String())

	rr = s.do(http.MethodGet, "/api/recommendations/1/recommended-products/2", "")
	s.Equal(http.StatusNotFound, rr.Code)
}

func (s *HandlerSuite) TestDeleteAbsentPairIsNoOp() {
	rr := s.do(http.MethodDelete, "/api/recommendations/8/recommended-products/9", "")
	s.Equal(http.StatusNoContent, rr.Code)
}

func (s *HandlerSuite) TestLikeRecommendation() {
	s.createPair(1, 2, "UP_SELL")

	for i := int64(1); i <= 2; i++ {
		rr := s.do(http.MethodPut, "/api/recommendations/1/recommended-products/2/like", "")
		s.Equal(http.StatusOK, rr.Code)
		s.Equal(i, s.decodeRecord(rr).Likes)
	}

	rr := s.do(http.MethodGet, "/api/recommendations/1/recommended-products/2", "")
	rec := s.decodeRecord(rr)
	s.Equal(int64(2), rec.Likes)
	s.Zero(rec.Dislikes)
}

func (s *HandlerSuite) TestDislikeRecommendation() {
	s.createPair(1, 2, "UP_SELL")

	rr := s.do(http.MethodPut, "/api/recommendations/1/recommended-products/2/dislike", "")
	s.Equal(http.StatusOK, rr.Code)

	rec := s.decodeRecord(rr)
	s.Equal(int64(1), rec.Dislikes)
	s.Zero(rec.Likes)
}

func (s *HandlerSuite) TestLikeNotFoundReturns404() {
	rr := s.do(http.MethodPut, "/api/recommendations/8/recommended-products/9/like", "")
	s.Equal(http.StatusNotFound, rr.Code)
}

func (s *HandlerSuite) TestClearRecommendations() {
	s.createPair(1, 2, "UP_SELL")
	s.createPair(3, 4, "ACCESSORY")

	rr := s.do(http.MethodDelete, "/api/recommendations", "")
	s.Equal(http.StatusNoContent, rr.Code)

	rr = s.do(http.MethodGet, "/api/recommendations", "")
	s.JSONEq(`[]`, rr.Body.String())
}

func (s *HandlerSuite) TestClearRouteDisabledOutsideTestingMode() {
	req := httptest.NewRequest(http.MethodDelete, "/api/recommendations", nil)
	rr := httptest.NewRecorder()
	s.prodRouter.ServeHTTP(rr, req)

	s.Equal(http.StatusMethodNotAllowed, rr.Code)
}

func (s *HandlerSuite) TestGetStats() {
	s.createPair(1, 2, "UP_SELL")
	s.createPair(1, 3, "UP_SELL")
	s.createPair(2, 3, "ACCESSORY")

	rr := s.do(http.MethodGet, "/api/recommendations/stats", "")
	s.Equal(http.StatusOK, rr.Code)

	var stats struct {
		Total          int64            `json:"total"`
		ByRelationship map[string]int64 `json:"by_relationship"`
	}
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &stats))
	s.Equal(int64(3), stats.Total)
	s.Equal(int64(2), stats.ByRelationship["UP_SELL"])
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}
