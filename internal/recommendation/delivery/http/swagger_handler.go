package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// ListRecommendations godoc
// @Summary List all recommendations
// @Description Get every stored recommendation
// @Tags Recommendations
// @Produce json
// @Success 200 {array} object{product_id=int,recommendation_product_id=int,relationship=string,likes=int,dislikes=int}
// @Router /api/recommendations [get]
func (h *RecommendationHandler) ListRecommendationsDoc() {}

// ListByProduct godoc
// @Summary List recommendations for a product
// @Description Get recommendations for a product id, optionally filtered by relationship type
// @Tags Recommendations
// @Produce json
// @Param product_id path int true "Product ID"
// @Param type query string false "Relationship type (GO_TOGETHER, CROSS_SELL, UP_SELL, ACCESSORY)"
// @Success 200 {array} object{product_id=int,recommendation_product_id=int,relationship=string,likes=int,dislikes=int}
// @Failure 400 {object} object{status=int,error=string,message=string}
// @Router /api/recommendations/{product_id} [get]
func (h *RecommendationHandler) ListByProductDoc() {}

// GetRecommendation godoc
// @Summary Get a recommendation
// @Description Get the relationship stored for a pair of product ids
// @Tags Recommendations
// @Produce json
// @Param product_id path int true "Product ID"
// @Param recommendation_product_id path int true "Recommended product ID"
// @Success 200 {object} object{product_id=int,recommendation_product_id=int,relationship=string,likes=int,dislikes=int}
// @Failure 404 {object} object{status=int,error=string,message=string}
// @Router /api/recommendations/{product_id}/recommended-products/{recommendation_product_id} [get]
func (h *RecommendationHandler) GetRecommendationDoc() {}

// CreateRecommendation godoc
// @Summary Create a recommendation
// @Description Create a relationship between two product ids
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body object{product_id=int,recommendation_product_id=int,relationship=string} true "Recommendation data"
// @Success 201 {object} object{product_id=int,recommendation_product_id=int,relationship=string,likes=int,dislikes=int}
// @Failure 400 {object} object{status=int,error=string,message=string}
// @Failure 415 {object} object{status=int,error=string,message=string}
// @Router /api/recommendations [post]
func (h *RecommendationHandler) CreateRecommendationDoc() {}

// UpdateRecommendation godoc
// @Summary Update a recommendation
// @Description Change the relationship stored for a pair of product ids
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param product_id path int true "Product ID"
// @Param recommendation_product_id path int true "Recommended product ID"
// @Param request body object{relationship=string} true "New relationship"
// @Success 200 {object} object{product_id=int,recommendation_product_id=int,relationship=string,likes=int,dislikes=int}
// @Failure 400 {object} object{status=int,error=string,message=string}
// @Failure 404 {object} object{status=int,error=string,message=string}
// @Failure 415 {object} object{status=int,error=string,message=string}
// @Router /api/recommendations/{product_id}/recommended-products/{recommendation_product_id} [put]
func (h *RecommendationHandler) UpdateRecommendationDoc() {}

// DeleteRecommendation godoc
// @Summary Delete a recommendation
// @Description Delete the relationship for a pair of product ids; absent pairs are a no-op
// @Tags Recommendations
// @Param product_id path int true "Product ID"
// @Param recommendation_product_id path int true "Recommended product ID"
// @Success 204 "Recommendation deleted"
// @Router /api/recommendations/{product_id}/recommended-products/{recommendation_product_id} [delete]
func (h *RecommendationHandler) DeleteRecommendationDoc() {}

// LikeRecommendation godoc
// @Summary Like a recommendation
// @Description Increment the like counter for a pair of product ids
// @Tags Recommendations
// @Produce json
// @Param product_id path int true "Product ID"
// @Param recommendation_product_id path int true "Recommended product ID"
// @Success 200 {object} object{product_id=int,recommendation_product_id=int,relationship=string,likes=int,dislikes=int}
// @Failure 404 {object} object{status=int,error=string,message=string}
// @Router /api/recommendations/{product_id}/recommended-products/{recommendation_product_id}/like [put]
func (h *RecommendationHandler) LikeRecommendationDoc() {}

// DislikeRecommendation godoc
// @Summary Dislike a recommendation
// @Description Increment the dislike counter for a pair of product ids
// @Tags Recommendations
// @Produce json
// @Param product_id path int true "Product ID"
// @Param recommendation_product_id path int true "Recommended product ID"
// @Success 200 {object} object{product_id=int,recommendation_product_id=int,relationship=string,likes=int,dislikes=int}
// @Failure 404 {object} object{status=int,error=string,message=string}
// @Router /api/recommendations/{product_id}/recommended-products/{recommendation_product_id}/dislike [put]
func (h *RecommendationHandler) DislikeRecommendationDoc() {}

// GetStats godoc
// @Summary Get recommendation statistics
// @Description Get total and per-relationship recommendation counts
// @Tags Recommendations
// @Produce json
// @Success 200 {object} object{total=int,by_relationship=object}
// @Failure 500 {object} object{status=int,error=string,message=string}
// @Router /api/recommendations/stats [get]
func (h *RecommendationHandler) GetStatsDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=int,error=string,message=string}
// @Router /health [get]
func (h *RecommendationHandler) HealthCheckDoc() {}
