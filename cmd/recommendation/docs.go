package main

// @title Recommendation Service API
// @version 1.0
// @description REST service that stores recommendation relationships between pairs of products with full observability (logging, tracing, metrics)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/tair/recommendation-service
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/tair/recommendation-service/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @tag.name Recommendations
// @tag.description Recommendation management endpoints

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
