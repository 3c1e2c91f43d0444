package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"esgcompass/internal/metrics"
	"esgcompass/internal/service"
	"esgcompass/internal/transport/rest/handler"
	"esgcompass/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router.
type Container struct {
	AuthService       *service.AuthService
	AssessmentService *service.AssessmentService
	AnalysisService   *service.AnalysisService
	CompanyService    *service.CompanyService
	EngagementService *service.EngagementService
	Metrics           *metrics.Metrics
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	analysisHandler := handler.NewAnalysisHandler(c.AnalysisService)
	companyHandler := handler.NewCompanyHandler(c.CompanyService)
	engagementHandler := handler.NewEngagementHandler(c.EngagementService)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	if c.Metrics != nil {
		r.Handle("/metrics", c.Metrics.Handler()).Methods("GET")
	}

	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Authenticated routes
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/company", companyHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/company", companyHandler.Put).Methods("PUT", "OPTIONS")

	userRoutes.HandleFunc("/assessments/{type}", assessmentHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/assessments/{type}/step", assessmentHandler.Transition).Methods("PUT", "OPTIONS")
	userRoutes.HandleFunc("/assessments/{type}/complete", assessmentHandler.Complete).Methods("POST", "OPTIONS")

	userRoutes.HandleFunc("/assessments/{type}/analysis", analysisHandler.Generate).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/assessments/{type}/analysis", analysisHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/assessments/{type}/analysis/export", analysisHandler.Export).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/assessments/{type}/analysis/review", analysisHandler.RequestReview).Methods("POST", "OPTIONS")

	userRoutes.HandleFunc("/engagement/points", engagementHandler.Points).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/engagement/leaderboard", engagementHandler.Leaderboard).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
