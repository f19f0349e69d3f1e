package server

import (
	"net/http"

	"bwsAPI/internal/auth"
	"bwsAPI/internal/handlers"
	"bwsAPI/internal/models"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// scopedRoute represents a single API route
type scopedRoute struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// Options tunes the router
type Options struct {
	Logger    *zap.Logger
	BodyLimit int64
}

// NewRouter initializes all routes and returns an http.Handler
func NewRouter(opts Options, secretsHandler handlers.SecretsHandlerInterface, projectsHandler handlers.ProjectsHandlerInterface) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	routes := []scopedRoute{
		{
			Name:        "ListSecrets",
			Method:      http.MethodGet,
			Pattern:     "/api/v1/secrets",
			HandlerFunc: secretsHandler.ListSecrets,
		},
		{
			Name:        "GetSecret",
			Method:      http.MethodGet,
			Pattern:     "/api/v1/secret/{id}",
			HandlerFunc: withResourceID(secretsHandler.GetSecret),
		},
		{
			Name:        "CreateSecret",
			Method:      http.MethodPost,
			Pattern:     "/api/v1/secret",
			HandlerFunc: secretsHandler.CreateSecret,
		},
		{
			Name:        "ListProjects",
			Method:      http.MethodGet,
			Pattern:     "/api/v1/projects",
			HandlerFunc: projectsHandler.ListProjects,
		},
		{
			Name:        "GetProject",
			Method:      http.MethodGet,
			Pattern:     "/api/v1/project/{id}",
			HandlerFunc: withResourceID(projectsHandler.GetProject),
		},
		{
			Name:        "CreateProject",
			Method:      http.MethodPost,
			Pattern:     "/api/v1/project",
			HandlerFunc: projectsHandler.CreateProject,
		},
		{
			Name:        "Health",
			Method:      http.MethodGet,
			Pattern:     "/healthz",
			HandlerFunc: health,
		},
	}

	// method-qualified patterns make the mux answer 405 on a method mismatch
	mux := http.NewServeMux()
	for _, route := range routes {
		mux.Handle(route.Method+" "+route.Pattern, route.HandlerFunc)
		logger.Debug("route registered", zap.String("name", route.Name), zap.String("method", route.Method), zap.String("pattern", route.Pattern))
	}
	mux.Handle("GET /metrics", promhttp.Handler())

	return auth.RequestLogger(logger, auth.BodyLimit(opts.BodyLimit, mux))
}

// withResourceID extracts the secret or project id from the path and injects it into the context
func withResourceID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		// {id} never matches an empty segment
		ctx := auth.WithResourceID(req.Context(), req.PathValue("id"))
		next(w, req.WithContext(ctx))
	}
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"` + models.StatusSuccess + `"}` + "\n"))
}
