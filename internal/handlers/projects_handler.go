package handlers

import (
	"net/http"

	"bwsAPI/internal/bws"
	"bwsAPI/internal/models"

	"go.uber.org/zap"
)

// ProjectsHandler serves the project endpoints by running `bws project ...`
type ProjectsHandler struct {
	cli
}

// NewProjectsHandler creates a new ProjectsHandler
func NewProjectsHandler(runner bws.Runner, binary string, logger *zap.Logger) *ProjectsHandler {
	return &ProjectsHandler{cli: newCLI(runner, binary, logger)}
}

// ListProjects handles GET /api/v1/projects
func (h *ProjectsHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, bws.KindProject, func(out []byte) (any, error) {
		return models.DecodeProjects(out)
	})
}

// GetProject handles GET /api/v1/project/{id}
func (h *ProjectsHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, bws.KindProject, http.StatusCreated)
}

// CreateProject handles POST /api/v1/project.
// Error responses carry only the CLI message, never the command line.
func (h *ProjectsHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, bws.KindProject)
}
