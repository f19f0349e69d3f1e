package handlers

import (
	"net/http"

	"bwsAPI/internal/bws"
	"bwsAPI/internal/models"

	"go.uber.org/zap"
)

// SecretsHandler serves the secret endpoints by running `bws secret ...`
type SecretsHandler struct {
	cli
}

// NewSecretsHandler creates a new SecretsHandler
func NewSecretsHandler(runner bws.Runner, binary string, logger *zap.Logger) *SecretsHandler {
	return &SecretsHandler{cli: newCLI(runner, binary, logger)}
}

// ListSecrets handles GET /api/v1/secrets
func (h *SecretsHandler) ListSecrets(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, bws.KindSecret, func(out []byte) (any, error) {
		return models.DecodeSecrets(out)
	})
}

// GetSecret handles GET /api/v1/secret/{id}.
// It answers 200 where every other endpoint answers 201; clients depend on it.
func (h *SecretsHandler) GetSecret(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, bws.KindSecret, http.StatusOK)
}

// CreateSecret handles POST /api/v1/secret
func (h *SecretsHandler) CreateSecret(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, bws.KindSecret)
}
