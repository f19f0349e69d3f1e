package handlers

import "net/http"

// SecretsHandlerInterface defines the behavior expected from Secret handlers (real or mock)
type SecretsHandlerInterface interface {
	ListSecrets(w http.ResponseWriter, r *http.Request)
	GetSecret(w http.ResponseWriter, r *http.Request)
	CreateSecret(w http.ResponseWriter, r *http.Request)
}
