package handlers

import "net/http"

// ProjectsHandlerInterface defines the behavior the router expects from any project handler implementation (real or mock).
type ProjectsHandlerInterface interface {
	ListProjects(w http.ResponseWriter, r *http.Request)
	GetProject(w http.ResponseWriter, r *http.Request)
	CreateProject(w http.ResponseWriter, r *http.Request)
}
