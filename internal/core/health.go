package core

import "net/http"

// healthResponse is the JSON response body for the health check endpoint.
type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HandleHealth reports service liveness. The estimation core is pure and has
// no external dependencies to probe, so a reachable process is a healthy one.
// This endpoint is public and is mounted at GET /health.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	service := ""
	if s.Config != nil {
		service = s.Config.Service
	}
	JSON(w, r, http.StatusOK, healthResponse{
		Status:  "healthy",
		Service: service,
	})
}
