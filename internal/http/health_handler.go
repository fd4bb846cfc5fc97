package http

import "net/http"

type healthHandler struct{}

func NewHealthHandler() AppHttpHandler {
	return healthHandler{}
}

func (healthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, healthResponse{Status: "UP"})
	return nil
}
