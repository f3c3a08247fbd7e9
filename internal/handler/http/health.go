package http

import (
	"net/http"

	"github.com/MKhiriev/granola-notes-mcp/internal/utils"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, healthResponse{Status: "healthy", Message: "Granola MCP Server is running"}, http.StatusOK)
}
