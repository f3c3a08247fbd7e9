package http

import (
	"net/http"

	"github.com/MKhiriev/granola-notes-mcp/internal/tools"
	"github.com/MKhiriev/granola-notes-mcp/internal/utils"
)

type versionResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// getServerVersion reports the build version next to the server name
// announced over MCP.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, versionResponse{
		Name:    tools.ServerName,
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}
